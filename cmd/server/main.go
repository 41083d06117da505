package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/miqat-dev/miqat/internal/aladhan"
	"github.com/miqat-dev/miqat/internal/db"
	"github.com/miqat-dev/miqat/internal/notify"
	"github.com/miqat-dev/miqat/internal/scheduler"
	"github.com/miqat-dev/miqat/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	ctx := context.Background()

	// persistent key-value store for the selection and last fetched timings
	st, err := store.NewRedisStore(ctx, env.RedisAddress, env.RedisUsername, env.RedisPassword)
	if err != nil {
		log.Fatalf("redis init: %v", err)
	}

	// the delivery log is optional
	if env.DatabaseURL != "" {
		if err := db.Init(env.DatabaseURL); err != nil {
			log.Fatalf("db init: %v", err)
		}
		if err := db.RunMigrations(env.MigrationsPath); err != nil {
			log.Fatalf("db migrate: %v", err)
		}
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if env.MQTTBrokerURL != "" {
		mq, err := notify.NewMQTTNotifier(env.MQTTBrokerURL, "miqat-server")
		if err != nil {
			log.Fatalf("mqtt init: %v", err)
		}
		defer mq.Close()
		notifier = mq
	}

	fetcher := aladhan.NewClient()
	if env.AladhanBaseURL != "" {
		fetcher.BaseURL = env.AladhanBaseURL
	}

	// scheduling engine: refreshes at startup, then lives off alarm fires
	timers := scheduler.NewTimerSet()
	engine := scheduler.New(fetcher, st, notifier, timers)
	go engine.Run(ctx, timers.Fires())

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, st, engine)

	// start
	log.Printf("listening on %s", env.ServerAddress)
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
