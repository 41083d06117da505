package main

import (
	"log"
	"os"
)

type Environment struct {
	Environment   string
	ServerAddress string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	// Optional: empty disables the delivery log.
	DatabaseURL    string
	MigrationsPath string

	// Optional: empty means alerts only go to the service log.
	MQTTBrokerURL string

	// Optional override for the timetable API, mainly for testing.
	AladhanBaseURL string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		AladhanBaseURL: os.Getenv("ALADHAN_BASE_URL"),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	// Basic validation
	if env.RedisAddress == "" {
		log.Fatal("Missing required environment variable REDIS_ADDRESS")
	}

	return env
}
