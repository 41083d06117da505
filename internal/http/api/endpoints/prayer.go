package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/miqat-dev/miqat/internal/db"
	"github.com/miqat-dev/miqat/internal/http/api"
	"github.com/miqat-dev/miqat/internal/http/api/packets"
	"github.com/miqat-dev/miqat/internal/model"
	"github.com/miqat-dev/miqat/internal/store"
)

// Refresher runs one fetch-reschedule-persist cycle, satisfied by
// scheduler.Engine.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type PrayerController struct {
	store     store.Store
	refresher Refresher
}

func NewPrayerController(st store.Store, r Refresher) *PrayerController {
	return &PrayerController{store: st, refresher: r}
}

func PrayerModule(st store.Store, r Refresher) api.Module {
	ctl := NewPrayerController(st, r)
	return api.ModuleFunc(func(c *api.Controller) {
		// user actions
		c.POST("/city", ctl.selectCity)
		c.POST("/refresh", ctl.refreshNow)

		// settings UI reads
		c.GET("/timings", ctl.timings)
		c.GET("/history", ctl.history)
	})
}

func (p *PrayerController) selectCity(ctx *gin.Context) (any, *api.Error) {
	var request packets.CitySelectedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	sel := model.UserSelection{
		City:    request.City,
		Country: request.Country,
		Label:   request.Label,
	}
	if sel.Country == "" {
		sel.Country = model.DefaultCountry
	}
	if sel.Label == "" {
		sel.Label = sel.City
	}

	if err := p.store.SaveSelection(ctx.Request.Context(), sel); err != nil {
		log.Error().Err(err).Str("city", sel.City).Msg("selectCity: persist failed")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not save selection"}
	}

	if err := p.refresher.Refresh(ctx.Request.Context()); err != nil {
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "could not refresh prayer times"}
	}

	return packets.ActionResponse{Success: true}, nil
}

func (p *PrayerController) refreshNow(ctx *gin.Context) (any, *api.Error) {
	if err := p.refresher.Refresh(ctx.Request.Context()); err != nil {
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "could not refresh prayer times"}
	}

	return packets.ActionResponse{Success: true}, nil
}

func (p *PrayerController) timings(ctx *gin.Context) (any, *api.Error) {
	response := packets.TimingsResponse{Rows: []packets.TimingRow{}}

	sel, err := p.store.Selection(ctx.Request.Context())
	if err != nil && !errors.Is(err, store.ErrNoSelection) {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not read selection"}
	}
	response.CityLabel = sel.Label

	snap, updated, err := p.store.Timings(ctx.Request.Context())
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not read timings"}
	}

	response.Date = snap.Date
	if !updated.IsZero() {
		response.LastUpdated = updated.Format(time.RFC3339)
	}

	for _, key := range model.DisplayPrayers {
		raw, ok := snap.Timings[key]
		if !ok || raw == "" {
			continue
		}
		clean, _, _ := strings.Cut(raw, " ")
		response.Rows = append(response.Rows, packets.TimingRow{
			Key:   key,
			Label: key.Label(),
			Time:  clean,
		})
	}

	return response, nil
}

func (p *PrayerController) history(ctx *gin.Context) (any, *api.Error) {
	if db.DB == nil {
		return nil, &api.Error{Code: http.StatusServiceUnavailable, Message: "delivery log not configured"}
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid limit"}
	}

	list, err := db.ListNotifications(limit)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not list notifications"}
	}

	return packets.HistoryResponse{Notifications: list}, nil
}
