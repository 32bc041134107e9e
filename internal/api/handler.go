package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"esg-index-backend/config"
	"esg-index-backend/internal/calc"
	"esg-index-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	calc    *calc.Service
	webpush *webpush.Options
	report  config.ReportConfig
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, svc *calc.Service, webpushOptions *webpush.Options, report config.ReportConfig) *Handler {
	return &Handler{
		store:   s,
		calc:    svc,
		webpush: webpushOptions,
		report:  report,
	}
}
