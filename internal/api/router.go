package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"esg-index-backend/config"
	"esg-index-backend/internal/calc"
	"esg-index-backend/internal/mw"
	"esg-index-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, svc *calc.Service, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()
	if cfg.Server.RequestIPHeader != "" {
		r.TrustedPlatform = cfg.Server.RequestIPHeader
	}

	handler := NewHandler(s, svc, webpushOptions, cfg.Report)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), 5)

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl, "/api/exports")

	api := r.Group("/api")
	api.Use(rateLimiter, caching)
	{
		// Scope 1: fuel purchases
		api.GET("/fuel", handler.ListFuelPurchases)
		api.POST("/fuel", handler.CreateFuelPurchase)
		api.DELETE("/fuel/:id", handler.DeleteFuelPurchase)

		// Scope 2: energy readings
		api.GET("/energy", handler.ListEnergyReadings)
		api.POST("/energy", handler.CreateEnergyReading)
		api.DELETE("/energy/:id", handler.DeleteEnergyReading)

		// Scope 3: spend, travel, waste, water
		api.GET("/spend", handler.ListSpendItems)
		api.POST("/spend", handler.CreateSpendItem)
		api.GET("/spend/categories", handler.ListSpendCategories)
		api.GET("/travel", handler.ListTravelLegs)
		api.POST("/travel", handler.CreateTravelLeg)
		api.GET("/waste", handler.ListWasteEntries)
		api.POST("/waste", handler.CreateWasteEntry)
		api.GET("/water", handler.ListWaterRecords)
		api.POST("/water", handler.CreateWaterRecord)

		// Commuting master data
		api.GET("/personnel", handler.ListPersonnel)
		api.POST("/personnel", handler.CreatePersonnel)
		api.GET("/client-sites", handler.ListClientSites)
		api.POST("/client-sites", handler.CreateClientSite)
		api.GET("/assignments", handler.ListAssignments)
		api.POST("/assignments", handler.CreateAssignment)
		api.GET("/commuting/calculations", handler.ListCommuteCalculations)
		api.DELETE("/commuting/calculations", handler.ClearCommuteCalculations)

		// Calculations
		api.POST("/calculations/commuting", handler.RunCommutingBatch)
		api.POST("/calculations/scope1", handler.RunScope1)
		api.POST("/calculations/scope2", handler.RunScope2)

		// Social (S1)
		api.GET("/social/hr/:year", handler.GetHRYear)
		api.PUT("/social/hr/:year", handler.PutHRYear)
		api.GET("/social/metrics", handler.ListSocialMetrics)
		api.POST("/social/metrics", handler.CreateSocialMetric)

		// Governance (G1)
		api.GET("/policies", handler.ListPolicies)
		api.POST("/policies", handler.CreatePolicy)
		api.DELETE("/policies/:id", handler.DeletePolicy)
		api.PUT("/governance/procurement/:year", handler.PutProcurementYear)
		api.GET("/risks", handler.ListRisks)
		api.POST("/risks", handler.CreateRisk)

		// Double materiality
		api.GET("/materiality", handler.ListMaterialityTopics)
		api.POST("/materiality", handler.CreateMaterialityTopic)
		api.DELETE("/materiality/:id", handler.DeleteMaterialityTopic)

		// Readiness and ESRS index
		api.GET("/readiness", handler.GetReadiness)
		api.PUT("/readiness/:code", handler.PutGapStatus)
		api.GET("/esrs-index", handler.GetESRSIndex)

		// Reports and exports
		api.GET("/reports/csrd", handler.GetCSRDReport)
		api.GET("/exports/audit", handler.GetAuditExport)

		// Push subscriptions for review reminders
		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
