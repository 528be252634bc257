package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler holds shared dependencies for all route handlers. analyzeBaseURL
// and now are injectable so tests can mock the vision API and pin the clock.
type Handler struct {
	store          *Store
	analyzeBaseURL string
	now            func() time.Time
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// Neon closes idle connections after ~5 minutes.
func getDBPool() *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from Neon's server-side prepared statement cache after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("DB pool ready!")
	return pool
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/nutrition-log/daily", h.getDailySummary)
	api.POST("/nutrition-log/items", h.createFoodLogItem)
	api.PUT("/nutrition-log/items/:id", h.updateFoodLogItem)
	api.DELETE("/nutrition-log/items/:id", h.deleteFoodLogItem)
	api.POST("/exercise-log", h.createExerciseLogItem)
	api.PUT("/exercise-log/:id", h.updateExerciseLogItem)
	api.DELETE("/exercise-log/:id", h.deleteExerciseLogItem)
	api.GET("/settings", h.getSettings)
	api.PATCH("/settings", h.patchSettings)
	api.POST("/sports", h.addCustomSport)
	api.DELETE("/sports/:name", h.deleteCustomSport)
	api.POST("/analyze", h.analyzeImage)
	api.GET("/export", h.getExport)
	api.GET("/export/summary", h.getShareSummary)
}
