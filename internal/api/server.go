package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/3498972895/idle-node-offloading/internal/database"
	"github.com/3498972895/idle-node-offloading/pkg/costmodel"
	"github.com/3498972895/idle-node-offloading/pkg/models"
	"github.com/3498972895/idle-node-offloading/pkg/scenario"
	"github.com/3498972895/idle-node-offloading/pkg/sweep"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	repo   *database.Repository
	port   string
}

// NewServer creates a new API server
func NewServer(repo *database.Repository, port string) *Server {
	router := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(config))

	server := &Server{
		router: router,
		repo:   repo,
		port:   port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")

	// One-shot model evaluation
	api.POST("/evaluate", s.evaluate)

	// Sweep endpoints
	api.POST("/sweeps", s.createSweep)
	api.GET("/sweeps", s.listSweeps)
	api.GET("/sweeps/:id", s.getSweep)
	api.GET("/sweeps/:id/samples", s.getSamples)
	api.GET("/sweeps/:id/best", s.getBestSample)
	api.GET("/sweeps/:id/summary", s.getSweepSummary)
	api.DELETE("/sweeps/:id", s.deleteSweep)

	// Health check
	api.GET("/health", s.healthCheck)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.port)
}

// Handler implementations

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now(),
	})
}

func (s *Server) evaluate(c *gin.Context) {
	var scn models.Scenario
	if err := c.ShouldBindJSON(&scn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := scn.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, costmodel.Evaluate(scn))
}

func (s *Server) createSweep(c *gin.Context) {
	var cfg scenario.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := sweep.Run(&cfg)

	run, samples, err := database.CollectRun(&cfg, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := s.repo.SaveRun(run, samples); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"run":     run,
		"summary": result.Summary,
	})
}

func (s *Server) listSweeps(c *gin.Context) {
	runs, err := s.repo.ListSweepRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

func (s *Server) getSweep(c *gin.Context) {
	id := c.Param("id")

	run, err := s.repo.GetSweepRun(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sweep run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

func (s *Server) getSamples(c *gin.Context) {
	runID := c.Param("id")

	xMinStr := c.Query("x_min")
	xMaxStr := c.Query("x_max")
	if xMinStr != "" || xMaxStr != "" {
		xMin, xMax := 0.0, 1.0
		if xMinStr != "" {
			if _, err := fmt.Sscanf(xMinStr, "%g", &xMin); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid x_min"})
				return
			}
		}
		if xMaxStr != "" {
			if _, err := fmt.Sscanf(xMaxStr, "%g", &xMax); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid x_max"})
				return
			}
		}

		samples, err := s.repo.GetSamplesInOffloadRange(runID, xMin, xMax)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, samples)
		return
	}

	// Parse query parameters
	limit := 1000 // Default limit
	if l := c.Query("limit"); l != "" {
		fmt.Sscanf(l, "%d", &limit)
	}

	samples, err := s.repo.GetSamples(runID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (s *Server) getBestSample(c *gin.Context) {
	runID := c.Param("id")

	sample, err := s.repo.GetBestSample(runID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No samples found"})
		return
	}

	c.JSON(http.StatusOK, sample)
}

func (s *Server) getSweepSummary(c *gin.Context) {
	runID := c.Param("id")

	summary, err := s.repo.GetRunSummary(runID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) deleteSweep(c *gin.Context) {
	id := c.Param("id")

	if err := s.repo.DeleteSweepRun(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sweep run deleted"})
}
