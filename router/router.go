package router

import (
	"net/http"

	"corrigo/config"
	"corrigo/controllers"
	"corrigo/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Initialize wires all routes and middlewares.
// Public routes + authenticated routes + company-only routes (Companyzer).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users", Logger(), controllers.CreateUser)
	api.POST("/login", Logger(), controllers.Login)
	api.POST("/refresh", Logger(), controllers.Refresh)

	// Endpoint de validação é público (contrato do front)
	api.POST("/validate", Logger(), controllers.Validate)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/me", Logger(), controllers.Me)

	// Prompt source
	auth.GET("/prompts/sample", Logger(), controllers.GetSamplePrompt)
	auth.GET("/datasets/:id/prompts/random", Logger(), controllers.GetRandomPrompt)

	// Datasets (listagem pra qualquer logado)
	auth.GET("/datasets", Logger(), controllers.GetDatasets)
	auth.GET("/datasets/:id", Logger(), controllers.GetDatasetByID)

	// Corrections (worker)
	auth.POST("/corrections", Logger(), controllers.SubmitCorrection)
	auth.GET("/corrections", Logger(), controllers.GetCorrections)

	// Corrections Dashboard
	auth.GET("/corrections/dashboard/per-day", Logger(), controllers.GetCorrectionsPerDay)
	auth.GET("/corrections/dashboard/summary", Logger(), controllers.GetCorrectionsSummary)

	// Company routes (upload de dataset)
	company := auth.Group("")
	company.Use(Companyzer())
	company.POST("/datasets", Logger(), controllers.CreateDataset)

	logrus.Info("Routes initialized")
}
