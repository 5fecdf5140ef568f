package main

import (
	"os"
	"time"

	"corrigo/config"
	"corrigo/controllers"
	dbpkg "corrigo/db"
	"corrigo/router"
	"corrigo/workers"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG_PATH   (default: config.json)
// - PORT          (sobrescreve api_port do config)
// - JWT_SECRET    (sobrescreve security.jwt_secret do config)
// - AUTOMIGRATE   (1 = roda automigrate na subida)
// - DB_LOG        (1 = loga SQL)
//
// =====================

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	configPath := getenv("CONFIG_PATH", "config.json")
	cfg := config.Get(configPath)

	if port := os.Getenv("PORT"); port != "" {
		cfg.ApiPort = port
	}

	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	defer database.Close()

	workers.StartTokenCleanup(database, time.Hour)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	logrus.Infof("corrigo listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
