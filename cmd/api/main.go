package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/Abaneee/social-pulse/cmd/api/auth"
	"github.com/Abaneee/social-pulse/cmd/api/router"
	"github.com/Abaneee/social-pulse/config"
	"github.com/Abaneee/social-pulse/db"
	_ "github.com/Abaneee/social-pulse/docs" // swag generates this package
	"github.com/Abaneee/social-pulse/internal/logger"
)

// @title           Social Pulse API
// @version         1.0
// @description     Upload social post exports, clean them and serve engagement analytics, insights and trained model predictions.
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(db.Database(), jwtManager, cfg.Storage.MediaRoot)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Log.Infof("api listening on %s", cfg.Server.Addr)
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
