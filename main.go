package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/A3K3SH/Catering/configs"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/routes"
)

func main() {
	cfg := configs.LoadConfig()
	configs.SetupLogger(cfg)

	// numeric binding tags must work on decimal fields
	validate.RegisterDecimalType()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	if err := configs.SeedCatalog(db); err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}

	// HTTP
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
