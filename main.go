package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/IlyaM70/RedMango-API/configs"
	"github.com/IlyaM70/RedMango-API/middlewares"
	"github.com/IlyaM70/RedMango-API/pkg/logger"
	"github.com/IlyaM70/RedMango-API/routes"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalw("load config", "err", err)
	}

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalw("connect database", "err", err)
	}
	if err := configs.MigrateDB(db); err != nil {
		log.Fatalw("migrate database", "err", err)
	}

	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalw("seed admin", "err", err)
	}
	if err := configs.SeedMenuItems(db); err != nil {
		log.Fatalw("seed menu items", "err", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Infow("server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}
