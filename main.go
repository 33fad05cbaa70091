package main

import (
	"github.com/mahimx/inkblog/config"
	"github.com/mahimx/inkblog/models"
	"github.com/mahimx/inkblog/routes"
	"github.com/mahimx/inkblog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db, err := config.OpenDatabase(cfg, &models.User{}, &models.Post{}, &models.Comment{})
	if err != nil {
		utils.Sugar.Fatalf("failed to open database: %v", err)
	}

	mailer := utils.NewSMTPMailer(cfg)
	r := routes.SetupRouter(cfg, db, mailer)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
