package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/archive"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/config"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/database"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/router"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/task"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/transfer"
)

const archiveWorkers = 4

func main() {
	cfg := config.Load()

	setupLogger(cfg.Log)
	defer logger.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Asset transfer collaborator: chain-backed when configured, otherwise
	// the static local service. The ledger's logical height follows suit.
	var transferSvc ledger.AssetTransferService = transfer.Static{}
	height := func() uint64 { return uint64(time.Now().Unix()) }
	if cfg.Chain.Enabled {
		chainClient, err := transfer.NewChainClient(cfg.Chain)
		if err != nil {
			log.Fatalf("Failed to initialize chain client: %v", err)
		}
		defer chainClient.Close()
		transferSvc = chainClient
		height = chainClient.LatestBlock
	}

	led := ledger.New(cfg.Campaign.Deployer, transferSvc, height)

	arch, err := archive.NewArchiver(db, archiveWorkers)
	if err != nil {
		log.Fatalf("Failed to initialize archiver: %v", err)
	}
	defer arch.Close()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	campaignLogic := logic.NewCampaignLogic(led, arch)
	projectLogic := logic.NewProjectLogic(led, arch)
	investmentLogic := logic.NewInvestmentLogic(led, arch)

	r := router.Setup(campaignLogic, projectLogic, investmentLogic)

	manager := task.Start(led, arch, cfg)
	defer manager.Stop()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := logger.ParseLogLevel(cfg.Level)
	if cfg.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(level, cfg.File)
		if err != nil {
			log.Fatalf("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
		return
	}
	stdoutLogger, err := logger.New(level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetDefaultLogger(stdoutLogger)
}
