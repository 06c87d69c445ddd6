// Package main is the entry point for the ModTrack application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BTStudios/ModTrackGo/internal/commands"
	"github.com/BTStudios/ModTrackGo/internal/events"
	"github.com/BTStudios/ModTrackGo/pkg/config"
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/errors"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/mqtt"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/BTStudios/ModTrackGo/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting ModTrack...", "Main")

	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(); err != nil {
			logger.Error(fmt.Sprintf("Error disconnecting database: %v", err), "Main")
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		cancel()
		logger.Critical(fmt.Sprintf("Error creating indexes: %v", err), "Main")
		os.Exit(1)
	}
	cancel()

	stores := database.NewStores(db)
	svc := quota.NewService(stores)

	// MQTT
	mqttClientID := "modtrack"
	if !cfg.IsProd() {
		mqttClientID = "modtrack_canary"
	}
	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer, svc)
	webServer.StartAsync(cfg.Port)

	// Discord
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	commands.RegisterAll(discordClient, svc, stores)
	handlers := events.RegisterAll(discordClient, svc, stores)

	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := discordClient.Stop(); err != nil {
			logger.Error(fmt.Sprintf("Error stopping Discord client: %v", err), "Main")
		}
	}()

	stopMemberCount := handlers.StartMemberCountLoop(10 * time.Minute)
	defer stopMemberCount()

	// Quota check scheduler, results fan out over MQTT and the guild
	// output channel
	scheduler := quota.NewScheduler(
		svc,
		time.Duration(cfg.CheckPollSeconds)*time.Second,
		mqtt.NewCheckPublisher(mqttClient),
		events.NewCheckReporter(discordClient),
	)
	scheduler.Start()
	defer scheduler.Stop()

	logger.Success("ModTrack started successfully!", "Main")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down ModTrack...", "Main")
}
