package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		entry := logrus.WithError(err)
		if errors.Is(err, config.ErrToken) {
			entry = entry.WithField("severity", "critical")
		}
		entry.Fatal("Could not load application configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.Environment, os.Stdout)
	log.WithFields(logrus.Fields{
		"environment":  cfg.Environment,
		"endpoint":     cfg.Endpoint,
		"retry_period": cfg.RetryPeriod.String(),
	}).Info("Configuration loaded")

	if err := cfg.CheckTokens(log); err != nil {
		log.WithError(err).Fatal("Invalid configuration, stopping")
	}

	heartbeat, err := scheduler.NewHeartbeat(cfg.HeartbeatCron, time.Now())
	if err != nil {
		log.WithError(err).Fatal("Could not parse heartbeat schedule")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)

	api := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	defer api.Close()

	poller := app.NewPoller(api, notifier, log, cfg.RetryPeriod, app.WithHeartbeat(heartbeat))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Poller exited")
	}
	log.Info("Application shut down gracefully.")
}
