// Package main is the entry point for the datacash rewards wallet CLI.
package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"datacash/internal/cli"
	"datacash/internal/config"
	"datacash/internal/kv"
	"datacash/internal/pkg/lock"
	"datacash/internal/repository"
	"datacash/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Str("driver", cfg.Storage.Driver).Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the key-value store
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	// Initialize services
	locks := lock.NewAccountLock()
	limiter := service.NewSellLimiter(cfg.Rewards.DailySellCap)
	referral := service.NewReferralEngine(cfg.Rewards.ReferralBonus)
	wallet := service.NewAccountService(
		accountRepo,
		sessionRepo,
		locks,
		limiter,
		referral,
		cfg.Rewards.SignupBonus,
		cfg.Rewards.SellReward,
	)

	ui := cli.NewUI(wallet, cfg.App.BaseURL, bufio.NewReader(os.Stdin), os.Stdout)
	ui.Run(ctx)

	log.Info().Msg("Bye")
}

// openStore picks the key-value backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		return kv.OpenRedisStore(ctx, &cfg.Storage.Redis)
	case "postgres":
		return kv.OpenPostgresStore(ctx, &cfg.Storage.Postgres)
	default:
		return kv.OpenFileStore(cfg.Storage.File.Path)
	}
}
