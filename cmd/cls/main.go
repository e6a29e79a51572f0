package main

import (
	"github.com/coinlens/cls/internal/application/exchanges"
	"github.com/coinlens/cls/internal/application/usecases"
	"github.com/coinlens/cls/internal/infrastructure/clients"
	"github.com/coinlens/cls/internal/server"
	"github.com/coinlens/cls/pkg/config"
	"github.com/coinlens/cls/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.NewWithConfig(cfg.Logger)

	cmcClient := clients.NewCMCClient(&cfg.CoinMarketCap, log)
	exchangeService := exchanges.NewExchangeService(cmcClient, log)

	srv := server.New(
		cfg,
		usecases.NewFetchExchanges(exchangeService),
		usecases.NewFetchExchangeDetail(exchangeService),
		usecases.NewFetchCurrencies(exchangeService),
		log,
	)
	srv.Start()
}
