package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/coinlens/cls/pkg/logger"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Logger        logger.Config       `yaml:"logger"`
	CoinMarketCap CoinMarketCapConfig `yaml:"coinmarketcap"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

type CoinMarketCapConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout int    `yaml:"timeout"`
}

// Load reads config.yaml (path overridable via CLS_CONFIG) and applies
// environment overrides. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CLS_CONFIG")
	if path == "" {
		path = "./config.yaml"
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return nil, err
	}

	if key := os.Getenv("CMC_API_KEY"); key != "" {
		config.CoinMarketCap.APIKey = key
	}
	if config.CoinMarketCap.BaseURL == "" {
		config.CoinMarketCap.BaseURL = "https://pro-api.coinmarketcap.com"
	}
	if config.CoinMarketCap.Timeout <= 0 {
		config.CoinMarketCap.Timeout = 30
	}

	return &config, nil
}
