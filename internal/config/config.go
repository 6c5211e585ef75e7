package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml и переменных окружения через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	// AllowedOrigins — Origin браузерных клиентов websocket; пусто — только тот же хост
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	Currency  string        `yaml:"currency" env-default:"usd"`
	PerPage   int           `yaml:"per_page" env-default:"50"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"crypto-analytics-dashboard/1.0"`
}

type DashboardConfig struct {
	DefaultAsset string `yaml:"default_asset" env-default:"bitcoin"`
	DefaultRange int    `yaml:"default_range_days" env-default:"30"` // 1|7|30|365
	// AcceptStale — применять ответы устаревших запросов: последний пришедший ответ побеждает
	AcceptStale bool `yaml:"accept_stale" env:"DASHBOARD_ACCEPT_STALE"`
	// RefreshInterval — период обновления выбранной монеты; 0 — только по действию пользователя
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"DASHBOARD_REFRESH_INTERVAL" env-default:"0s"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

func LoadConfig() (*Config, error) {
	return load(fetchConfigPath())
}

// load — читает файл (если указан), затем переменные окружения
func load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
