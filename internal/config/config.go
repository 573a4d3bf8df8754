package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	FirecrawlKey string
	FirecrawlURL string
	FetchTimeout time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "dealradar.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./dealradar.log"
	}
	fcURL := os.Getenv("FIRECRAWL_URL")
	if fcURL == "" {
		fcURL = "https://api.firecrawl.dev/v1"
	}
	timeout := 30 * time.Second
	if s := os.Getenv("FETCH_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	cfg := Config{
		Port:         port,
		DBDSN:        dsn,
		LogFile:      logFile,
		FirecrawlKey: os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlURL: fcURL,
		FetchTimeout: timeout,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s FIRECRAWL_URL=%s FETCH_TIMEOUT=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.FirecrawlURL, cfg.FetchTimeout)
	return cfg
}
