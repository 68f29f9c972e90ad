package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig is loaded once in main and passed down by value; nothing
// reassigns it at runtime.
type ServerConfig struct {
	Addr string

	// Upstream provider base URLs. Overridable so tests can point the
	// fallback chain at local httptest servers.
	CDNBaseURL      string
	BibleAPIBaseURL string
	BollsBaseURL    string
	DatasetURL      string

	// FetchTimeout bounds each individual upstream request so one stalled
	// provider cannot block the rest of the fallback chain.
	FetchTimeout time.Duration
}

func LoadServerConfig() ServerConfig {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	return ServerConfig{
		Addr:            getEnv("BIBLEALIVE_ADDR", ":8080"),
		CDNBaseURL:      getEnv("BIBLEALIVE_CDN_BASE", "https://cdn.jsdelivr.net/gh/wldeh/bible-api"),
		BibleAPIBaseURL: getEnv("BIBLEALIVE_BIBLEAPI_BASE", "https://bible-api.com"),
		BollsBaseURL:    getEnv("BIBLEALIVE_BOLLS_BASE", "https://bolls.life"),
		DatasetURL:      getEnv("BIBLEALIVE_DATASET_URL", "https://cdn.jsdelivr.net/gh/aruljohn/Bible-Database@master/json/spanish_rvr1960.json"),
		FetchTimeout:    getDuration("BIBLEALIVE_FETCH_TIMEOUT_SECONDS", 12*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}
