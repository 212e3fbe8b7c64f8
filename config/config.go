package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	DBUrl      string
	StaticDir  string
	SessionTTL time.Duration
	Debug      bool
}

func ParseFlags() (cfg Config, err error) {
	// a .env file, when present, seeds the flag defaults
	godotenv.Load()

	var host string
	flag.StringVar(&host, "host", envOr("HOST", "0.0.0.0"), "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", envOrUint("PORT", 8000), "listen port number (default 8000)")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("DB_URL", "Data.db"), "path to SQLite3 DB file (default Data.db)")
	flag.StringVar(&cfg.StaticDir, "static", envOr("STATIC_DIR", "static"), "directory of static assets (default static)")
	var ttl uint
	flag.UintVar(&ttl, "session-ttl", envOrUint("SESSION_TTL_HOURS", 72), "session TTL in hours (default 72)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.SessionTTL = time.Duration(ttl) * time.Hour

	if ttl == 0 {
		err = errors.New("parameter -session-ttl must be positive")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrUint(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return fallback
}
