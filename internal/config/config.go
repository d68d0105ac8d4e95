package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("TMDB_API_KEY is not set")

type HTTPServer struct {
	Host string
	Port string
}

// RedisCache is optional: an empty Host selects the in-process pool cache.
type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TMDB struct {
	APIKey      string
	BaseURL     string
	Language    string
	Region      string
	MinInterval time.Duration
	CacheTTL    time.Duration
}

type Quality struct {
	MinRating      float64
	MinVotes       int
	MinOverviewLen int
	ScriptRatio    float64
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	TMDB     TMDB
	Quality  Quality
}

const logtag = "[config]"

// Load reads the environment (optionally from an env file passed via -config)
// and fails fast when the catalog credential is absent. Every catalog call
// would fail without it, so there is no point starting.
func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("%s invalid config : %v", logtag, err)
	}

	log.Printf("%s backend config loaded, tmdb base : %s", logtag, cfg.TMDB.BaseURL)
	return cfg
}

// FromEnv builds the config from the current environment without touching
// flags or env files.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		TMDB:     *newTMDB(),
		Quality:  *newQuality(),
	}

	if cfg.TMDB.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", ""),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "trinity"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:      os.Getenv("TMDB_API_KEY"),
		BaseURL:     getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Language:    getenv("TMDB_LANGUAGE", "es-ES"),
		Region:      getenv("TMDB_REGION", "ES"),
		MinInterval: getenvDuration("TMDB_MIN_INTERVAL", 250*time.Millisecond),
		CacheTTL:    getenvDuration("POOL_CACHE_TTL", 6*time.Hour),
	}
}

func newQuality() *Quality {
	return &Quality{
		MinRating:      getenvFloat("QUALITY_MIN_RATING", 5.0),
		MinVotes:       getenvInt("QUALITY_MIN_VOTES", 10),
		MinOverviewLen: getenvInt("QUALITY_MIN_OVERVIEW_LEN", 20),
		ScriptRatio:    getenvFloat("QUALITY_SCRIPT_RATIO", 0.7),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s is not an int, using default %d", logtag, key, defaultValue)
		return defaultValue
	}
	return n
}

func getenvFloat(key string, defaultValue float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("%s %s is not a float, using default %g", logtag, key, defaultValue)
		return defaultValue
	}
	return f
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s %s is not a duration, using default %s", logtag, key, defaultValue)
		return defaultValue
	}
	return d
}
