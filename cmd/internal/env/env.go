package env

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Importing pq for PostgreSQL driver
)

type Env struct {
	AddrClient string
	Addr       string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPass     string
	SSLMode    string
	SecretKey  string
	TokenTTL   time.Duration
	RedisAddr  string
	RateLimit  int
	ResetURL   string
	Migrations string
}

var (
	cfg  *Env
	once sync.Once
)

func Start() *Env {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("error loading .env file: %v", err)
		}
		cfg = Load()
	})
	return cfg
}

// Load lee la configuración del entorno sin cachear el resultado.
func Load() *Env {
	return &Env{
		AddrClient: getEnv("ADDR_CLIENT", "http://localhost:3000"),
		Addr:       getEnv("ADDR", "localhost:8060"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "giakiemso"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPass:     getEnv("DB_PASS", "postgres"),
		SSLMode:    getEnv("SSL_MODE", "disable"),
		SecretKey:  getEnv("SECRET_KEY", "mysecretkey"),
		TokenTTL:   getDuration("TOKEN_TTL", time.Hour),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RateLimit:  getInt("RATE_LIMIT", 5),
		ResetURL:   getEnv("RESET_URL", "http://localhost:3000/auth/update-password"),
		Migrations: getEnv("MIGRATIONS", ""),
	}
}

func getEnv(name string, fallback string) string {
	if env, ok := os.LookupEnv(name); ok {
		return env
	}
	return fallback

}

func getInt(name string, fallback int) int {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", name, raw, fallback)
		return fallback
	}
	return n
}

func getDuration(name string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", name, raw, fallback)
		return fallback
	}
	return d
}
