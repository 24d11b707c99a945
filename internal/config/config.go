package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string
	DataFile  string
	UsersFile string

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string

	// "plain" keeps the historical plaintext secret format; "bcrypt"
	// hashes new registrations.
	SecretPolicy string

	// Medications at or below this remaining count get a refill warning.
	RefillThreshold int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DataFile:             getenv("DATA_FILE", "health_database.json"),
		UsersFile:            getenv("USERS_FILE", "users_db.json"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		SecretPolicy:         getenv("SECRET_POLICY", "plain"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.RefillThreshold = 3
	if v := getenv("REFILL_THRESHOLD", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			panic("invalid REFILL_THRESHOLD: " + v)
		}
		cfg.RefillThreshold = n
	}

	cfg.JWTSecret = mustGetenv("JWT_SECRET")
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
