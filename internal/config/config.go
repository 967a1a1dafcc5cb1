package config

import "os"

type Config struct {
	Port          string
	AdminPassword string
	JWTSecret     string
	PostgresDSN   string

	MetricsEnabled bool
	MetricsToken   string
}

// Load reads the process environment. AdminPassword has no default on
// purpose: the secret must come from configuration, never from code.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "1",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
