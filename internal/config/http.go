package config

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`

	CorsAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// UIAPIBaseURL is the API base URL the web UI talks to. Empty means same origin.
	UIAPIBaseURL string `env:"UI_API_BASE_URL"`
}
