// Package config defines the configuration for the ArkadasAI demo API.
// Configuration is loaded once at process initialization and is immutable
// thereafter. It follows 12-Factor App principles by strictly separating
// code from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct Defaults (Lowest)
//
// Any invalid value causes startup to fail immediately (fail fast).
package config

import "time"

// Config is the top-level configuration struct. It is populated once during
// process initialization and never modified. Sub-components receive only the
// specific config subsets they require.
type Config struct {
	// System metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"arkadasai-demo-api" validate:"required"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain configurations
	Server   ServerConfig
	Chat     ChatConfig
	Security SecurityConfig
}

// ServerConfig holds HTTP server tuning parameters.
type ServerConfig struct {
	Port              string        `envconfig:"PORT" default:"8080" validate:"required"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ReadTimeout       time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// ChatConfig holds the simulated chat behavior knobs.
type ChatConfig struct {
	// ReplyDelay is how long a chat request is suspended before the canned
	// reply is produced, simulating conversation latency. The write timeout
	// must stay comfortably above this value.
	ReplyDelay time.Duration `envconfig:"CHAT_REPLY_DELAY" default:"1.5s" validate:"min=0"`
}

// SecurityConfig holds CORS settings. The demo is open to all origins so
// mobile and web clients can call it without extra configuration.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}
