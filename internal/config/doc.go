// Package config manages application configuration for the Hunter API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS, rate limits)
//   - DatabaseConfig: SurrealDB connection settings
//   - VoiceConfig: speech-synthesis notifier settings
//   - JobsConfig: background job scheduling
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT            - HTTP server port (default: 8080)
//	SERVER_ENV             - development, production, or test
//	DB_HOST                - SurrealDB host
//	DB_PORT                - SurrealDB port
//	DB_NAMESPACE           - Database namespace
//	DB_DATABASE            - Database name
//	VOICE_ENDPOINT         - Speech synthesis endpoint (empty disables voice)
//	DAILY_RESET_ENABLED    - Enable the daily quest reset job
//	DAILY_RESET_INTERVAL   - Interval between daily resets
//	RATE_LIMIT_PER_MINUTE  - Requests allowed per client per minute
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
