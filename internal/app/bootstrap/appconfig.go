// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings — the HTTP listen port, environment, logging
// level, request limits — so everything here is BeanLedger's own:
// where the document store lives and the loyalty-program knobs.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Loyalty-program configuration
	MembershipTerm  time.Duration // How long a new membership is valid when validUntil is not supplied
	MinRedeemPoints int           // Minimum points per redemption request
}
