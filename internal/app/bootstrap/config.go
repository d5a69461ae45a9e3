// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for BeanLedger.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, membership_term, etc.
//   - Environment variables: BEANLEDGER_MONGO_URI, BEANLEDGER_MEMBERSHIP_TERM, etc.
//   - Command-line flags: --mongo_uri, --membership_term, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "beanledger", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Loyalty-program knobs
	{Name: "membership_term", Default: "8760h", Desc: "Validity of a new membership when validUntil is not supplied (default: one year)"},
	{Name: "min_redeem_points", Default: 10, Desc: "Minimum points a member may redeem in one request"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer (HTTP port, env,
// logging); AppConfig is specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BEANLEDGER", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		MembershipTerm:  appValues.Duration("membership_term", 365*24*time.Hour),
		MinRedeemPoints: appValues.Int("min_redeem_points"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// BeanLedger validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and rejects nonsensical
// loyalty-program settings.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MembershipTerm <= 0 {
		return fmt.Errorf("membership_term must be positive, got %s", appCfg.MembershipTerm)
	}
	if appCfg.MinRedeemPoints < 1 {
		return fmt.Errorf("min_redeem_points must be at least 1, got %d", appCfg.MinRedeemPoints)
	}

	return nil
}
