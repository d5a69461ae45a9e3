// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// BeanLedger has no templates or caches to warm; this just records the
// effective loyalty-program settings so a misconfigured deployment is
// visible in the logs.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("loyalty program configured",
		zap.Duration("membership_term", appCfg.MembershipTerm),
		zap.Int("min_redeem_points", appCfg.MinRedeemPoints))
	return nil
}
