// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/beanledger/beanledger/internal/app/system/indexes"
	"github.com/beanledger/beanledger/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema makes the collections, JSON-Schema validators, and
// indexes exist before any traffic is served. The unique indexes back
// the duplicate-phone and duplicate-name rules; the validators back the
// non-negative points/price invariants.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
