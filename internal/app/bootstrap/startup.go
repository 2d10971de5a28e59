// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	compeventstore "github.com/chapterhub/chapterhub/internal/app/store/compevents"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. ChapterHub
// uses it to seed the competitive-events directory when the collection is
// empty, so a fresh deployment has a browsable catalog.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	seedCtx, cancel := context.WithTimeout(ctx, timeouts.Seed())
	defer cancel()

	n, err := compeventstore.New(deps.MongoDatabase, logger).SeedCatalog(seedCtx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("seeded competitive events catalog", zap.Int("count", n))
	}
	return nil
}
