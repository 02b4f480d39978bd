package dbfx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(bootstrap),
)

func bootstrap(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
	infra.SeedRBAC(db)
}
