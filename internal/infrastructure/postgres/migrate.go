package postgres

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/indicavende/indicavende-api/pkg/config"
	"github.com/indicavende/indicavende-api/pkg/logger"
)

// RunMigrations aplica as migrações SQL quando habilitadas na configuração.
// Usa database/sql + lib/pq só aqui; o runtime da aplicação fica no pgxpool.
func RunMigrations(cfg config.DBConfig, log *logger.Logger) error {
	if !cfg.MigrationsEnabled {
		return nil
	}

	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexão de migração: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping de migração: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("driver de migração: %w", err)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(cfg.MigrationsPath))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, cfg.DBName, driver)
	if err != nil {
		return fmt.Errorf("instanciar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("aplicar migrações: %w", err)
	}

	log.Info().Str("path", cfg.MigrationsPath).Msg("migrações aplicadas")
	return nil
}
