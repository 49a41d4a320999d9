package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 启动时应用所有未执行的迁移
// dirty 状态说明上次迁移中途失败，需人工确认后才能继续，直接拒绝启动
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if version, dirty, err := m.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("读取迁移版本失败: %w", err)
	} else if dirty {
		return fmt.Errorf("数据库迁移处于 dirty 状态（版本 %d），需人工修复后重启", version)
	}

	switch err := m.Up(); {
	case err == nil:
		version, _, _ := m.Version()
		logger.Info("数据库迁移完成", zap.Uint("version", version))
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("数据库结构已是最新")
	default:
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	return nil
}
