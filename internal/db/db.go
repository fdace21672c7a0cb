package db

import (
	"fmt"
	"os"

	"feedwall/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init 连接 Postgres 并执行迁移。
// 句柄直接返回给调用方注入到存储层，不挂全局变量，方便测试替换
func Init() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=feedwall port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	log.Info("Database migration completed")

	return gdb, nil
}

// Migrate 执行模型迁移，测试用的内存库也走这里
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.Feed{},
		&models.SocialPost{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
