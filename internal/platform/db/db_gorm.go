// Package db opens the GORM connection the repositories run on.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "task_backend/internal/feature/auth/domain/entity"
	taskentity "task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/platform/config"
)

// OpenDB connects to the database selected by cfg.DBDriver, retrying until a
// deadline so the service survives a database that comes up later than it
// does. TranslateError lets the repositories detect duplicate keys without
// driver-specific checks.
func OpenDB(cfg *config.Config) *gorm.DB {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}

	var database *gorm.DB

	deadline := time.Now().Add(60 * time.Second)
	for {
		database, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := database.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return database
}

// dialectorFor builds the driver dialector for cfg.
func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		var dsn string
		if cfg.InstanceConnectionName != "" {
			// Cloud SQL connections go through a unix socket.
			dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.InstanceConnectionName, cfg.DBName)
		} else {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		}
		return gmysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return gpostgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
