package database

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the connection and, when migrate is set, applies the schema.
// Release deployments run with migrations off unless -migrate is passed.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.Respondent{},
			&model.ToolUsageResponse{},
			&model.LikertResponse{},
		)
		if err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}
