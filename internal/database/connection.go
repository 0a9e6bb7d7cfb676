package database

import (
	"fmt"
	"time"

	"github.com/aequiz/quizbot/internal/config"
	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.GameState{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedQuestions fills the store with a default five-question set when a
// fresh deployment has fewer than a full quiz configured.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count >= models.QuizLength {
		return nil
	}

	logger.Info("Seeding default quiz questions...")

	questions := []models.Question{
		models.NewQuestion(1, "What is the capital of France?",
			[4]string{"Paris", "London", "Berlin", "Rome"}, "Paris"),
		models.NewQuestion(2, "Which planet is known as the Red Planet?",
			[4]string{"Earth", "Mars", "Jupiter", "Venus"}, "Mars"),
		models.NewQuestion(3, "What is the largest ocean on Earth?",
			[4]string{"Atlantic", "Indian", "Pacific", "Arctic"}, "Pacific"),
		models.NewQuestion(4, "Who invented the telephone?",
			[4]string{"Thomas Edison", "Alexander Graham Bell", "Nikola Tesla", "Isaac Newton"}, "Alexander Graham Bell"),
		models.NewQuestion(5, "What is the currency of Japan?",
			[4]string{"Yuan", "Won", "Yen", "Ringgit"}, "Yen"),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
}
