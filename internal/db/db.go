package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

// Migrate creates or updates every table the site uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.StaffUser{},
		&models.Service{},
		&models.Package{},
		&models.Staff{},
		&models.Gallery{},
		&models.Testimonial{},
		&models.Booking{},
		&models.ContactInfo{},
		&models.Branding{},
		&models.AuditLog{},
	)
}
