// Command seed fills an empty database with an admin account and sample site
// content. Tables that already hold rows are left alone.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	dbpkg "github.com/BruksfildServices01/quickfixx-site/internal/db"
	"github.com/BruksfildServices01/quickfixx-site/internal/logging"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db := dbpkg.NewDB(cfg, logger)

	if err := Seed(context.Background(), db, cfg, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed complete")
}

// Seed is idempotent.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	db = db.WithContext(ctx)

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	steps := []struct {
		name  string
		model any
		rows  any
	}{
		{"admin_users", &models.AdminUser{}, []models.AdminUser{{
			Username:     cfg.AdminUsername,
			PasswordHash: string(hashed),
		}}},
		{"services", &models.Service{}, sampleServices()},
		{"packages", &models.Package{}, samplePackages()},
		{"staff", &models.Staff{}, sampleStaff()},
		{"gallery", &models.Gallery{}, sampleGallery()},
		{"testimonials", &models.Testimonial{}, sampleTestimonials()},
		{"contact_info", &models.ContactInfo{}, []models.ContactInfo{sampleContact()}},
		{"branding", &models.Branding{}, []models.Branding{{BrandName: cfg.DefaultBrandName}}},
	}

	for _, s := range steps {
		var n int64
		if err := db.Model(s.model).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			logger.Info("skipping table with data", zap.String("table", s.name), zap.Int64("rows", n))
			continue
		}
		if err := db.Create(s.rows).Error; err != nil {
			return err
		}
		logger.Info("seeded", zap.String("table", s.name))
	}

	return nil
}

func sampleServices() []models.Service {
	return []models.Service{
		{
			Title:       "Plumbing Repairs",
			Description: "Leaks, clogged drains, taps and toilet repairs done the same day.",
			Price:       80,
			ImageURL:    "https://images.unsplash.com/photo-1585704032915-c3400ca199e7",
			Category:    "Plumbing",
			IsActive:    true,
		},
		{
			Title:       "Electrical Work",
			Description: "Socket and switch replacement, light fittings and fault finding.",
			Price:       95,
			ImageURL:    "https://images.unsplash.com/photo-1621905251918-48416bd8575a",
			Category:    "Electrical",
			IsActive:    true,
		},
		{
			Title:       "Furniture Assembly",
			Description: "Flat-pack furniture assembled and fixed to the wall where needed.",
			Price:       60,
			ImageURL:    "https://images.unsplash.com/photo-1581578731548-c64695cc6952",
			Category:    "Assembly",
			IsActive:    true,
		},
		{
			Title:       "Painting & Decorating",
			Description: "Interior walls, ceilings and woodwork with a clean finish.",
			Price:       150,
			ImageURL:    "https://images.unsplash.com/photo-1562259949-e8e7689d7828",
			Category:    "Painting",
			IsActive:    true,
		},
	}
}

func samplePackages() []models.Package {
	return []models.Package{
		{
			Name:            "Home Starter",
			Description:     "Three small jobs in a single visit.",
			OriginalPrice:   200,
			DiscountedPrice: 160,
			Features:        []string{"Up to 3 hours", "Materials quote included", "30-day guarantee"},
			IsActive:        true,
		},
		{
			Name:            "Move-In Ready",
			Description:     "Everything a new home needs in the first week.",
			OriginalPrice:   450,
			DiscountedPrice: 360,
			Features:        []string{"Full day on site", "Furniture assembly", "Curtain and shelf fitting", "90-day guarantee"},
			IsPopular:       true,
			IsActive:        true,
		},
	}
}

func sampleStaff() []models.Staff {
	return []models.Staff{
		{
			EmployeeID: "QF001",
			Name:       "Alex Morgan",
			Role:       "Lead Technician",
			Bio:        "Twelve years of residential repairs and renovations.",
			ImageURL:   "https://images.unsplash.com/photo-1560250097-0b93528c311a",
			Expertise:  []string{"Plumbing", "Electrical"},
			IsActive:   true,
		},
		{
			EmployeeID: "QF002",
			Name:       "Sam Rivera",
			Role:       "Technician",
			Bio:        "Carpentry and decorating specialist.",
			ImageURL:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
			Expertise:  []string{"Carpentry", "Painting"},
			IsActive:   true,
		},
	}
}

func sampleGallery() []models.Gallery {
	return []models.Gallery{
		{
			BeforeImageURL: "https://images.unsplash.com/photo-1484154218962-a197022b5858",
			AfterImageURL:  "https://images.unsplash.com/photo-1556911220-bff31c812dba",
			Title:          "Kitchen refresh",
			Description:    "New worktops, tiling and lighting.",
			IsActive:       true,
		},
	}
}

func sampleTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			CustomerName: "Jordan P.",
			Rating:       5,
			Comment:      "Arrived on time and fixed the leak in twenty minutes.",
			ServiceType:  "Plumbing",
			IsActive:     true,
		},
		{
			CustomerName: "Casey L.",
			Rating:       4,
			Comment:      "Tidy work on the wardrobes, would book again.",
			ServiceType:  "Assembly",
			IsActive:     true,
		},
	}
}

func sampleContact() models.ContactInfo {
	return models.ContactInfo{
		Phone:     "+44 20 7946 0000",
		Whatsapp:  "+44 7700 900000",
		Email:     "hello@quickfixx.example",
		Facebook:  "https://facebook.com/quickfixx",
		Instagram: "https://instagram.com/quickfixx",
	}
}
