package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	"github.com/BruksfildServices01/quickfixx-site/internal/db/dbtest"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	cfg := &config.Config{
		AdminUsername:    "admin",
		AdminPassword:    "admin123",
		DefaultBrandName: "Quickfixx",
	}
	ctx := context.Background()

	require.NoError(t, Seed(ctx, db, cfg, zap.NewNop()))
	require.NoError(t, Seed(ctx, db, cfg, zap.NewNop()))

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].PasswordHash), []byte("admin123")))

	var services int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.EqualValues(t, len(sampleServices()), services)

	var staff models.Staff
	require.NoError(t, db.Where("employee_id = ?", "QF001").First(&staff).Error)
	assert.Equal(t, []string{"Plumbing", "Electrical"}, staff.Expertise)

	var branding models.Branding
	require.NoError(t, db.First(&branding).Error)
	assert.Equal(t, models.SingletonID, branding.ID)
	assert.Equal(t, "Quickfixx", branding.BrandName)
}
