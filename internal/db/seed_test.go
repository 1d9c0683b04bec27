package db

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@instituto.edu")
	t.Setenv("ADMIN_PASSWORD", "admin123")
	g := openMemDB(t)
	if err := g.AutoMigrate(&models.Admin{}, &models.Subject{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	if err := seed(g); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := seed(g); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var admins, subjects int64
	g.Model(&models.Admin{}).Count(&admins)
	g.Model(&models.Subject{}).Count(&subjects)
	if admins != 1 {
		t.Errorf("admins = %d, want 1", admins)
	}
	if subjects != 3 {
		t.Errorf("subjects = %d, want 3", subjects)
	}

	var admin models.Admin
	if err := g.Where("correo = ?", "admin@instituto.edu").First(&admin).Error; err != nil {
		t.Fatalf("admin lookup: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")) != nil {
		t.Error("seeded admin password does not verify")
	}
}
