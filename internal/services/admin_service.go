package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/auth"
	"github.com/R3D13N5/gestion-estudiantes/internal/models"
	"github.com/R3D13N5/gestion-estudiantes/validation"
)

// AdminService checks credentials against the separate admin store.
type AdminService struct{ DB *gorm.DB }

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{DB: db} }

// Authenticate verifies the email/password pair against the admin store and
// returns the session snapshot with the admin role.
func (s *AdminService) Authenticate(correo, password string) (auth.Session, error) {
	correo = strings.TrimSpace(correo)
	v := validation.Violations{}
	validation.Required("correo", correo, v)
	validation.Required("password", password, v)
	if !v.Empty() {
		return auth.Session{}, &ValidationError{Violations: v}
	}
	var admin models.Admin
	if err := s.DB.Where("correo = ?", correo).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Session{}, ErrInvalidCredentials
		}
		return auth.Session{}, fmt.Errorf("lookup admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return auth.Session{}, ErrInvalidCredentials
	}
	return auth.Session{ID: admin.ID, Name: admin.Nombre, Email: admin.Correo, Role: models.RoleAdmin}, nil
}

// IsAdmin reports membership in the admin store.
func (s *AdminService) IsAdmin(correo string) bool {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("correo = ?", strings.TrimSpace(correo)).Limit(1).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// Stats summarizes the store for the admin dashboard.
type Stats struct {
	Teachers int64
	Students int64
	Parents  int64
	Subjects int64
}

func (s *AdminService) Stats() (Stats, error) {
	var st Stats
	if err := s.DB.Model(&models.User{}).Where("rol = ?", models.RoleTeacher).Count(&st.Teachers).Error; err != nil {
		return st, err
	}
	if err := s.DB.Model(&models.User{}).Where("rol = ?", models.RoleStudent).Count(&st.Students).Error; err != nil {
		return st, err
	}
	if err := s.DB.Model(&models.User{}).Where("rol = ?", models.RoleParent).Count(&st.Parents).Error; err != nil {
		return st, err
	}
	if err := s.DB.Model(&models.Subject{}).Count(&st.Subjects).Error; err != nil {
		return st, err
	}
	return st, nil
}
