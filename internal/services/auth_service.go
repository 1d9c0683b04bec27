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

// AuthService implements login and registration against the user store.
type AuthService struct{ DB *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{DB: db} }

// Login verifies the credentials and returns the session snapshot to seal
// into the cookie. Unknown email and wrong password return the same error.
func (s *AuthService) Login(correo, password string) (auth.Session, error) {
	correo = strings.TrimSpace(correo)
	v := validation.Violations{}
	validation.Required("correo", correo, v)
	validation.Required("password", password, v)
	if !v.Empty() {
		return auth.Session{}, &ValidationError{Violations: v}
	}
	var user models.User
	if err := s.DB.Where("correo = ?", correo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Session{}, ErrInvalidCredentials
		}
		return auth.Session{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return auth.Session{}, ErrInvalidCredentials
	}
	return auth.Session{ID: user.ID, Name: user.Nombre, Email: user.Correo, Role: user.Rol}, nil
}

// Register creates the user and, for the recognized non-admin roles, its
// role profile, in one transaction: if the profile insert fails nothing
// persists. Unrecognized roles get a user and no profile.
func (s *AuthService) Register(nombre, correo, password, rol string) (*models.User, error) {
	nombre = strings.TrimSpace(nombre)
	correo = strings.TrimSpace(correo)
	rol = strings.TrimSpace(rol)
	v := validation.Violations{}
	validation.Required("nombre", nombre, v)
	validation.Required("correo", correo, v)
	validation.Required("password", password, v)
	validation.Required("rol", rol, v)
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Nombre: nombre, Correo: correo, Password: string(hash), Rol: rol}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("correo = ?", correo).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateContact
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch rol {
		case models.RoleStudent:
			return tx.Create(&models.StudentProfile{UserID: user.ID}).Error
		case models.RoleTeacher:
			return tx.Create(&models.TeacherProfile{UserID: user.ID}).Error
		case models.RoleParent:
			return tx.Create(&models.ParentProfile{UserID: user.ID}).Error
		}
		// unrecognized role: user only, no profile
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateContact) || isDuplicateErr(err) {
			return nil, ErrDuplicateContact
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return &user, nil
}
