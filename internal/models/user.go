package models

import "time"

// Canonical role values stored on users.rol. Display names go through i18n.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// KnownRoles lists the roles the dashboard dispatcher understands.
var KnownRoles = []string{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

// User is the single credential record for every role. Correo is the login
// key and is unique across all users.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	Correo    string `gorm:"unique;not null;index"`
	Password  string `gorm:"not null"` // bcrypt hash, never plaintext
	Rol       string `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Admin lives in its own store, separate from users, and only the
// /admin/login path checks it.
type Admin struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	Correo    string `gorm:"unique;not null;index"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
