package models

import "time"

// Role profiles are 1:1 extension records keyed by users.id. They exist so
// role-specific attributes have a home without duplicating the credential
// columns; admin has no profile. Academic relations key off users.id
// directly, so dashboard queries scope by the session id.

type StudentProfile struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	User      User `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

type TeacherProfile struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex;not null"`
	User       User `gorm:"foreignKey:UserID"`
	Department string
	CreatedAt  time.Time
}

type ParentProfile struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	User      User `gorm:"foreignKey:UserID"`
	Phone     string
	CreatedAt time.Time
}
