package models

import "time"

type Subject struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"not null;index"`
	Descripcion string
	CreatedAt   time.Time
}

// Enrollment relates a student (users.id) to a subject.
type Enrollment struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;index;uniqueIndex:idx_enrollment_pair"`
	SubjectID uint `gorm:"not null;index;uniqueIndex:idx_enrollment_pair"`
	Subject   Subject
	CreatedAt time.Time
}

// TeacherAssignment relates a teacher (users.id) to a subject they teach.
type TeacherAssignment struct {
	ID        uint `gorm:"primaryKey"`
	TeacherID uint `gorm:"not null;index;uniqueIndex:idx_assignment_pair"`
	SubjectID uint `gorm:"not null;index;uniqueIndex:idx_assignment_pair"`
	Subject   Subject
	CreatedAt time.Time
}

// Grade holds a student's score for a subject. A missing row (or NULL
// score) means "ungraded", never zero.
type Grade struct {
	ID        uint     `gorm:"primaryKey"`
	StudentID uint     `gorm:"not null;index;uniqueIndex:idx_grade_pair"`
	SubjectID uint     `gorm:"not null;index;uniqueIndex:idx_grade_pair"`
	Score     *float64 `gorm:"type:decimal(5,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notification is a dated message addressed to a student, listed newest
// first on the student dashboard.
type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	StudentID uint      `gorm:"not null;index"`
	Mensaje   string    `gorm:"not null"`
	Fecha     time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// ParentStudent links a parent to one of their students (both users.id).
type ParentStudent struct {
	ID        uint `gorm:"primaryKey"`
	ParentID  uint `gorm:"not null;index;uniqueIndex:idx_parent_student_pair"`
	StudentID uint `gorm:"not null;index;uniqueIndex:idx_parent_student_pair"`
	CreatedAt time.Time
}
