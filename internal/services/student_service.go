package services

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/internal/db"
	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

// StudentService backs the student dashboard and the grade view.
type StudentService struct {
	DB   *gorm.DB
	Caps db.Capabilities
}

func NewStudentService(g *gorm.DB, caps db.Capabilities) *StudentService {
	return &StudentService{DB: g, Caps: caps}
}

// RecentNotifications returns the latest five notifications, newest first.
// The section degrades to empty unless both the relation and its message
// column exist.
func (s *StudentService) RecentNotifications(studentID uint) ([]models.Notification, error) {
	if !s.Caps.Notifications || !s.Caps.NotificationMessage {
		return []models.Notification{}, nil
	}
	var notes []models.Notification
	err := s.DB.Where("student_id = ?", studentID).
		Order("fecha DESC").
		Limit(5).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("notifications for student %d: %w", studentID, err)
	}
	return notes, nil
}

// EnrolledSubjects lists the subjects the student is enrolled in.
func (s *StudentService) EnrolledSubjects(studentID uint) ([]models.Subject, error) {
	if !s.Caps.Enrollments {
		return []models.Subject{}, nil
	}
	var subjects []models.Subject
	err := s.DB.Model(&models.Subject{}).
		Joins("JOIN enrollments ON enrollments.subject_id = subjects.id").
		Where("enrollments.student_id = ?", studentID).
		Order("subjects.nombre").
		Find(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("enrolled subjects for student %d: %w", studentID, err)
	}
	return subjects, nil
}

// GradeRow is one line of the grade table. Score stays nil for an enrolled
// subject that has no grade yet.
type GradeRow struct {
	Materia     string
	Descripcion string
	Score       *float64
}

// Label renders the score, or the "ungraded" translation code when there is
// none; the template pipes it through t, which passes numbers through
// untouched.
func (g GradeRow) Label() string {
	if g.Score == nil {
		return "ungraded"
	}
	return strconv.FormatFloat(*g.Score, 'f', -1, 64)
}

// GradeReport returns one row per enrolled subject, LEFT JOINed against
// grades so ungraded subjects still appear. An empty result means the
// student has no enrollments; the handler redirects in that case instead of
// rendering an empty table.
func (s *StudentService) GradeReport(studentID uint) ([]GradeRow, error) {
	if !s.Caps.Enrollments {
		return []GradeRow{}, nil
	}
	q := s.DB.Table("enrollments").
		Joins("JOIN subjects ON subjects.id = enrollments.subject_id").
		Where("enrollments.student_id = ?", studentID).
		Order("subjects.nombre")
	if s.Caps.Grades {
		q = q.Select("subjects.nombre AS materia, subjects.descripcion AS descripcion, grades.score AS score").
			Joins("LEFT JOIN grades ON grades.student_id = enrollments.student_id AND grades.subject_id = enrollments.subject_id")
	} else {
		q = q.Select("subjects.nombre AS materia, subjects.descripcion AS descripcion")
	}
	var rows []GradeRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("grade report for student %d: %w", studentID, err)
	}
	return rows, nil
}
