package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/internal/db"
	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

// TeacherService backs the teacher dashboard.
type TeacherService struct {
	DB   *gorm.DB
	Caps db.Capabilities
}

func NewTeacherService(g *gorm.DB, caps db.Capabilities) *TeacherService {
	return &TeacherService{DB: g, Caps: caps}
}

// AssignedSubjects lists the subjects assigned to the teacher. A schema
// without the assignment relation degrades to an empty list.
func (s *TeacherService) AssignedSubjects(teacherID uint) ([]models.Subject, error) {
	if !s.Caps.TeacherAssignments {
		return []models.Subject{}, nil
	}
	var subjects []models.Subject
	err := s.DB.Model(&models.Subject{}).
		Joins("JOIN teacher_assignments ON teacher_assignments.subject_id = subjects.id").
		Where("teacher_assignments.teacher_id = ?", teacherID).
		Order("subjects.nombre").
		Find(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("assigned subjects for teacher %d: %w", teacherID, err)
	}
	return subjects, nil
}
