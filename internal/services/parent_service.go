package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/internal/db"
	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

// ParentService backs the parent dashboard.
type ParentService struct {
	DB   *gorm.DB
	Caps db.Capabilities
}

func NewParentService(g *gorm.DB, caps db.Capabilities) *ParentService {
	return &ParentService{DB: g, Caps: caps}
}

// LinkedStudent is the slice of the user record the parent dashboard shows.
type LinkedStudent struct {
	ID     uint
	Nombre string
}

// LinkedStudents lists the students associated with the parent, degrading
// to empty when the link relation is absent from the schema.
func (s *ParentService) LinkedStudents(parentID uint) ([]LinkedStudent, error) {
	if !s.Caps.ParentLinks {
		return []LinkedStudent{}, nil
	}
	var students []LinkedStudent
	err := s.DB.Model(&models.User{}).
		Select("users.id, users.nombre").
		Joins("JOIN parent_students ON parent_students.student_id = users.id").
		Where("parent_students.parent_id = ?", parentID).
		Order("users.nombre").
		Scan(&students).Error
	if err != nil {
		return nil, fmt.Errorf("linked students for parent %d: %w", parentID, err)
	}
	return students, nil
}
