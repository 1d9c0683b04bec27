package db

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

// Capabilities records which optional relations the underlying schema
// actually has. The dashboards tolerate databases that predate parts of the
// schema by degrading those sections to empty lists; the flags are resolved
// once at startup instead of probing the catalog on every request.
type Capabilities struct {
	TeacherAssignments  bool
	Enrollments         bool
	Notifications       bool
	NotificationMessage bool
	ParentLinks         bool
	Grades              bool
}

// DetectCapabilities introspects the schema once at boot.
func DetectCapabilities(db *gorm.DB, log *slog.Logger) Capabilities {
	m := db.Migrator()
	caps := Capabilities{
		TeacherAssignments: m.HasTable(&models.TeacherAssignment{}),
		Enrollments:        m.HasTable(&models.Enrollment{}),
		Notifications:      m.HasTable(&models.Notification{}),
		ParentLinks:        m.HasTable(&models.ParentStudent{}),
		Grades:             m.HasTable(&models.Grade{}),
	}
	if caps.Notifications {
		caps.NotificationMessage = m.HasColumn(&models.Notification{}, "Mensaje")
	}
	if log != nil {
		log.Info("schema capabilities resolved",
			"teacher_assignments", caps.TeacherAssignments,
			"enrollments", caps.Enrollments,
			"notifications", caps.Notifications && caps.NotificationMessage,
			"parent_links", caps.ParentLinks,
			"grades", caps.Grades,
		)
	}
	return caps
}
