package db

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/internal/models"
)

func openMemDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return g
}

func TestDetectCapabilitiesFullSchema(t *testing.T) {
	g := openMemDB(t)
	for _, m := range AllModels {
		if err := g.AutoMigrate(m); err != nil {
			t.Fatalf("automigrate %T: %v", m, err)
		}
	}
	caps := DetectCapabilities(g, nil)
	if !caps.TeacherAssignments || !caps.Enrollments || !caps.Notifications ||
		!caps.NotificationMessage || !caps.ParentLinks || !caps.Grades {
		t.Errorf("expected all capabilities on a full schema, got %+v", caps)
	}
}

func TestDetectCapabilitiesPartialSchema(t *testing.T) {
	g := openMemDB(t)
	if err := g.AutoMigrate(&models.User{}, &models.Subject{}, &models.Enrollment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	caps := DetectCapabilities(g, nil)
	if !caps.Enrollments {
		t.Error("enrollments table exists but flag is off")
	}
	if caps.TeacherAssignments || caps.Notifications || caps.NotificationMessage ||
		caps.ParentLinks || caps.Grades {
		t.Errorf("absent relations must read false, got %+v", caps)
	}
}

func TestDetectCapabilitiesNotificationTableWithoutMessage(t *testing.T) {
	g := openMemDB(t)
	// legacy shape: table present, message column missing
	if err := g.Exec(`CREATE TABLE notifications (id INTEGER PRIMARY KEY, student_id INTEGER, fecha DATETIME)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	caps := DetectCapabilities(g, nil)
	if !caps.Notifications {
		t.Error("notifications table exists but flag is off")
	}
	if caps.NotificationMessage {
		t.Error("message column is absent but flag is on")
	}
}
