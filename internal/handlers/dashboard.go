package handlers

import (
	"log/slog"
	"net/http"

	"github.com/R3D13N5/gestion-estudiantes/auth"
	"github.com/R3D13N5/gestion-estudiantes/httpx"
	"github.com/R3D13N5/gestion-estudiantes/internal/middleware"
	"github.com/R3D13N5/gestion-estudiantes/internal/models"
	"github.com/R3D13N5/gestion-estudiantes/internal/services"
)

// dashboardPaths is the role dispatch table: the only place that decides
// where an authenticated role lands.
var dashboardPaths = map[string]string{
	models.RoleAdmin:   "/admin/dashboard",
	models.RoleTeacher: "/teacher/dashboard",
	models.RoleStudent: "/student/dashboard",
	models.RoleParent:  "/parent/dashboard",
}

// DashboardHandler serves /dashboard dispatch and the four role dashboards.
type DashboardHandler struct {
	Teacher *services.TeacherService
	Student *services.StudentService
	Parent  *services.ParentService
	Admin   *services.AdminService
	Log     *slog.Logger
}

func NewDashboardHandler(t *services.TeacherService, s *services.StudentService, p *services.ParentService, a *services.AdminService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{Teacher: t, Student: s, Parent: p, Admin: a, Log: log}
}

func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/dashboard", h.dispatch)
	mux.Handle("/admin/dashboard", auth.RequireRole(models.RoleAdmin, http.HandlerFunc(h.adminDashboard)))
	mux.Handle("/teacher/dashboard", auth.RequireRole(models.RoleTeacher, http.HandlerFunc(h.teacherDashboard)))
	mux.Handle("/student/dashboard", auth.RequireRole(models.RoleStudent, http.HandlerFunc(h.studentDashboard)))
	mux.Handle("/student/grades", auth.RequireRole(models.RoleStudent, http.HandlerFunc(h.studentGrades)))
	mux.Handle("/parent/dashboard", auth.RequireRole(models.RoleParent, http.HandlerFunc(h.parentDashboard)))
}

// dispatch routes the session's role to its dashboard. An unknown role goes
// home with a notice; the session is deliberately left intact (product has
// not decided whether these stuck sessions should be cleared).
func (h *DashboardHandler) dispatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	target, ok := dashboardPaths[sess.Role]
	if !ok {
		h.Log.Warn("session with unknown role", "user_id", sess.ID, "rol", sess.Role)
		middleware.Flash(w, "unknown_role")
		httpx.SeeOther(w, r, "/")
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Each role dashboard catches query failures into a logged generic notice
// and still renders its shell; only /student/grades redirects.

func (h *DashboardHandler) teacherDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	data := map[string]any{}
	subjects, err := h.Teacher.AssignedSubjects(sess.ID)
	if err != nil {
		h.Log.Error("teacher dashboard query failed", "user_id", sess.ID, "error", err)
		data["Error"] = "dashboard_error"
		subjects = nil
	}
	data["Materias"] = subjects
	renderPage(h.Log, w, r, "teacher_dashboard.html", data)
}

func (h *DashboardHandler) studentDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	data := map[string]any{}
	notes, err := h.Student.RecentNotifications(sess.ID)
	if err != nil {
		h.Log.Error("student notifications query failed", "user_id", sess.ID, "error", err)
		data["Error"] = "dashboard_error"
		notes = nil
	}
	subjects, err := h.Student.EnrolledSubjects(sess.ID)
	if err != nil {
		h.Log.Error("student subjects query failed", "user_id", sess.ID, "error", err)
		data["Error"] = "dashboard_error"
		subjects = nil
	}
	data["Notificaciones"] = notes
	data["Materias"] = subjects
	renderPage(h.Log, w, r, "student_dashboard.html", data)
}

func (h *DashboardHandler) studentGrades(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	rows, err := h.Student.GradeReport(sess.ID)
	if err != nil {
		h.Log.Error("grade report query failed", "user_id", sess.ID, "error", err)
		middleware.Flash(w, "grades_error")
		httpx.SeeOther(w, r, "/student/dashboard")
		return
	}
	if len(rows) == 0 {
		middleware.Flash(w, "not_enrolled")
		httpx.SeeOther(w, r, "/student/dashboard")
		return
	}
	renderPage(h.Log, w, r, "grades.html", map[string]any{"Notas": rows})
}

func (h *DashboardHandler) parentDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	data := map[string]any{}
	students, err := h.Parent.LinkedStudents(sess.ID)
	if err != nil {
		h.Log.Error("parent dashboard query failed", "user_id", sess.ID, "error", err)
		data["Error"] = "dashboard_error"
		students = nil
	}
	data["Estudiantes"] = students
	renderPage(h.Log, w, r, "parent_dashboard.html", data)
}

func (h *DashboardHandler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	data := map[string]any{}
	stats, err := h.Admin.Stats()
	if err != nil {
		h.Log.Error("admin stats query failed", "user_id", sess.ID, "error", err)
		data["Error"] = "dashboard_error"
	}
	data["Stats"] = stats
	renderPage(h.Log, w, r, "admin_dashboard.html", data)
}
