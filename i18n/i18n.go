package i18n

import "strings"

// DefaultLang is the product's primary language. The original audience is
// Spanish-speaking; English is offered as a secondary UI language.
const DefaultLang = "es"

var catalog = map[string]map[string]string{
	"es": {
		"app_title":           "Gestión de Estudiantes",
		"required":            "Requerido",
		"email":               "Correo electrónico",
		"password":            "Contraseña",
		"name":                "Nombre completo",
		"role":                "Rol",
		"sign_in":             "Iniciar sesión",
		"sign_up":             "Registrarse",
		"sign_out":            "Cerrar sesión",
		"dashboard":           "Panel",
		"subjects":            "Materias",
		"notifications":       "Notificaciones",
		"students":            "Estudiantes",
		"grades":              "Notas",
		"description":         "Descripción",
		"score":               "Calificación",
		"no_subjects":         "No hay materias asignadas.",
		"no_notifications":    "No hay notificaciones.",
		"no_students":         "No hay estudiantes asociados.",
		"role_admin":          "Administrador",
		"role_teacher":        "Profesor",
		"role_student":        "Estudiante",
		"role_parent":         "Padre",
		"ungraded":            "Sin calificar",
		"missing_fields":      "Por favor complete todos los campos",
		"invalid_credentials": "Correo o contraseña incorrectos.",
		"duplicate_contact":   "El correo ya está registrado.",
		"register_success":    "Registro exitoso. Ahora puedes iniciar sesión.",
		"login_error":         "Ocurrió un error al iniciar sesión.",
		"register_error":      "Ocurrió un error al registrarte. Intenta nuevamente.",
		"dashboard_error":     "Ocurrió un error al cargar el panel",
		"grades_error":        "Ocurrió un error al obtener tus notas.",
		"unknown_role":        "Rol desconocido. Contacta al administrador.",
		"not_enrolled":        "No estás inscrito en ninguna materia actualmente.",
		"not_found_title":     "Página no encontrada",
		"server_error_title":  "Error interno del servidor",
		"admin_panel":         "Panel de administración",
		"total_teachers":      "Profesores registrados",
		"total_students":      "Estudiantes registrados",
		"total_parents":       "Padres registrados",
		"total_subjects":      "Materias",
	},
	"en": {
		"app_title":           "Student Management",
		"required":            "Required",
		"email":               "Email",
		"password":            "Password",
		"name":                "Full name",
		"role":                "Role",
		"sign_in":             "Sign in",
		"sign_up":             "Sign up",
		"sign_out":            "Sign out",
		"dashboard":           "Dashboard",
		"subjects":            "Subjects",
		"notifications":       "Notifications",
		"students":            "Students",
		"grades":              "Grades",
		"description":         "Description",
		"score":               "Score",
		"no_subjects":         "No subjects assigned.",
		"no_notifications":    "No notifications.",
		"no_students":         "No linked students.",
		"role_admin":          "Administrator",
		"role_teacher":        "Teacher",
		"role_student":        "Student",
		"role_parent":         "Parent",
		"ungraded":            "Ungraded",
		"missing_fields":      "Please fill in all fields",
		"invalid_credentials": "Incorrect email or password.",
		"duplicate_contact":   "That email is already registered.",
		"register_success":    "Registration successful. You can now sign in.",
		"login_error":         "Something went wrong while signing in.",
		"register_error":      "Something went wrong while registering. Please try again.",
		"dashboard_error":     "Could not load the dashboard",
		"grades_error":        "Something went wrong while loading your grades.",
		"unknown_role":        "Unknown role. Contact the administrator.",
		"not_enrolled":        "You are not enrolled in any subject yet.",
		"not_found_title":     "Page not found",
		"server_error_title":  "Internal server error",
		"admin_panel":         "Administration panel",
		"total_teachers":      "Registered teachers",
		"total_students":      "Registered students",
		"total_parents":       "Registered parents",
		"total_subjects":      "Subjects",
	},
}

// T translates code for lang. Unknown languages fall back to the default
// language; unknown codes fall back to the code itself, so passing literal
// text through T is harmless.
func T(lang, code string) string {
	if m, ok := catalog[lang]; ok {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	if lang != DefaultLang {
		if msg, ok := catalog[DefaultLang][code]; ok {
			return msg
		}
	}
	return code
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if tag == "" {
			continue
		}
		base := strings.SplitN(tag, "-", 2)[0]
		if _, ok := catalog[base]; ok {
			return base
		}
	}
	return DefaultLang
}
