package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/auth"
	"github.com/edusga/sga-admin/internal/config"
	"github.com/edusga/sga-admin/internal/logger"
	"github.com/edusga/sga-admin/internal/service"
	"github.com/edusga/sga-admin/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SGA admin client")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Session & HTTP Client ─────────────────────────────────────────
	session := auth.NewSession(cfg.TokenFile, log)
	session.OnClear(func() {
		fmt.Println("\nSesión finalizada. Use la opción 'Sesión' para ingresar un nuevo token.")
	})
	client := api.NewClient(cfg, session, log)

	// ─── Initialize Services ──────────────────────────────────────────
	app := &app{
		reader:      bufio.NewReader(os.Stdin),
		log:         log,
		session:     session,
		roles:       service.NewRoleService(client, log),
		users:       service.NewUserService(client, log),
		subjects:    service.NewSubjectService(client, log),
		courses:     service.NewCourseService(client, log),
		enrollments: service.NewEnrollmentService(client, log),
		grades:      service.NewGradeService(client, log),
	}

	ctx := context.Background()

	if session.State() != auth.StateActive {
		app.login()
	}

	app.run(ctx)
}

type app struct {
	reader      *bufio.Reader
	log         zerolog.Logger
	session     *auth.Session
	roles       *service.RoleService
	users       *service.UserService
	subjects    *service.SubjectService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	grades      *service.GradeService
}

func (a *app) run(ctx context.Context) {
	for {
		fmt.Println("\n=== SGA Administración ===")
		fmt.Println("1. Roles")
		fmt.Println("2. Usuarios")
		fmt.Println("3. Asignaturas")
		fmt.Println("4. Cursos")
		fmt.Println("5. Inscripciones")
		fmt.Println("6. Notas")
		fmt.Println("7. Sesión")
		fmt.Println("0. Salir")

		switch a.promptInt("Opción") {
		case 1:
			a.rolesMenu(ctx)
		case 2:
			a.usersMenu(ctx)
		case 3:
			a.subjectsMenu(ctx)
		case 4:
			a.coursesMenu(ctx)
		case 5:
			a.enrollmentsMenu(ctx)
		case 6:
			a.gradesMenu(ctx)
		case 7:
			a.login()
		case 0:
			return
		}
	}
}

// login attaches a pasted access token to the session. There is no
// credential exchange here: the backend issues tokens elsewhere and the
// client only attaches them.
func (a *app) login() {
	fmt.Print("Pegue el token de acceso: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("No se pudo leer el token.")
		return
	}
	if err := a.session.Login(string(raw)); err != nil {
		fmt.Println("Token vacío; la sesión no cambió.")
		return
	}
	fmt.Println("Token guardado. Estado de sesión:", a.session.State())
}

// reportErr prints a normalized error the way the SPA showed transient
// notifications: business rules and validation get field-level detail,
// everything else a single line.
func reportErr(err error) {
	apiErr := api.AsError(err)
	fmt.Println("✗", apiErr.Message)
	for field, msg := range apiErr.Fields {
		fmt.Printf("  - %s: %s\n", field, msg)
	}
}
