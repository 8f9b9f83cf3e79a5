package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/edusga/sga-admin/internal/model"
	"github.com/edusga/sga-admin/internal/service"
	"github.com/edusga/sga-admin/internal/store"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// ─── Roles ──────────────────────────────────────────────────────────────

func (a *app) rolesMenu(ctx context.Context) {
	st := store.NewRoleStore(ctx, a.roles, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\t")
		for _, r := range st.Items() {
			fmt.Fprintf(w, "%d\t%s\t\n", r.ID, r.Name)
		}
		w.Flush()

		fmt.Println("\n[Roles] 1.Refrescar 2.Crear 3.Editar 4.Eliminar 5.Estadísticas 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			form := model.RoleForm{Name: a.promptString("Nombre del rol")}
			if _, err := st.Create(ctx, form); err != nil {
				reportErr(err)
			}
		case 3:
			id := a.promptInt("ID del rol")
			upd := model.RoleUpdate{Name: a.promptOptString("Nombre")}
			if _, err := st.Update(ctx, id, upd); err != nil {
				reportErr(err)
			}
		case 4:
			id := a.promptInt("ID del rol")
			if service.IsReserved(id) {
				// Mirror the disabled delete button: reserved roles are
				// not even submitted.
				fmt.Println("Los roles del sistema (1-3) no pueden eliminarse.")
				continue
			}
			if a.confirm("¿Eliminar rol?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 5:
			a.roleStats(ctx)
		case 0:
			return
		}
	}
}

func (a *app) roleStats(ctx context.Context) {
	stats, err := a.roles.UsageStats(ctx)
	if err != nil {
		reportErr(err)
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tROL\tUSUARIOS\t")
	for id, usage := range stats {
		fmt.Fprintf(w, "%d\t%s\t%d\t\n", id, usage.Name, usage.Count)
	}
	w.Flush()
}

// ─── Usuarios ───────────────────────────────────────────────────────────

func (a *app) usersMenu(ctx context.Context) {
	st := store.NewUserStore(ctx, a.users, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tCORREO\tROL\t")
		for _, u := range st.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t\n", u.ID, u.FullName(), u.Email, u.RoleID)
		}
		w.Flush()

		fmt.Println("\n[Usuarios] 1.Refrescar 2.Crear 3.Editar 4.Eliminar 5.Filtrar por rol 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			form := model.UserForm{
				FirstName: a.promptString("Nombre"),
				LastName:  a.promptString("Apellido"),
				Email:     a.promptString("Correo"),
				Password:  a.promptString("Contraseña"),
				RoleID:    a.promptInt("ID de rol"),
			}
			if _, err := st.Create(ctx, form); err != nil {
				reportErr(err)
			}
		case 3:
			id := a.promptInt("ID del usuario")
			upd := model.UserUpdate{
				FirstName: a.promptOptString("Nombre"),
				LastName:  a.promptOptString("Apellido"),
				Email:     a.promptOptString("Correo"),
				Password:  a.promptOptString("Contraseña"),
				RoleID:    a.promptOptInt("ID de rol"),
			}
			if _, err := st.Update(ctx, id, upd); err != nil {
				reportErr(err)
			}
		case 4:
			id := a.promptInt("ID del usuario")
			if a.confirm("¿Eliminar usuario?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 5:
			roleID := a.promptInt("ID de rol (0 = todos)")
			filter := store.Filter{}
			if roleID > 0 {
				filter["rol"] = strconv.Itoa(roleID)
			}
			_ = st.SetFilter(ctx, filter)
		case 0:
			return
		}
	}
}

// ─── Asignaturas ────────────────────────────────────────────────────────

func (a *app) subjectsMenu(ctx context.Context) {
	st := store.NewSubjectStore(ctx, a.subjects, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tDOCENTE\t")
		for _, s := range st.Items() {
			fmt.Fprintf(w, "%d\t%s\t%d\t\n", s.ID, s.Name, s.InstructorID)
		}
		w.Flush()

		fmt.Println("\n[Asignaturas] 1.Refrescar 2.Crear 3.Editar 4.Eliminar 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			form := model.SubjectForm{
				Name:         a.promptString("Nombre"),
				InstructorID: a.promptInt("ID del docente"),
			}
			if _, err := st.Create(ctx, form); err != nil {
				reportErr(err)
			}
		case 3:
			id := a.promptInt("ID de la asignatura")
			upd := model.SubjectUpdate{
				Name:         a.promptOptString("Nombre"),
				InstructorID: a.promptOptInt("ID del docente"),
			}
			if _, err := st.Update(ctx, id, upd); err != nil {
				reportErr(err)
			}
		case 4:
			id := a.promptInt("ID de la asignatura")
			if a.confirm("¿Eliminar asignatura?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 0:
			return
		}
	}
}

// ─── Cursos ─────────────────────────────────────────────────────────────

func (a *app) coursesMenu(ctx context.Context) {
	st := store.NewCourseStore(ctx, a.courses, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tASIGNATURA\t")
		for _, c := range st.Items() {
			fmt.Fprintf(w, "%d\t%s\t%d\t\n", c.ID, c.Name, c.SubjectID)
		}
		w.Flush()

		fmt.Println("\n[Cursos] 1.Refrescar 2.Crear 3.Editar 4.Eliminar 5.Filtrar por asignatura 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			form := model.CourseForm{
				Name:      a.promptString("Nombre"),
				SubjectID: a.promptInt("ID de la asignatura"),
			}
			if _, err := st.Create(ctx, form); err != nil {
				reportErr(err)
			}
		case 3:
			id := a.promptInt("ID del curso")
			upd := model.CourseUpdate{
				Name:      a.promptOptString("Nombre"),
				SubjectID: a.promptOptInt("ID de la asignatura"),
			}
			if _, err := st.Update(ctx, id, upd); err != nil {
				reportErr(err)
			}
		case 4:
			id := a.promptInt("ID del curso")
			if a.confirm("¿Eliminar curso?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 5:
			subjectID := a.promptInt("ID de asignatura (0 = todas)")
			filter := store.Filter{}
			if subjectID > 0 {
				filter["asignatura"] = strconv.Itoa(subjectID)
			}
			_ = st.SetFilter(ctx, filter)
		case 0:
			return
		}
	}
}

// ─── Inscripciones ──────────────────────────────────────────────────────

func (a *app) enrollmentsMenu(ctx context.Context) {
	st := store.NewEnrollmentStore(ctx, a.enrollments, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tESTUDIANTE\tCURSO\tASIGNATURA\t")
		for _, e := range st.Items() {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\n", e.ID, e.StudentID, e.CourseID, e.SubjectID)
		}
		w.Flush()

		fmt.Println("\n[Inscripciones] 1.Refrescar 2.Inscribir 3.Eliminar 4.Filtrar por estudiante 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			a.enrollStudent(ctx, st)
		case 3:
			id := a.promptInt("ID de la inscripción")
			if a.confirm("¿Eliminar inscripción?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 4:
			studentID := a.promptInt("ID de estudiante (0 = todos)")
			filter := store.Filter{}
			if studentID > 0 {
				filter["estudiante"] = strconv.Itoa(studentID)
			}
			_ = st.SetFilter(ctx, filter)
		case 0:
			return
		}
	}
}

// enrollStudent walks the enrollment form: the course choices shown are
// the ones belonging to the chosen subject, and a stale course choice is
// cleared when the subject changes.
func (a *app) enrollStudent(ctx context.Context, st *store.EnrollmentStore) {
	courses, err := a.courses.List(ctx, nil)
	if err != nil {
		reportErr(err)
		return
	}

	form := store.NewEnrollmentFormState(courses)
	form.SelectStudent(a.promptInt("ID del estudiante"))
	form.SelectSubject(a.promptInt("ID de la asignatura"))

	visible := form.VisibleCourses()
	if len(visible) == 0 {
		fmt.Println("La asignatura no tiene cursos.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tCURSO\t")
	for _, c := range visible {
		fmt.Fprintf(w, "%d\t%s\t\n", c.ID, c.Name)
	}
	w.Flush()

	if !form.SelectCourse(a.promptInt("ID del curso")) {
		fmt.Println("El curso no pertenece a la asignatura elegida.")
		return
	}

	payload, ok := form.Form()
	if !ok {
		fmt.Println("Formulario incompleto.")
		return
	}
	if _, err := st.Create(ctx, payload); err != nil {
		reportErr(err)
	}
}

// ─── Notas ──────────────────────────────────────────────────────────────

func (a *app) gradesMenu(ctx context.Context) {
	st := store.NewGradeStore(ctx, a.grades, nil, a.log)
	for {
		if st.Err() != nil {
			reportErr(st.Err())
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tCALIFICACIÓN\tINSCRIPCIÓN\t")
		for _, g := range st.Items() {
			fmt.Fprintf(w, "%d\t%.1f\t%d\t\n", g.ID, g.Score, g.EnrollmentID)
		}
		w.Flush()

		stats := st.Stats()
		fmt.Printf("Promedio: %.2f  Aprobados: %d  Reprobados: %d  Total: %d\n",
			stats.Average, stats.PassCount, stats.FailCount, stats.Total)

		fmt.Println("\n[Notas] 1.Refrescar 2.Crear 3.Editar 4.Eliminar 5.Filtrar por inscripción 0.Volver")
		switch a.promptInt("Opción") {
		case 1:
			_ = st.Fetch(ctx)
		case 2:
			form := model.GradeForm{
				Score:        a.promptFloat("Calificación (0-100)"),
				EnrollmentID: a.promptInt("ID de la inscripción"),
			}
			if _, err := st.Create(ctx, form); err != nil {
				reportErr(err)
			}
		case 3:
			id := a.promptInt("ID de la nota")
			upd := model.GradeUpdate{
				Score:        a.promptOptFloat("Calificación"),
				EnrollmentID: a.promptOptInt("ID de la inscripción"),
			}
			if _, err := st.Update(ctx, id, upd); err != nil {
				reportErr(err)
			}
		case 4:
			id := a.promptInt("ID de la nota")
			if a.confirm("¿Eliminar nota?") {
				if err := st.Delete(ctx, id); err != nil {
					reportErr(err)
				}
			}
		case 5:
			enrollmentID := a.promptInt("ID de inscripción (0 = todas)")
			filter := store.Filter{}
			if enrollmentID > 0 {
				filter["inscripcion"] = strconv.Itoa(enrollmentID)
			}
			_ = st.SetFilter(ctx, filter)
		case 0:
			return
		}
	}
}
