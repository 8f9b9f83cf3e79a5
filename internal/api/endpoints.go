package api

import (
	"fmt"
	"net/url"
)

// Endpoint registry: every backend path is built here and nowhere else.
// The functions are pure; a malformed id simply yields a malformed path,
// which the backend rejects.

const basePath = "/api"

func Roles() string { return basePath + "/roles/" }

func RoleDetail(id int) string { return fmt.Sprintf("%s/roles/%d/", basePath, id) }

func Users() string { return basePath + "/usuarios/" }

func UserDetail(id int) string { return fmt.Sprintf("%s/usuarios/%d/", basePath, id) }

func UsersByRole(roleID int) string {
	return fmt.Sprintf("%s/usuarios/?rol=%d", basePath, roleID)
}

func Subjects() string { return basePath + "/asignaturas/" }

func SubjectDetail(id int) string { return fmt.Sprintf("%s/asignaturas/%d/", basePath, id) }

func SubjectsByInstructor(userID int) string {
	return fmt.Sprintf("%s/asignaturas/?docente=%d", basePath, userID)
}

func Courses() string { return basePath + "/cursos/" }

func CourseDetail(id int) string { return fmt.Sprintf("%s/cursos/%d/", basePath, id) }

func CoursesBySubject(subjectID int) string {
	return fmt.Sprintf("%s/cursos/?asignatura=%d", basePath, subjectID)
}

func Enrollments() string { return basePath + "/inscripciones/" }

func EnrollmentDetail(id int) string { return fmt.Sprintf("%s/inscripciones/%d/", basePath, id) }

func EnrollmentsByStudent(userID int) string {
	return fmt.Sprintf("%s/inscripciones/?estudiante=%d", basePath, userID)
}

func EnrollmentsByCourse(courseID int) string {
	return fmt.Sprintf("%s/inscripciones/?curso=%d", basePath, courseID)
}

func Grades() string { return basePath + "/notas/" }

func GradeDetail(id int) string { return fmt.Sprintf("%s/notas/%d/", basePath, id) }

func GradesByEnrollment(enrollmentID int) string {
	return fmt.Sprintf("%s/notas/?inscripcion=%d", basePath, enrollmentID)
}

func GradesByScore(score int) string {
	return fmt.Sprintf("%s/notas/?calificacion=%d", basePath, score)
}

// BuildURL appends query parameters to a base path. Parameters are
// encoded in sorted key order so built URLs are deterministic.
func BuildURL(base string, params map[string]string) string {
	if len(params) == 0 {
		return base
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return base + "?" + values.Encode()
}
