package model

// Enrollment links one student to one course within a subject.
// At most one enrollment may exist per (student, course) pair.
type Enrollment struct {
	ID            int      `json:"idInscripcion"`
	StudentID     int      `json:"estudiante"`
	CourseID      int      `json:"curso"`
	SubjectID     int      `json:"asignatura"`
	StudentDetail *User    `json:"estudiante_detail,omitempty"`
	CourseDetail  *Course  `json:"curso_detail,omitempty"`
	SubjectDetail *Subject `json:"asignatura_detail,omitempty"`
}

func (e Enrollment) EntityID() int { return e.ID }

// EnrollmentForm is the payload for creating an enrollment.
type EnrollmentForm struct {
	StudentID int `json:"estudiante" validate:"required,gt=0"`
	CourseID  int `json:"curso" validate:"required,gt=0"`
	SubjectID int `json:"asignatura" validate:"required,gt=0"`
}

// EnrollmentUpdate is the partial payload for patching an enrollment.
type EnrollmentUpdate struct {
	StudentID *int `json:"estudiante,omitempty" validate:"omitempty,gt=0"`
	CourseID  *int `json:"curso,omitempty" validate:"omitempty,gt=0"`
	SubjectID *int `json:"asignatura,omitempty" validate:"omitempty,gt=0"`
}
