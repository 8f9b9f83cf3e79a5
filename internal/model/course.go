package model

// Course represents a course; it belongs to exactly one subject.
type Course struct {
	ID            int      `json:"idCurso"`
	Name          string   `json:"nombre_curso"`
	SubjectID     int      `json:"asignatura"`
	SubjectDetail *Subject `json:"asignatura_detail,omitempty"`
}

func (c Course) EntityID() int { return c.ID }

// CourseForm is the payload for creating a course.
type CourseForm struct {
	Name      string `json:"nombre_curso" validate:"required,min=2,max=100"`
	SubjectID int    `json:"asignatura" validate:"required,gt=0"`
}

// CourseUpdate is the partial payload for patching a course.
type CourseUpdate struct {
	Name      *string `json:"nombre_curso,omitempty" validate:"omitempty,min=2,max=100"`
	SubjectID *int    `json:"asignatura,omitempty" validate:"omitempty,gt=0"`
}
