package model

// Subject represents an academic subject taught by one instructor.
type Subject struct {
	ID               int    `json:"idAsignatura"`
	Name             string `json:"nombre"`
	InstructorID     int    `json:"docente"`
	InstructorDetail *User  `json:"docente_detail,omitempty"`
}

func (s Subject) EntityID() int { return s.ID }

// SubjectForm is the payload for creating a subject.
type SubjectForm struct {
	Name         string `json:"nombre" validate:"required,min=2,max=100"`
	InstructorID int    `json:"docente" validate:"required,gt=0"`
}

// SubjectUpdate is the partial payload for patching a subject.
type SubjectUpdate struct {
	Name         *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=100"`
	InstructorID *int    `json:"docente,omitempty" validate:"omitempty,gt=0"`
}
