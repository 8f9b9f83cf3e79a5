package model

// PassingScore is the minimum score counted as a pass.
const PassingScore = 60

// Grade is one score recorded against an enrollment. An enrollment may
// accumulate any number of grades.
type Grade struct {
	ID               int         `json:"idnotas"`
	Score            float64     `json:"calificacion"`
	EnrollmentID     int         `json:"inscripcion"`
	EnrollmentDetail *Enrollment `json:"inscripcion_detail,omitempty"`
}

func (g Grade) EntityID() int { return g.ID }

// Passed reports whether the score meets the passing threshold.
func (g Grade) Passed() bool { return g.Score >= PassingScore }

// GradeForm is the payload for creating a grade.
type GradeForm struct {
	Score        float64 `json:"calificacion" validate:"gte=0,lte=100"`
	EnrollmentID int     `json:"inscripcion" validate:"required,gt=0"`
}

// GradeUpdate is the partial payload for patching a grade.
type GradeUpdate struct {
	Score        *float64 `json:"calificacion,omitempty" validate:"omitempty,gte=0,lte=100"`
	EnrollmentID *int     `json:"inscripcion,omitempty" validate:"omitempty,gt=0"`
}
