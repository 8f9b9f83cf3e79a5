package model

// Role represents a user role (Admin, Docente, Estudiante, ...).
type Role struct {
	ID   int    `json:"idRol"`
	Name string `json:"nombre_rol"`
}

func (r Role) EntityID() int { return r.ID }

// RoleForm is the payload for creating a role.
type RoleForm struct {
	Name string `json:"nombre_rol" validate:"required,min=2,max=50"`
}

// RoleUpdate is the partial payload for patching a role.
type RoleUpdate struct {
	Name *string `json:"nombre_rol,omitempty" validate:"omitempty,min=2,max=50"`
}

// RoleUsage summarizes how many users hold one role.
type RoleUsage struct {
	Name  string
	Count int
}
