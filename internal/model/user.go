package model

// User represents a system user. Password is write-only: the backend
// never returns it, so it is only ever populated on outgoing payloads.
type User struct {
	ID         int    `json:"idUsuario"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"correo"`
	Password   string `json:"password,omitempty"`
	RoleID     int    `json:"rol"`
	RoleDetail *Role  `json:"rol_detail,omitempty"`
}

func (u User) EntityID() int { return u.ID }

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserForm is the payload for creating a user.
type UserForm struct {
	FirstName string `json:"nombre" validate:"required,min=2,max=60"`
	LastName  string `json:"apellido" validate:"required,min=2,max=60"`
	Email     string `json:"correo" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	RoleID    int    `json:"rol" validate:"required,gt=0"`
}

// UserUpdate is the partial payload for patching a user. Password stays
// a plain string; the service drops it from the payload when empty so an
// update never blanks the stored credential.
type UserUpdate struct {
	FirstName *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=60"`
	LastName  *string `json:"apellido,omitempty" validate:"omitempty,min=2,max=60"`
	Email     *string `json:"correo,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleID    *int    `json:"rol,omitempty" validate:"omitempty,gt=0"`
}
