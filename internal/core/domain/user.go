package domain

// User is a local profile. The set of users is append-only; there is
// no edit or delete operation.
type User struct {
	// ID is the unique identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Role is a free-text job role.
	Role string `json:"role"`
}
