package domain

// Principal captures the authenticated student for a request.
type Principal struct {
	UserID   uint
	PublicID string
	Email    string
	Name     string
}
