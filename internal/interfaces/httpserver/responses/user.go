package responses

import (
	"time"

	"gradpath-server/internal/domain/user"
)

// UserResponse is the student's own account view.
type UserResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Stage                string    `json:"stage"`
	FirstCounsellingDone bool      `json:"first_counselling_done"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                   u.PublicID,
		Name:                 u.Name,
		Email:                u.Email,
		Stage:                string(u.Stage),
		FirstCounsellingDone: u.FirstCounsellingDone,
		CreatedAt:            u.CreatedAt,
	}
}
