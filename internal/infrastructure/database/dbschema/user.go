package dbschema

import (
	"time"

	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted student account schema.
type User struct {
	BaseModel
	PublicID               string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name                   string     `gorm:"type:varchar(255)"`
	Email                  string     `gorm:"type:varchar(320);uniqueIndex;not null"`
	Stage                  string     `gorm:"type:varchar(40);not null;default:'ONBOARDING'"`
	LastReasoningRequestAt *time.Time `gorm:"type:timestamp"`
	FirstCounsellingDone   bool       `gorm:"not null;default:false"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		PublicID:               u.PublicID,
		Name:                   u.Name,
		Email:                  u.Email,
		Stage:                  string(u.Stage),
		LastReasoningRequestAt: u.LastReasoningRequestAt,
		FirstCounsellingDone:   u.FirstCounsellingDone,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}
	return &user.User{
		ID:                     u.ID,
		PublicID:               u.PublicID,
		Name:                   u.Name,
		Email:                  u.Email,
		Stage:                  user.Stage(u.Stage),
		LastReasoningRequestAt: u.LastReasoningRequestAt,
		FirstCounsellingDone:   u.FirstCounsellingDone,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}
