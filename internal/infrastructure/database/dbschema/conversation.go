package dbschema

import (
	"time"

	"gorm.io/datatypes"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
}

// Conversation represents the single per-user conversation record schema.
// The message window is small and always read whole, so it lives in one
// jsonb column instead of a child table.
type Conversation struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex;not null"`
	User        User           `gorm:"foreignKey:UserID"`
	Messages    datatypes.JSON `gorm:"type:jsonb"`
	LastUpdated time.Time      `gorm:"index;not null"`
}

// NewSchemaConversation converts a domain record into a schema instance.
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	if c == nil {
		return nil
	}
	return &Conversation{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		UserID:      c.UserID,
		Messages:    marshalJSON(c.Messages),
		LastUpdated: c.LastUpdated,
	}
}

// EtoD converts a schema record back to the domain representation.
func (c *Conversation) EtoD() *conversation.Conversation {
	if c == nil {
		return nil
	}
	conv := &conversation.Conversation{
		ID:          c.ID,
		UserID:      c.UserID,
		LastUpdated: c.LastUpdated,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	unmarshalJSON(c.Messages, &conv.Messages)
	return conv
}
