// Package conversation provides the per-user counselling conversation log.
package conversation

import (
	"context"
	"time"
)

// Role tags a message with its author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MaxMessages bounds the stored log per user. Older messages are dropped
// FIFO on append; the retained suffix is always the most recent messages
// in original order.
const MaxMessages = 50

// Message is one entry in the log.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the single active record per user, created lazily on the
// first counselling turn.
type Conversation struct {
	ID          uint
	UserID      uint
	Messages    []Message
	LastUpdated time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Append adds a message and enforces the window bound.
func (c *Conversation) Append(role Role, content string, at time.Time) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content, Timestamp: at})
	if len(c.Messages) > MaxMessages {
		c.Messages = c.Messages[len(c.Messages)-MaxMessages:]
	}
	c.LastUpdated = at
}

// RecentWindow returns the last n messages in chronological order.
func (c *Conversation) RecentWindow(n int) []Message {
	if n <= 0 || len(c.Messages) == 0 {
		return nil
	}
	if n > len(c.Messages) {
		n = len(c.Messages)
	}
	window := make([]Message, n)
	copy(window, c.Messages[len(c.Messages)-n:])
	return window
}

// Repository defines storage operations for conversation records.
type Repository interface {
	FindByUserID(ctx context.Context, userID uint) (*Conversation, error)
	// Save upserts the whole record; the active turn is the only writer
	// for a given user, so last write wins.
	Save(ctx context.Context, conv *Conversation) error
	DeleteByUserID(ctx context.Context, userID uint) error
	// DeleteIdleSince removes records whose LastUpdated is before the
	// cutoff, returning the number deleted.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error)
}
