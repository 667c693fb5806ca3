package responses

import (
	"time"

	"gradpath-server/internal/domain/conversation"
)

// ConversationMessage is one message in the history view.
type ConversationMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationResponse lists messages most recent first.
type ConversationResponse struct {
	Messages []ConversationMessage `json:"messages"`
}

// NewConversationResponse converts a record into the history view,
// reversing into most-recent-first order.
func NewConversationResponse(conv *conversation.Conversation) ConversationResponse {
	resp := ConversationResponse{Messages: []ConversationMessage{}}
	if conv == nil {
		return resp
	}
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		resp.Messages = append(resp.Messages, ConversationMessage{
			Role:      string(msg.Role),
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}
	return resp
}
