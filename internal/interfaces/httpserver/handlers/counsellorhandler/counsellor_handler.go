package counsellorhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/counselling"
	"gradpath-server/internal/infrastructure/observability"
	"gradpath-server/internal/interfaces/httpserver/middlewares"
	"gradpath-server/internal/interfaces/httpserver/requests"
	"gradpath-server/internal/interfaces/httpserver/responses"
	"gradpath-server/internal/utils/platformerrors"
)

// CounsellorHandler serves the counselling turn and conversation endpoints.
type CounsellorHandler struct {
	counselling   *counselling.Service
	conversations *conversation.Service
}

// NewCounsellorHandler constructs a CounsellorHandler.
func NewCounsellorHandler(counsellingService *counselling.Service, conversations *conversation.Service) *CounsellorHandler {
	return &CounsellorHandler{
		counselling:   counsellingService,
		conversations: conversations,
	}
}

// Converse godoc
// @Summary Send a message to the counsellor
// @Description Runs one counselling turn and returns the structured reply
// @Tags counsellor
// @Accept json
// @Produce json
// @Param request body requests.CounsellorRequest true "Student message"
// @Success 200 {object} counselling.Reply
// @Failure 400 {object} responses.ErrorResponse
// @Failure 429 {object} responses.RateLimitedResponse
// @Security BearerAuth
// @Router /v1/counsellor [post]
func (h *CounsellorHandler) Converse(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "e02d74b9-5c38-4a16-8f90-d61c25e83a47")
		return
	}

	var req requests.CounsellorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "message is required", "17f5a8c0-6d92-4b34-a1e8-39c60d52f7b4")
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), "gradpath-server", "CounsellorHandler.Converse")
	defer span.End()
	observability.AddSpanAttributes(ctx,
		attribute.Int("user.id", int(principal.UserID)),
		attribute.Int("counsellor.message_length", len(req.Message)),
	)

	reply, err := h.counselling.HandleTurn(ctx, principal.UserID, req.Message)
	if err != nil {
		var rateErr *counselling.RateLimitError
		if errors.As(err, &rateErr) {
			observability.AddSpanEvent(ctx, "rate_limited")
			c.JSON(http.StatusTooManyRequests, responses.RateLimitedResponse{
				Message:    "You're sending messages too quickly. Give me a moment to catch up.",
				RetryAfter: rateErr.RetryAfterSeconds(),
			})
			return
		}
		observability.RecordError(ctx, err)
		responses.HandleError(c, err, "failed to process counselling turn")
		return
	}

	observability.AddSpanAttributes(ctx, attribute.String("counsellor.action", string(reply.Action)))
	c.JSON(http.StatusOK, reply)
}

// GetConversation godoc
// @Summary Get the counselling conversation
// @Description Returns the stored conversation, most recent message first
// @Tags counsellor
// @Produce json
// @Success 200 {object} responses.ConversationResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/counsellor/conversation [get]
func (h *CounsellorHandler) GetConversation(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "c94b07e2-8a65-4d13-b2f0-57d38e61a9c5")
		return
	}

	conv, err := h.conversations.All(c.Request.Context(), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load conversation")
		return
	}

	c.JSON(http.StatusOK, responses.NewConversationResponse(conv))
}

// ClearConversation godoc
// @Summary Clear the counselling conversation
// @Description Deletes the stored conversation; clearing an absent one succeeds
// @Tags counsellor
// @Produce json
// @Success 204 "cleared"
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/counsellor/conversation [delete]
func (h *CounsellorHandler) ClearConversation(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "a37e50d9-1b84-4c62-9f05-e28d43a61c70")
		return
	}

	if err := h.conversations.Clear(c.Request.Context(), principal.UserID); err != nil {
		responses.HandleError(c, err, "failed to clear conversation")
		return
	}

	c.Status(http.StatusNoContent)
}
