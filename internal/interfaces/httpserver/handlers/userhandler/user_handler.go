package userhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/interfaces/httpserver/middlewares"
	"gradpath-server/internal/interfaces/httpserver/responses"
	"gradpath-server/internal/utils/platformerrors"
)

// UserHandler serves the account endpoints.
type UserHandler struct {
	users *user.Service
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe godoc
// @Summary Get the authenticated student
// @Description Returns the account behind the bearer token
// @Tags users
// @Produce json
// @Success 200 {object} responses.UserResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "ce514f28-0a97-4d63-b8e1-649d23c70a5f")
		return
	}

	usr, err := h.users.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load user")
		return
	}
	if usr == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "user not found", "9b16e4d0-7c25-4a83-95f7-d802a63e1c4b")
		return
	}

	c.JSON(http.StatusOK, responses.NewUserResponse(usr))
}
