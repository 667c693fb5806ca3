package universityhandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/interfaces/httpserver/middlewares"
	"gradpath-server/internal/interfaces/httpserver/requests"
	"gradpath-server/internal/interfaces/httpserver/responses"
	"gradpath-server/internal/utils/platformerrors"
)

// minShortlistForLock mirrors the counselling dispatcher's lock
// precondition so the HTTP path and the engine path agree.
const minShortlistForLock = 3

// UniversityHandler serves the catalog, shortlist, and lock endpoints.
type UniversityHandler struct {
	universities *university.Service
	profiles     *profile.Service
	users        *user.Service
}

// NewUniversityHandler constructs a UniversityHandler.
func NewUniversityHandler(universities *university.Service, profiles *profile.Service, users *user.Service) *UniversityHandler {
	return &UniversityHandler{
		universities: universities,
		profiles:     profiles,
		users:        users,
	}
}

// ListUniversities godoc
// @Summary List the university catalog
// @Description Returns active catalog entries, optionally filtered
// @Tags universities
// @Produce json
// @Param country query string false "Filter by country"
// @Param program query string false "Filter by program"
// @Param max_rank query int false "Only ranks at or above this cutoff"
// @Success 200 {array} responses.UniversityResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/universities [get]
func (h *UniversityHandler) ListUniversities(c *gin.Context) {
	var query requests.ListUniversitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid catalog filter", "b6e29d04-8c53-4a71-9f28-15d0e7a3c649")
		return
	}

	unis, err := h.universities.List(c.Request.Context(), university.Filter{
		Country:    query.Country,
		Program:    query.Program,
		MaxRank:    query.MaxRank,
		OnlyActive: true,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to list universities")
		return
	}

	c.JSON(http.StatusOK, responses.NewUniversityListResponse(unis))
}

// GetShortlist godoc
// @Summary Get the student's shortlist
// @Description Returns the shortlist grouped by category, plus the locked choice
// @Tags universities
// @Produce json
// @Success 200 {object} responses.ShortlistResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/universities/shortlist [get]
func (h *UniversityHandler) GetShortlist(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "2a71f5d8-9c04-4e63-b1a7-86d35c20e9f4")
		return
	}

	prof, err := h.profiles.GetOrCreate(c.Request.Context(), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}

	ids := make([]uint, 0, len(prof.Shortlisted)+1)
	for _, entry := range prof.Shortlisted {
		ids = append(ids, entry.UniversityID)
	}
	if prof.Locked != nil {
		ids = append(ids, prof.Locked.UniversityID)
	}

	unis, err := h.universities.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		responses.HandleError(c, err, "failed to load shortlisted universities")
		return
	}

	c.JSON(http.StatusOK, responses.NewShortlistResponse(prof.Shortlisted, prof.Locked, unis))
}

// Shortlist godoc
// @Summary Shortlist a university
// @Description Adds a catalog entry to the shortlist; an unrecognised name goes to the wishlist
// @Tags universities
// @Accept json
// @Produce json
// @Param request body requests.ShortlistRequest true "University reference"
// @Success 200 {object} responses.ShortlistResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/universities/shortlist [post]
func (h *UniversityHandler) Shortlist(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "d4c82a19-5e70-4b36-8f15-37a9c6e02d58")
		return
	}

	var req requests.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.UniversityID == "" && req.UniversityName == "") {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "a university id or name is required", "80f3c6d1-2b95-4e48-a7d0-59c21e84f6a3")
		return
	}

	ctx := c.Request.Context()
	prof, err := h.profiles.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}

	uni, err := h.universities.Resolve(ctx, university.Reference{PublicID: req.UniversityID, Name: req.UniversityName})
	if err != nil {
		responses.HandleError(c, err, "failed to resolve university")
		return
	}
	if uni == nil {
		if prof.AddWishlist(req.UniversityName, time.Now()) {
			if err := h.profiles.Update(ctx, prof); err != nil {
				responses.HandleError(c, err, "failed to save wishlist")
				return
			}
		}
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "university not in catalog; added to wishlist", "c19e7b40-6d58-4f23-a8e1-02d5c3a97f64")
		return
	}

	if prof.AddShortlist(uni.ID, university.CategoryForRank(uni.Rank), time.Now()) {
		if err := h.profiles.Update(ctx, prof); err != nil {
			responses.HandleError(c, err, "failed to save shortlist")
			return
		}
	}

	h.renderShortlist(c, prof)
}

// RemoveShortlisted godoc
// @Summary Remove a university from the shortlist
// @Description Drops one shortlist entry by university ID
// @Tags universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} responses.ShortlistResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/universities/shortlist/{id} [delete]
func (h *UniversityHandler) RemoveShortlisted(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "6f50d2a8-3c17-4e94-b6a0-81e4d7c29b35")
		return
	}

	ctx := c.Request.Context()
	uni, err := h.universities.Resolve(ctx, university.Reference{PublicID: c.Param("id")})
	if err != nil {
		responses.HandleError(c, err, "failed to resolve university")
		return
	}
	if uni == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "university not found", "e82a4c97-0f61-4d35-92b8-47d0e5a13c86")
		return
	}

	prof, err := h.profiles.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}

	kept := prof.Shortlisted[:0]
	removed := false
	for _, entry := range prof.Shortlisted {
		if entry.UniversityID == uni.ID {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "university is not on the shortlist", "1d96e3b7-4a28-4c50-8e69-f3a07d51c2b4")
		return
	}
	prof.Shortlisted = kept

	if err := h.profiles.Update(ctx, prof); err != nil {
		responses.HandleError(c, err, "failed to save shortlist")
		return
	}

	h.renderShortlist(c, prof)
}

// Lock godoc
// @Summary Lock a final university choice
// @Description Commits to a shortlisted university and advances the journey stage
// @Tags universities
// @Accept json
// @Produce json
// @Param request body requests.LockRequest true "University to lock"
// @Success 200 {object} responses.ShortlistResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/universities/lock [post]
func (h *UniversityHandler) Lock(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "92e46c0d-7a35-4b81-a5f2-d08c63e19a47")
		return
	}

	var req requests.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "a university name is required", "45a0d7e2-9b63-4c18-8d54-20f6e91c3b87")
		return
	}

	ctx := c.Request.Context()
	uni, err := h.universities.Resolve(ctx, university.Reference{Name: req.UniversityName})
	if err != nil {
		responses.HandleError(c, err, "failed to resolve university")
		return
	}
	if uni == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "university not in catalog", "73c1f8a5-0e29-4d64-b3a8-96e02d47c5f1")
		return
	}

	prof, err := h.profiles.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}
	if !prof.IsShortlisted(uni.ID) {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "shortlist the university before locking it", "a05d3e81-6c47-4f92-b0d6-28e13a75c9f0")
		return
	}
	if len(prof.Shortlisted) < minShortlistForLock {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "explore at least three shortlisted options before locking", "fd270a96-4b58-4c13-8e72-a61d05e39c84")
		return
	}

	prof.Lock(uni.ID, time.Now())
	if err := h.profiles.Update(ctx, prof); err != nil {
		responses.HandleError(c, err, "failed to save lock")
		return
	}

	usr, err := h.users.GetByID(ctx, principal.UserID)
	if err == nil && usr != nil {
		if err := h.users.AdvanceStage(ctx, usr, user.StagePreparingApplications); err != nil {
			responses.HandleError(c, err, "failed to advance stage")
			return
		}
	}

	h.renderShortlist(c, prof)
}

func (h *UniversityHandler) renderShortlist(c *gin.Context, prof *profile.Profile) {
	ids := make([]uint, 0, len(prof.Shortlisted)+1)
	for _, entry := range prof.Shortlisted {
		ids = append(ids, entry.UniversityID)
	}
	if prof.Locked != nil {
		ids = append(ids, prof.Locked.UniversityID)
	}

	unis, err := h.universities.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		responses.HandleError(c, err, "failed to load shortlisted universities")
		return
	}
	c.JSON(http.StatusOK, responses.NewShortlistResponse(prof.Shortlisted, prof.Locked, unis))
}
