package profilehandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/interfaces/httpserver/middlewares"
	"gradpath-server/internal/interfaces/httpserver/requests"
	"gradpath-server/internal/interfaces/httpserver/responses"
	"gradpath-server/internal/utils/platformerrors"
)

// ProfileHandler serves the counselling profile endpoints.
type ProfileHandler struct {
	profiles *profile.Service
	validate *validator.Validate
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetProfile godoc
// @Summary Get the counselling profile
// @Description Returns the student's profile, creating an empty one on first access
// @Tags profile
// @Produce json
// @Success 200 {object} responses.ProfileResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "08b5d2f7-4e93-4a61-b0c8-57a2e69d13f4")
		return
	}

	prof, err := h.profiles.GetOrCreate(c.Request.Context(), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, responses.NewProfileResponse(prof))
}

// UpdateProfile godoc
// @Summary Update the counselling profile
// @Description Upserts the facets present in the request; absent facets are left untouched
// @Tags profile
// @Accept json
// @Produce json
// @Param request body requests.UpdateProfileRequest true "Facets to update"
// @Success 200 {object} responses.ProfileResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "61e9a3c0-8d27-4f54-92b1-c45d80e37a6f")
		return
	}

	var req requests.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid profile payload", "b90c47d5-2a61-4e38-8f07-d31e65a82c94")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid profile payload", "27d8f0b3-9c54-4e16-a2d7-80e53c41f9a6")
		return
	}

	ctx := c.Request.Context()
	prof, err := h.profiles.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to load profile")
		return
	}

	applyUpdate(prof, &req)

	if err := h.profiles.Update(ctx, prof); err != nil {
		responses.HandleError(c, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, responses.NewProfileResponse(prof))
}

func applyUpdate(prof *profile.Profile, req *requests.UpdateProfileRequest) {
	if req.Academic != nil {
		prof.Academic = &profile.Academic{
			Level:          req.Academic.Level,
			Major:          req.Academic.Major,
			University:     req.Academic.University,
			GPA:            req.Academic.GPA,
			GraduationYear: req.Academic.GraduationYear,
		}
	}
	if req.StudyGoal != nil {
		prof.StudyGoal = &profile.StudyGoal{
			Degree:     req.StudyGoal.Degree,
			Field:      req.StudyGoal.Field,
			IntakeYear: req.StudyGoal.IntakeYear,
			Countries:  req.StudyGoal.Countries,
		}
	}
	if req.Budget != nil {
		prof.Budget = &profile.Budget{
			Range:   req.Budget.Range,
			Funding: req.Budget.Funding,
		}
	}

	if req.IELTS != nil {
		prof.IELTS = profile.ExamScore{Taken: req.IELTS.Taken, Score: req.IELTS.Score}
	}
	if req.TOEFL != nil {
		prof.TOEFL = profile.ExamScore{Taken: req.TOEFL.Taken, Score: req.TOEFL.Score}
	}
	if req.GRE != nil {
		prof.GRE = profile.ExamScore{Taken: req.GRE.Taken, Score: req.GRE.Score}
	}
	if req.GMAT != nil {
		prof.GMAT = profile.ExamScore{Taken: req.GMAT.Taken, Score: req.GMAT.Score}
	}

	if req.WorkExperience != nil {
		prof.WorkExperience = *req.WorkExperience
	}
	if req.ResearchExperience != nil {
		prof.ResearchExperience = *req.ResearchExperience
	}
	if req.Publications != nil {
		prof.Publications = *req.Publications
	}
	if req.Certifications != nil {
		prof.Certifications = *req.Certifications
	}

	if req.SOPStatus != nil {
		prof.SOPStatus = *req.SOPStatus
	}
	if req.LORStatus != nil {
		prof.LORStatus = *req.LORStatus
	}
	if req.ResumeStatus != nil {
		prof.ResumeStatus = *req.ResumeStatus
	}
}
