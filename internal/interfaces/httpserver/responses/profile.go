package responses

import (
	"time"

	"gradpath-server/internal/domain/profile"
)

// ProfileResponse is the counselling profile as shown to the student.
type ProfileResponse struct {
	Academic  *profile.Academic  `json:"academic,omitempty"`
	StudyGoal *profile.StudyGoal `json:"study_goal,omitempty"`
	Budget    *profile.Budget    `json:"budget,omitempty"`

	IELTS profile.ExamScore `json:"ielts"`
	TOEFL profile.ExamScore `json:"toefl"`
	GRE   profile.ExamScore `json:"gre"`
	GMAT  profile.ExamScore `json:"gmat"`

	WorkExperience     string `json:"work_experience,omitempty"`
	ResearchExperience string `json:"research_experience,omitempty"`
	Publications       string `json:"publications,omitempty"`
	Certifications     string `json:"certifications,omitempty"`

	SOPStatus    string `json:"sop_status,omitempty"`
	LORStatus    string `json:"lor_status,omitempty"`
	ResumeStatus string `json:"resume_status,omitempty"`

	Wishlist  []profile.WishlistEntry `json:"wishlist,omitempty"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// NewProfileResponse converts a domain profile.
func NewProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		Academic:           p.Academic,
		StudyGoal:          p.StudyGoal,
		Budget:             p.Budget,
		IELTS:              p.IELTS,
		TOEFL:              p.TOEFL,
		GRE:                p.GRE,
		GMAT:               p.GMAT,
		WorkExperience:     p.WorkExperience,
		ResearchExperience: p.ResearchExperience,
		Publications:       p.Publications,
		Certifications:     p.Certifications,
		SOPStatus:          p.SOPStatus,
		LORStatus:          p.LORStatus,
		ResumeStatus:       p.ResumeStatus,
		Wishlist:           p.Wishlist,
		UpdatedAt:          p.UpdatedAt,
	}
}
