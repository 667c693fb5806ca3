package dbschema

import (
	"encoding/json"

	"gorm.io/datatypes"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Profile{})
}

// Profile represents the persisted counselling profile schema. Nested
// facets live in jsonb columns; the engine only ever reads them whole.
type Profile struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex;not null"`
	User   User `gorm:"foreignKey:UserID"`

	Academic  datatypes.JSON `gorm:"type:jsonb"`
	StudyGoal datatypes.JSON `gorm:"type:jsonb"`
	Budget    datatypes.JSON `gorm:"type:jsonb"`
	Exams     datatypes.JSON `gorm:"type:jsonb"`

	WorkExperience     string `gorm:"type:text"`
	ResearchExperience string `gorm:"type:text"`
	Publications       string `gorm:"type:text"`
	Certifications     string `gorm:"type:text"`

	SOPStatus    string `gorm:"type:varchar(40)"`
	LORStatus    string `gorm:"type:varchar(40)"`
	ResumeStatus string `gorm:"type:varchar(40)"`

	Shortlisted datatypes.JSON `gorm:"type:jsonb"`
	Locked      datatypes.JSON `gorm:"type:jsonb"`
	Wishlist    datatypes.JSON `gorm:"type:jsonb"`
}

type profileExams struct {
	IELTS profile.ExamScore `json:"ielts"`
	TOEFL profile.ExamScore `json:"toefl"`
	GRE   profile.ExamScore `json:"gre"`
	GMAT  profile.ExamScore `json:"gmat"`
}

func marshalJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func unmarshalJSON(raw datatypes.JSON, v any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, v)
}

// NewSchemaProfile converts a domain profile into a schema instance.
func NewSchemaProfile(p *profile.Profile) *Profile {
	if p == nil {
		return nil
	}
	sp := &Profile{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		UserID:             p.UserID,
		WorkExperience:     p.WorkExperience,
		ResearchExperience: p.ResearchExperience,
		Publications:       p.Publications,
		Certifications:     p.Certifications,
		SOPStatus:          p.SOPStatus,
		LORStatus:          p.LORStatus,
		ResumeStatus:       p.ResumeStatus,
		Exams:              marshalJSON(profileExams{IELTS: p.IELTS, TOEFL: p.TOEFL, GRE: p.GRE, GMAT: p.GMAT}),
	}
	if p.Academic != nil {
		sp.Academic = marshalJSON(p.Academic)
	}
	if p.StudyGoal != nil {
		sp.StudyGoal = marshalJSON(p.StudyGoal)
	}
	if p.Budget != nil {
		sp.Budget = marshalJSON(p.Budget)
	}
	if len(p.Shortlisted) > 0 {
		sp.Shortlisted = marshalJSON(p.Shortlisted)
	}
	if p.Locked != nil {
		sp.Locked = marshalJSON(p.Locked)
	}
	if len(p.Wishlist) > 0 {
		sp.Wishlist = marshalJSON(p.Wishlist)
	}
	return sp
}

// EtoD converts a schema profile back to the domain representation.
func (p *Profile) EtoD() *profile.Profile {
	if p == nil {
		return nil
	}
	dp := &profile.Profile{
		ID:                 p.ID,
		UserID:             p.UserID,
		WorkExperience:     p.WorkExperience,
		ResearchExperience: p.ResearchExperience,
		Publications:       p.Publications,
		Certifications:     p.Certifications,
		SOPStatus:          p.SOPStatus,
		LORStatus:          p.LORStatus,
		ResumeStatus:       p.ResumeStatus,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	if len(p.Academic) > 0 {
		dp.Academic = &profile.Academic{}
		unmarshalJSON(p.Academic, dp.Academic)
	}
	if len(p.StudyGoal) > 0 {
		dp.StudyGoal = &profile.StudyGoal{}
		unmarshalJSON(p.StudyGoal, dp.StudyGoal)
	}
	if len(p.Budget) > 0 {
		dp.Budget = &profile.Budget{}
		unmarshalJSON(p.Budget, dp.Budget)
	}

	var exams profileExams
	unmarshalJSON(p.Exams, &exams)
	dp.IELTS, dp.TOEFL, dp.GRE, dp.GMAT = exams.IELTS, exams.TOEFL, exams.GRE, exams.GMAT

	unmarshalJSON(p.Shortlisted, &dp.Shortlisted)
	if len(p.Locked) > 0 {
		dp.Locked = &profile.LockedUniversity{}
		unmarshalJSON(p.Locked, dp.Locked)
	}
	unmarshalJSON(p.Wishlist, &dp.Wishlist)

	return dp
}
