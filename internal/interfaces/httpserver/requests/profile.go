package requests

// ProfileAcademic mirrors the academic background facet.
type ProfileAcademic struct {
	Level          string `json:"level"`
	Major          string `json:"major"`
	University     string `json:"university"`
	GPA            string `json:"gpa"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,gte=1950,lte=2100"`
}

// ProfileStudyGoal mirrors the study goal facet.
type ProfileStudyGoal struct {
	Degree     string   `json:"degree"`
	Field      string   `json:"field"`
	IntakeYear int      `json:"intake_year" validate:"omitempty,gte=2020,lte=2100"`
	Countries  []string `json:"countries"`
}

// ProfileBudget mirrors the budget facet.
type ProfileBudget struct {
	Range   string `json:"range"`
	Funding string `json:"funding"`
}

// ProfileExamScore mirrors one exam entry.
type ProfileExamScore struct {
	Taken bool   `json:"taken"`
	Score string `json:"score"`
}

// UpdateProfileRequest upserts profile facets. Absent sections leave the
// stored facet untouched.
type UpdateProfileRequest struct {
	Academic  *ProfileAcademic  `json:"academic"`
	StudyGoal *ProfileStudyGoal `json:"study_goal"`
	Budget    *ProfileBudget    `json:"budget"`

	IELTS *ProfileExamScore `json:"ielts"`
	TOEFL *ProfileExamScore `json:"toefl"`
	GRE   *ProfileExamScore `json:"gre"`
	GMAT  *ProfileExamScore `json:"gmat"`

	WorkExperience     *string `json:"work_experience"`
	ResearchExperience *string `json:"research_experience"`
	Publications       *string `json:"publications"`
	Certifications     *string `json:"certifications"`

	SOPStatus    *string `json:"sop_status"`
	LORStatus    *string `json:"lor_status"`
	ResumeStatus *string `json:"resume_status"`
}
