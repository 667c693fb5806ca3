package requests

// ListUniversitiesQuery filters the catalog listing.
type ListUniversitiesQuery struct {
	Country *string `form:"country"`
	Program *string `form:"program"`
	MaxRank *int    `form:"max_rank" binding:"omitempty,gt=0"`
}

// ShortlistRequest adds a university to the student's shortlist by public
// ID or by free-form name.
type ShortlistRequest struct {
	UniversityID   string `json:"university_id"`
	UniversityName string `json:"university_name"`
}

// LockRequest commits to a final university choice.
type LockRequest struct {
	UniversityName string `json:"university_name" binding:"required"`
}
