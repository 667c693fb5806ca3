package responses

import (
	"time"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/university"
)

// UniversityResponse is one catalog entry as shown to the student.
type UniversityResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Country           string `json:"country,omitempty"`
	Program           string `json:"program,omitempty"`
	Rank              int    `json:"rank,omitempty"`
	TuitionFeePerYear string `json:"tuition_fee_per_year,omitempty"`
	CostLevel         string `json:"cost_level,omitempty"`
	Competitiveness   string `json:"competitiveness,omitempty"`
	AcceptanceChance  string `json:"acceptance_chance,omitempty"`
	Description       string `json:"description,omitempty"`
	WhyItFits         string `json:"why_it_fits,omitempty"`
	Risks             string `json:"risks,omitempty"`
}

// NewUniversityResponse converts a domain catalog entry.
func NewUniversityResponse(u *university.University) UniversityResponse {
	return UniversityResponse{
		ID:                u.PublicID,
		Name:              u.Name,
		Country:           u.Country,
		Program:           u.Program,
		Rank:              u.Rank,
		TuitionFeePerYear: u.TuitionFeePerYear.String(),
		CostLevel:         u.CostLevel,
		Competitiveness:   u.Competitiveness,
		AcceptanceChance:  u.AcceptanceChance,
		Description:       u.Description,
		WhyItFits:         u.WhyItFits,
		Risks:             u.Risks,
	}
}

// NewUniversityListResponse converts a slice of catalog entries.
func NewUniversityListResponse(unis []*university.University) []UniversityResponse {
	out := make([]UniversityResponse, 0, len(unis))
	for _, u := range unis {
		out = append(out, NewUniversityResponse(u))
	}
	return out
}

// ShortlistedUniversity is one shortlist entry with its catalog data.
type ShortlistedUniversity struct {
	UniversityResponse
	Category      string    `json:"category"`
	ShortlistedAt time.Time `json:"shortlisted_at"`
}

// ShortlistResponse groups the student's shortlist by category.
type ShortlistResponse struct {
	Dream  []ShortlistedUniversity `json:"dream"`
	Target []ShortlistedUniversity `json:"target"`
	Safe   []ShortlistedUniversity `json:"safe"`
	Locked *UniversityResponse     `json:"locked,omitempty"`
}

// NewShortlistResponse joins shortlist entries with their catalog records.
func NewShortlistResponse(entries []profile.ShortlistEntry, locked *profile.LockedUniversity, unis []*university.University) ShortlistResponse {
	byID := make(map[uint]*university.University, len(unis))
	for _, u := range unis {
		byID[u.ID] = u
	}

	resp := ShortlistResponse{
		Dream:  []ShortlistedUniversity{},
		Target: []ShortlistedUniversity{},
		Safe:   []ShortlistedUniversity{},
	}
	for _, entry := range entries {
		u, ok := byID[entry.UniversityID]
		if !ok {
			continue
		}
		item := ShortlistedUniversity{
			UniversityResponse: NewUniversityResponse(u),
			Category:           string(entry.Category),
			ShortlistedAt:      entry.ShortlistedAt,
		}
		switch entry.Category {
		case university.CategoryDream:
			resp.Dream = append(resp.Dream, item)
		case university.CategorySafe:
			resp.Safe = append(resp.Safe, item)
		default:
			resp.Target = append(resp.Target, item)
		}
	}
	if locked != nil {
		if u, ok := byID[locked.UniversityID]; ok {
			lockedResp := NewUniversityResponse(u)
			resp.Locked = &lockedResp
		}
	}
	return resp
}
