// Package profile provides the counselling profile domain model.
package profile

import (
	"context"
	"strings"
	"time"

	"gradpath-server/internal/domain/university"
)

// Academic captures the student's academic background facet.
type Academic struct {
	Level          string `json:"level,omitempty"`
	Major          string `json:"major,omitempty"`
	University     string `json:"university,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

// StudyGoal captures the target degree facet.
type StudyGoal struct {
	Degree     string   `json:"degree,omitempty"`
	Field      string   `json:"field,omitempty"`
	IntakeYear int      `json:"intake_year,omitempty"`
	Countries  []string `json:"countries,omitempty"`
}

// Budget captures the financial planning facet.
type Budget struct {
	Range   string `json:"range,omitempty"`
	Funding string `json:"funding,omitempty"`
}

// ExamScore records one standardized test.
type ExamScore struct {
	Taken bool   `json:"taken"`
	Score string `json:"score,omitempty"`
}

// ShortlistEntry is one shortlisted university. Entries are unique per
// UniversityID.
type ShortlistEntry struct {
	UniversityID  uint                `json:"university_id"`
	Category      university.Category `json:"category"`
	ShortlistedAt time.Time           `json:"shortlisted_at"`
}

// LockedUniversity is the single committed choice, if any.
type LockedUniversity struct {
	UniversityID uint      `json:"university_id"`
	LockedAt     time.Time `json:"locked_at"`
}

// WishlistEntry preserves a university name the catalog could not resolve.
type WishlistEntry struct {
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// Profile accumulates everything the counselling engine knows about a
// student. Most facets are read-only inputs here; the dispatcher mutates
// only the shortlist, the lock, and the wishlist.
type Profile struct {
	ID        uint
	UserID    uint
	Academic  *Academic
	StudyGoal *StudyGoal
	Budget    *Budget

	IELTS ExamScore
	TOEFL ExamScore
	GRE   ExamScore
	GMAT  ExamScore

	WorkExperience     string
	ResearchExperience string
	Publications       string
	Certifications     string

	SOPStatus    string
	LORStatus    string
	ResumeStatus string

	Shortlisted []ShortlistEntry
	Locked      *LockedUniversity
	Wishlist    []WishlistEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsShortlisted reports whether the university is already on the shortlist.
func (p *Profile) IsShortlisted(universityID uint) bool {
	for _, entry := range p.Shortlisted {
		if entry.UniversityID == universityID {
			return true
		}
	}
	return false
}

// AddShortlist appends an entry unless the university is already present.
// Returns false for the duplicate no-op case.
func (p *Profile) AddShortlist(universityID uint, category university.Category, at time.Time) bool {
	if p.IsShortlisted(universityID) {
		return false
	}
	p.Shortlisted = append(p.Shortlisted, ShortlistEntry{
		UniversityID:  universityID,
		Category:      category,
		ShortlistedAt: at,
	})
	return true
}

// AddWishlist records an unresolvable university name, deduplicated by
// case-insensitive name. Returns false for the duplicate no-op case.
func (p *Profile) AddWishlist(name string, at time.Time) bool {
	for _, entry := range p.Wishlist {
		if strings.EqualFold(entry.Name, name) {
			return false
		}
	}
	p.Wishlist = append(p.Wishlist, WishlistEntry{Name: name, AddedAt: at})
	return true
}

// Lock commits to a university. Locking while another lock exists simply
// overwrites; there is no unlock step.
func (p *Profile) Lock(universityID uint, at time.Time) {
	p.Locked = &LockedUniversity{UniversityID: universityID, LockedAt: at}
}

// Repository defines storage operations for profiles.
type Repository interface {
	Create(ctx context.Context, prof *Profile) error
	FindByUserID(ctx context.Context, userID uint) (*Profile, error)
	Update(ctx context.Context, prof *Profile) error
}

// Service exposes profile reads and facet updates.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access.
func (s *Service) GetOrCreate(ctx context.Context, userID uint) (*Profile, error) {
	prof, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prof != nil {
		return prof, nil
	}
	prof = &Profile{UserID: userID}
	if err := s.repo.Create(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// Update persists the profile.
func (s *Service) Update(ctx context.Context, prof *Profile) error {
	return s.repo.Update(ctx, prof)
}
