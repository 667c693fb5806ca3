// Package university provides the catalog domain model and name resolution.
package university

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Category buckets a shortlisted university by admission difficulty
// relative to the student's profile.
type Category string

const (
	CategoryDream  Category = "DREAM"
	CategoryTarget Category = "TARGET"
	CategorySafe   Category = "SAFE"
)

// CategoryForRank derives the shortlist category from the global rank.
func CategoryForRank(rank int) Category {
	switch {
	case rank > 0 && rank <= 20:
		return CategoryDream
	case rank > 50:
		return CategorySafe
	default:
		return CategoryTarget
	}
}

// University is one catalog entry.
type University struct {
	ID                uint
	PublicID          string
	Name              string
	Country           string
	Program           string
	Rank              int
	TuitionFeePerYear decimal.Decimal
	CostLevel         string
	Competitiveness   string
	AcceptanceChance  string
	Description       string
	WhyItFits         string
	Risks             string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Filter narrows catalog queries.
type Filter struct {
	Country    *string
	Program    *string
	MaxRank    *int
	OnlyActive bool
}

// Repository defines storage operations for the catalog.
type Repository interface {
	Create(ctx context.Context, uni *University) error
	// UpsertByName creates or refreshes a catalog entry keyed on its name.
	UpsertByName(ctx context.Context, uni *University) error
	FindByID(ctx context.Context, id uint) (*University, error)
	FindByPublicID(ctx context.Context, publicID string) (*University, error)
	FindByExactName(ctx context.Context, name string) (*University, error)
	// FindByNamePattern matches names case-insensitively on a substring.
	FindByNamePattern(ctx context.Context, pattern string) (*University, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*University, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*University, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}
