package university

import (
	"context"
	"strings"

	"gradpath-server/internal/utils/platformerrors"
)

// knownNameParts are tokens that reliably identify a university when the
// engine or the student abbreviates or misquotes the full name.
var knownNameParts = []string{
	"MIT",
	"Carnegie",
	"Berkeley",
	"Stanford",
	"Harvard",
	"Oxford",
	"Cambridge",
	"Caltech",
	"Princeton",
	"Michigan",
}

// acronymExpansions maps common acronyms to a catalog search pattern.
var acronymExpansions = map[string]string{
	"MIT":  "Massachusetts Institute of Technology",
	"CMU":  "Carnegie Mellon",
	"UCLA": "California, Los Angeles",
	"UCB":  "California, Berkeley",
	"UIUC": "Illinois Urbana",
	"UW":   "Washington",
	"ASU":  "Arizona State",
}

// Reference identifies a university by internal ID, public ID, or free-form
// name. Exactly one field is expected to be set; precedence is ID, public
// ID, then name.
type Reference struct {
	ID       *uint
	PublicID string
	Name     string
}

// Service resolves free-form university references against the catalog.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SeedCatalog upserts catalog entries keyed on name. Existing entries keep
// their public ID; only the descriptive fields are refreshed.
func (s *Service) SeedCatalog(ctx context.Context, unis []*University) error {
	for _, uni := range unis {
		if err := s.repo.UpsertByName(ctx, uni); err != nil {
			return err
		}
	}
	return nil
}

// List returns catalog entries matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]*University, error) {
	return s.repo.FindByFilter(ctx, filter)
}

// GetByIDs returns the catalog entries for the given internal IDs.
func (s *Service) GetByIDs(ctx context.Context, ids []uint) ([]*University, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

// Resolve finds the catalog entry for a reference. Name resolution tries,
// in order: exact match, case-insensitive substring match, acronym
// expansion, then a match on a well-known name part. A nil result with a
// nil error means the name is simply not in the catalog; callers decide
// what to do with unresolvable names (the dispatcher records them to the
// student's wishlist).
func (s *Service) Resolve(ctx context.Context, ref Reference) (*University, error) {
	switch {
	case ref.ID != nil:
		return s.repo.FindByID(ctx, *ref.ID)
	case ref.PublicID != "":
		return s.repo.FindByPublicID(ctx, ref.PublicID)
	}

	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"university reference requires an id or a name", nil, "e1f7c9a2-3d54-48b6-9a07-5c2e8f14d6b3")
	}

	if uni, err := s.repo.FindByExactName(ctx, name); err != nil {
		return nil, err
	} else if uni != nil {
		return uni, nil
	}

	if uni, err := s.repo.FindByNamePattern(ctx, name); err != nil {
		return nil, err
	} else if uni != nil {
		return uni, nil
	}

	if expansion, ok := acronymExpansions[strings.ToUpper(name)]; ok {
		if uni, err := s.repo.FindByNamePattern(ctx, expansion); err != nil {
			return nil, err
		} else if uni != nil {
			return uni, nil
		}
	}

	for _, part := range strings.Fields(name) {
		for _, known := range knownNameParts {
			if strings.Contains(strings.ToUpper(part), strings.ToUpper(known)) {
				if uni, err := s.repo.FindByNamePattern(ctx, known); err != nil {
					return nil, err
				} else if uni != nil {
					return uni, nil
				}
			}
		}
	}

	return nil, nil
}
