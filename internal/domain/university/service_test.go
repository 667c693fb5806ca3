package university

import (
	"context"
	"strings"
	"testing"
)

func TestCategoryForRank(t *testing.T) {
	cases := []struct {
		rank int
		want Category
	}{
		{1, CategoryDream},
		{20, CategoryDream},
		{21, CategoryTarget},
		{50, CategoryTarget},
		{51, CategorySafe},
		{200, CategorySafe},
		{0, CategoryTarget},
		{-3, CategoryTarget},
	}
	for _, tc := range cases {
		if got := CategoryForRank(tc.rank); got != tc.want {
			t.Errorf("CategoryForRank(%d) = %s, want %s", tc.rank, got, tc.want)
		}
	}
}

type stubRepo struct {
	Repository
	unis []*University
}

func (r *stubRepo) FindByID(ctx context.Context, id uint) (*University, error) {
	for _, u := range r.unis {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByPublicID(ctx context.Context, publicID string) (*University, error) {
	for _, u := range r.unis {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByExactName(ctx context.Context, name string) (*University, error) {
	for _, u := range r.unis {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByNamePattern(ctx context.Context, pattern string) (*University, error) {
	for _, u := range r.unis {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(pattern)) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByIDs(ctx context.Context, ids []uint) ([]*University, error) {
	var out []*University
	for _, id := range ids {
		if u, _ := r.FindByID(ctx, id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func newResolverService() *Service {
	return NewService(&stubRepo{unis: []*University{
		{ID: 1, PublicID: "univ_mit", Name: "Massachusetts Institute of Technology", Rank: 1},
		{ID: 2, PublicID: "univ_cmu", Name: "Carnegie Mellon University", Rank: 12},
		{ID: 3, PublicID: "univ_ucla", Name: "University of California, Los Angeles", Rank: 15},
		{ID: 4, PublicID: "univ_asu", Name: "Arizona State University", Rank: 62},
	}})
}

func TestResolveByIDAndPublicID(t *testing.T) {
	svc := newResolverService()
	ctx := context.Background()

	id := uint(2)
	uni, err := svc.Resolve(ctx, Reference{ID: &id})
	if err != nil || uni == nil || uni.Name != "Carnegie Mellon University" {
		t.Fatalf("by ID: %v, %+v", err, uni)
	}

	uni, err = svc.Resolve(ctx, Reference{PublicID: "univ_asu"})
	if err != nil || uni == nil || uni.ID != 4 {
		t.Fatalf("by public ID: %v, %+v", err, uni)
	}
}

func TestResolveNameCascade(t *testing.T) {
	svc := newResolverService()
	ctx := context.Background()

	cases := []struct {
		name   string
		query  string
		wantID uint
	}{
		{"exact", "Carnegie Mellon University", 2},
		{"substring", "carnegie mellon", 2},
		{"acronym MIT", "MIT", 1},
		{"acronym UCLA", "ucla", 3},
		{"acronym ASU", "ASU", 4},
		{"known part in a sentence", "the Carnegie one", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uni, err := svc.Resolve(ctx, Reference{Name: tc.query})
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.query, err)
			}
			if uni == nil || uni.ID != tc.wantID {
				t.Errorf("Resolve(%q) = %+v, want ID %d", tc.query, uni, tc.wantID)
			}
		})
	}
}

func TestResolveUnknownNameIsNotAnError(t *testing.T) {
	svc := newResolverService()

	uni, err := svc.Resolve(context.Background(), Reference{Name: "Hogwarts"})
	if err != nil {
		t.Fatalf("unknown name must resolve to nil, nil: %v", err)
	}
	if uni != nil {
		t.Errorf("uni = %+v", uni)
	}
}

func TestResolveEmptyReference(t *testing.T) {
	svc := newResolverService()

	if _, err := svc.Resolve(context.Background(), Reference{Name: "   "}); err == nil {
		t.Error("an empty reference should be a validation error")
	}
}
