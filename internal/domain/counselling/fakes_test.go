package counselling

import (
	"context"
	"strings"
	"time"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
)

type fakeUserRepo struct {
	users     map[uint]*user.User
	stampErr  error
	updateErr error
	stamps    []time.Time
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, usr *user.User) error {
	r.users[usr.ID] = usr
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByPublicID(ctx context.Context, publicID string) (*user.User, error) {
	for _, u := range r.users {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, usr *user.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[usr.ID] = usr
	return nil
}

func (r *fakeUserRepo) SetLastReasoningRequestAt(ctx context.Context, userID uint, at time.Time) error {
	if r.stampErr != nil {
		return r.stampErr
	}
	r.stamps = append(r.stamps, at)
	if u, ok := r.users[userID]; ok {
		stamp := at
		u.LastReasoningRequestAt = &stamp
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]*profile.Profile
	saveErr  error
	saves    int
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[uint]*profile.Profile)}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}
	return repo
}

func (r *fakeProfileRepo) Create(ctx context.Context, prof *profile.Profile) error {
	r.profiles[prof.UserID] = prof
	return nil
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, userID uint) (*profile.Profile, error) {
	return r.profiles[userID], nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, prof *profile.Profile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.profiles[prof.UserID] = prof
	return nil
}

type fakeUniversityRepo struct {
	unis []*university.University
}

func (r *fakeUniversityRepo) Create(ctx context.Context, uni *university.University) error {
	r.unis = append(r.unis, uni)
	return nil
}

func (r *fakeUniversityRepo) UpsertByName(ctx context.Context, uni *university.University) error {
	for _, existing := range r.unis {
		if existing.Name == uni.Name {
			*existing = *uni
			return nil
		}
	}
	r.unis = append(r.unis, uni)
	return nil
}

func (r *fakeUniversityRepo) FindByID(ctx context.Context, id uint) (*university.University, error) {
	for _, u := range r.unis {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUniversityRepo) FindByPublicID(ctx context.Context, publicID string) (*university.University, error) {
	for _, u := range r.unis {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUniversityRepo) FindByExactName(ctx context.Context, name string) (*university.University, error) {
	for _, u := range r.unis {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUniversityRepo) FindByNamePattern(ctx context.Context, pattern string) (*university.University, error) {
	for _, u := range r.unis {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(pattern)) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUniversityRepo) FindByFilter(ctx context.Context, filter university.Filter) ([]*university.University, error) {
	return r.unis, nil
}

func (r *fakeUniversityRepo) FindByIDs(ctx context.Context, ids []uint) ([]*university.University, error) {
	var out []*university.University
	for _, id := range ids {
		for _, u := range r.unis {
			if u.ID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUniversityRepo) Count(ctx context.Context, filter university.Filter) (int64, error) {
	return int64(len(r.unis)), nil
}

type fakeTaskRepo struct {
	tasks     []*task.Task
	createErr error
}

func (r *fakeTaskRepo) Create(ctx context.Context, t *task.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	t.ID = uint(len(r.tasks) + 1)
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *fakeTaskRepo) FindByFilter(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	var out []*task.Task
	for _, t := range r.tasks {
		if filter.UserID != nil && t.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) FindByPublicID(ctx context.Context, publicID string) (*task.Task, error) {
	for _, t := range r.tasks {
		if t.PublicID == publicID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, t *task.Task) error {
	return nil
}

type fakeConversationRepo struct {
	records map[uint]*conversation.Conversation
	findErr error
	saveErr error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{records: make(map[uint]*conversation.Conversation)}
}

func (r *fakeConversationRepo) FindByUserID(ctx context.Context, userID uint) (*conversation.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.records[userID], nil
}

func (r *fakeConversationRepo) Save(ctx context.Context, conv *conversation.Conversation) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[conv.UserID] = conv
	return nil
}

func (r *fakeConversationRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	delete(r.records, userID)
	return nil
}

func (r *fakeConversationRepo) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, conv := range r.records {
		if conv.LastUpdated.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

type stubGateway struct {
	raw     string
	err     error
	invoked int
}

func (g *stubGateway) Invoke(ctx context.Context, bctx Context) (string, error) {
	g.invoked++
	return g.raw, g.err
}

type countingMetrics struct {
	completed   int
	rateLimited int
	fallbacks   int
	actions     map[Action]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{actions: make(map[Action]int)}
}

func (m *countingMetrics) TurnCompleted()            { m.completed++ }
func (m *countingMetrics) TurnRateLimited()          { m.rateLimited++ }
func (m *countingMetrics) TurnFallback()             { m.fallbacks++ }
func (m *countingMetrics) ActionDispatched(a Action) { m.actions[a]++ }

// catalogOfThree is the minimal catalog most dispatcher tests need: one
// entry per shortlist category.
func catalogOfThree() *fakeUniversityRepo {
	return &fakeUniversityRepo{unis: []*university.University{
		{ID: 1, PublicID: "univ_mit", Name: "Massachusetts Institute of Technology", Rank: 1, IsActive: true},
		{ID: 2, PublicID: "univ_utaustin", Name: "University of Texas at Austin", Rank: 32, IsActive: true},
		{ID: 3, PublicID: "univ_asu", Name: "Arizona State University", Rank: 62, IsActive: true},
	}}
}
