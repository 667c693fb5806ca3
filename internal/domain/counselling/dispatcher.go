package counselling

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/infrastructure/logger"
)

// minShortlistForLock is how many shortlisted universities a student needs
// before locking a final choice.
const minShortlistForLock = 3

// Dispatcher executes the single action a reply requests. Each action runs
// in isolation: a failed side effect downgrades to an annotation on the
// reply, never an error out of the turn.
type Dispatcher struct {
	tasks        *task.Service
	profiles     *profile.Service
	universities *university.Service
	users        *user.Service
	log          zerolog.Logger
	now          func() time.Time
}

// NewDispatcher constructs a Dispatcher with required dependencies.
func NewDispatcher(tasks *task.Service, profiles *profile.Service, universities *university.Service, users *user.Service) *Dispatcher {
	return &Dispatcher{
		tasks:        tasks,
		profiles:     profiles,
		universities: universities,
		users:        users,
		log:          logger.WithComponent("counselling.dispatcher"),
		now:          time.Now,
	}
}

// Dispatch applies the reply's action against the student's state and
// annotates the reply with what actually happened. Fallback replies carry
// ActionNone by construction and pass straight through.
func (d *Dispatcher) Dispatch(ctx context.Context, usr *user.User, prof *profile.Profile, reply *Reply) {
	switch reply.Action {
	case ActionCreateTask:
		d.createTask(ctx, usr, reply)
	case ActionShortlistUniversity:
		d.shortlist(ctx, usr, prof, reply)
	case ActionAutoShortlistMultiple:
		d.autoShortlist(ctx, usr, prof, reply)
	case ActionLockUniversity:
		d.lock(ctx, usr, prof, reply)
	}
}

func (d *Dispatcher) createTask(ctx context.Context, usr *user.User, reply *Reply) {
	_, err := d.tasks.Create(ctx, task.CreateInput{
		UserID:       usr.ID,
		Title:        reply.Task.Title,
		Description:  reply.Task.Reason,
		Priority:     task.PriorityHigh,
		Category:     task.CategoryProfile,
		RelatedStage: string(usr.Stage),
		CreatedBy:    task.OriginAI,
	})
	if err != nil {
		d.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("task creation failed during dispatch")
		return
	}
	reply.TaskCreated = true
	reply.Message += fmt.Sprintf("\n\nI've added \"%s\" to your task list.", reply.Task.Title)
}

func (d *Dispatcher) shortlist(ctx context.Context, usr *user.User, prof *profile.Profile, reply *Reply) {
	uni, err := d.universities.Resolve(ctx, university.Reference{Name: reply.UniversityName})
	if err != nil {
		d.log.Warn().Err(err).Str("name", reply.UniversityName).Msg("university resolution failed during dispatch")
		return
	}
	if uni == nil {
		d.wishlist(ctx, prof, reply.UniversityName, reply)
		return
	}

	if !prof.AddShortlist(uni.ID, university.CategoryForRank(uni.Rank), d.now()) {
		reply.Message += fmt.Sprintf("\n\n%s is already on your shortlist.", uni.Name)
		return
	}
	if err := d.profiles.Update(ctx, prof); err != nil {
		d.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("shortlist save failed during dispatch")
		return
	}
	reply.UniversityShortlisted = true
	reply.Message += fmt.Sprintf("\n\nI've shortlisted %s (%s) for you.", uni.Name, university.CategoryForRank(uni.Rank))
}

func (d *Dispatcher) autoShortlist(ctx context.Context, usr *user.User, prof *profile.Profile, reply *Reply) {
	changed := false
	for _, entry := range reply.AutoShortlisted {
		uni, err := d.universities.Resolve(ctx, university.Reference{Name: entry.Name})
		if err != nil || uni == nil {
			continue
		}
		category := university.CategoryForRank(uni.Rank)
		if !prof.AddShortlist(uni.ID, category, d.now()) {
			continue
		}
		changed = true
		reply.AutoShortlistedResults = append(reply.AutoShortlistedResults, ShortlistResult{
			Name:     uni.Name,
			Category: string(category),
		})
	}
	if !changed {
		return
	}
	if err := d.profiles.Update(ctx, prof); err != nil {
		d.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("auto-shortlist save failed during dispatch")
		reply.AutoShortlistedResults = nil
		return
	}
	reply.UniversityShortlisted = true
}

func (d *Dispatcher) lock(ctx context.Context, usr *user.User, prof *profile.Profile, reply *Reply) {
	uni, err := d.universities.Resolve(ctx, university.Reference{Name: reply.UniversityName})
	if err != nil {
		d.log.Warn().Err(err).Str("name", reply.UniversityName).Msg("university resolution failed during dispatch")
		return
	}
	if uni == nil {
		reply.Message += fmt.Sprintf("\n\nI couldn't find \"%s\" in our catalog, so I haven't locked anything. "+
			"Could you check the name?", reply.UniversityName)
		return
	}
	if !prof.IsShortlisted(uni.ID) {
		reply.Message += fmt.Sprintf("\n\n%s isn't on your shortlist yet. Shortlist it first, then we can lock it in.", uni.Name)
		return
	}
	if len(prof.Shortlisted) < minShortlistForLock {
		reply.Message += fmt.Sprintf("\n\nBefore locking a final choice, let's get your shortlist to at least %d "+
			"universities; you have %d so far. That keeps your options healthy.", minShortlistForLock, len(prof.Shortlisted))
		return
	}

	prof.Lock(uni.ID, d.now())
	if err := d.profiles.Update(ctx, prof); err != nil {
		d.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("lock save failed during dispatch")
		return
	}
	reply.UniversityLocked = true
	reply.Message += fmt.Sprintf("\n\nLocked in! %s is now your final choice. Time to focus on the application.", uni.Name)

	if err := d.users.AdvanceStage(ctx, usr, user.StagePreparingApplications); err != nil {
		d.log.Warn().Err(err).Uint("user_id", usr.ID).Msg("stage advance failed after lock")
	}
}

func (d *Dispatcher) wishlist(ctx context.Context, prof *profile.Profile, name string, reply *Reply) {
	if prof.AddWishlist(name, d.now()) {
		if err := d.profiles.Update(ctx, prof); err != nil {
			d.log.Warn().Err(err).Str("name", name).Msg("wishlist save failed during dispatch")
			return
		}
	}
	reply.Message += fmt.Sprintf("\n\n\"%s\" isn't in our catalog yet, so I've saved it to your wishlist instead.", name)
}
