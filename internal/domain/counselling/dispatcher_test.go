package counselling

import (
	"context"
	"strings"
	"testing"
	"time"

	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
)

func newTestDispatcher(taskRepo *fakeTaskRepo, profileRepo *fakeProfileRepo, uniRepo *fakeUniversityRepo, userRepo *fakeUserRepo) *Dispatcher {
	d := NewDispatcher(
		task.NewService(taskRepo),
		profile.NewService(profileRepo),
		university.NewService(uniRepo),
		user.NewService(userRepo),
	)
	d.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func TestDispatchCreateTask(t *testing.T) {
	taskRepo := &fakeTaskRepo{}
	usr := &user.User{ID: 1, Stage: user.StageBuildingProfile}
	d := newTestDispatcher(taskRepo, newFakeProfileRepo(), catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{
		Message: "Let's get your GRE prep moving.",
		Action:  ActionCreateTask,
		Task:    &TaskSuggestion{Title: "Register for the GRE", Reason: "Needed for most US programs"},
	}
	d.Dispatch(context.Background(), usr, &profile.Profile{UserID: 1}, reply)

	if !reply.TaskCreated {
		t.Fatal("TaskCreated annotation not set")
	}
	if len(taskRepo.tasks) != 1 {
		t.Fatalf("tasks created = %d, want 1", len(taskRepo.tasks))
	}
	created := taskRepo.tasks[0]
	if created.Priority != task.PriorityHigh || created.Category != task.CategoryProfile || created.CreatedBy != task.OriginAI {
		t.Errorf("engine task defaults wrong: %+v", created)
	}
	if created.RelatedStage != string(user.StageBuildingProfile) {
		t.Errorf("RelatedStage = %q", created.RelatedStage)
	}
	if !strings.Contains(reply.Message, `"Register for the GRE"`) {
		t.Errorf("message missing task confirmation: %q", reply.Message)
	}
}

func TestDispatchCreateTaskFailureIsSilent(t *testing.T) {
	taskRepo := &fakeTaskRepo{createErr: context.DeadlineExceeded}
	usr := &user.User{ID: 1}
	d := newTestDispatcher(taskRepo, newFakeProfileRepo(), catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{Message: "On it.", Action: ActionCreateTask, Task: &TaskSuggestion{Title: "Draft SOP"}}
	d.Dispatch(context.Background(), usr, &profile.Profile{UserID: 1}, reply)

	if reply.TaskCreated {
		t.Error("a failed side effect must not be annotated as done")
	}
}

func TestDispatchShortlist(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usr := &user.User{ID: 1}
	prof := &profile.Profile{UserID: 1}
	profileRepo.profiles[1] = prof
	d := newTestDispatcher(&fakeTaskRepo{}, profileRepo, catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{Message: "Good choice to consider.", Action: ActionShortlistUniversity, UniversityName: "MIT"}
	d.Dispatch(context.Background(), usr, prof, reply)

	if !reply.UniversityShortlisted {
		t.Fatal("shortlist annotation not set")
	}
	if len(prof.Shortlisted) != 1 || prof.Shortlisted[0].UniversityID != 1 {
		t.Fatalf("shortlist = %+v", prof.Shortlisted)
	}
	if prof.Shortlisted[0].Category != university.CategoryDream {
		t.Errorf("rank 1 should be DREAM, got %s", prof.Shortlisted[0].Category)
	}

	// Same action again is a no-op with a different annotation.
	again := &Reply{Message: "Noted.", Action: ActionShortlistUniversity, UniversityName: "MIT"}
	d.Dispatch(context.Background(), usr, prof, again)
	if again.UniversityShortlisted {
		t.Error("duplicate shortlist must not re-annotate")
	}
	if !strings.Contains(again.Message, "already on your shortlist") {
		t.Errorf("duplicate message = %q", again.Message)
	}
	if len(prof.Shortlisted) != 1 {
		t.Errorf("duplicate entry added: %+v", prof.Shortlisted)
	}
}

func TestDispatchShortlistUnknownGoesToWishlist(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usr := &user.User{ID: 1}
	prof := &profile.Profile{UserID: 1}
	profileRepo.profiles[1] = prof
	d := newTestDispatcher(&fakeTaskRepo{}, profileRepo, catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{Message: "Let me note that one.", Action: ActionShortlistUniversity, UniversityName: "Hogwarts University"}
	d.Dispatch(context.Background(), usr, prof, reply)

	if reply.UniversityShortlisted {
		t.Error("unresolvable name must not count as shortlisted")
	}
	if len(prof.Wishlist) != 1 || prof.Wishlist[0].Name != "Hogwarts University" {
		t.Fatalf("wishlist = %+v", prof.Wishlist)
	}
	if !strings.Contains(reply.Message, "wishlist") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestDispatchAutoShortlistSkipsUnresolvable(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	usr := &user.User{ID: 1}
	prof := &profile.Profile{UserID: 1}
	profileRepo.profiles[1] = prof
	d := newTestDispatcher(&fakeTaskRepo{}, profileRepo, catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{
		Message: "Starting your shortlist with a spread of difficulty.",
		Action:  ActionAutoShortlistMultiple,
		AutoShortlisted: []AutoShortlistEntry{
			{Name: "MIT"},
			{Name: "Atlantis Institute"},
			{Name: "Arizona State University"},
		},
	}
	d.Dispatch(context.Background(), usr, prof, reply)

	if !reply.UniversityShortlisted {
		t.Fatal("partial auto-shortlist should still annotate success")
	}
	if len(reply.AutoShortlistedResults) != 2 {
		t.Fatalf("results = %+v, want 2", reply.AutoShortlistedResults)
	}
	if len(prof.Shortlisted) != 2 {
		t.Fatalf("shortlist = %+v", prof.Shortlisted)
	}
	if profileRepo.saves != 1 {
		t.Errorf("profile saves = %d, want a single batched save", profileRepo.saves)
	}
}

func TestDispatchLockPreconditions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("not in catalog", func(t *testing.T) {
		usr := &user.User{ID: 1}
		prof := &profile.Profile{UserID: 1}
		d := newTestDispatcher(&fakeTaskRepo{}, newFakeProfileRepo(prof), catalogOfThree(), newFakeUserRepo(usr))

		reply := &Reply{Message: "Locking it in.", Action: ActionLockUniversity, UniversityName: "Atlantis Institute"}
		d.Dispatch(context.Background(), usr, prof, reply)

		if reply.UniversityLocked || prof.Locked != nil {
			t.Error("unknown university must not lock")
		}
		if !strings.Contains(reply.Message, "couldn't find") {
			t.Errorf("message = %q", reply.Message)
		}
	})

	t.Run("not shortlisted", func(t *testing.T) {
		usr := &user.User{ID: 1}
		prof := &profile.Profile{UserID: 1}
		d := newTestDispatcher(&fakeTaskRepo{}, newFakeProfileRepo(prof), catalogOfThree(), newFakeUserRepo(usr))

		reply := &Reply{Message: "Locking it in.", Action: ActionLockUniversity, UniversityName: "MIT"}
		d.Dispatch(context.Background(), usr, prof, reply)

		if reply.UniversityLocked || prof.Locked != nil {
			t.Error("must shortlist before locking")
		}
		if !strings.Contains(reply.Message, "isn't on your shortlist") {
			t.Errorf("message = %q", reply.Message)
		}
	})

	t.Run("shortlist too small", func(t *testing.T) {
		usr := &user.User{ID: 1}
		prof := &profile.Profile{UserID: 1}
		prof.AddShortlist(1, university.CategoryDream, now)
		prof.AddShortlist(2, university.CategoryTarget, now)
		d := newTestDispatcher(&fakeTaskRepo{}, newFakeProfileRepo(prof), catalogOfThree(), newFakeUserRepo(usr))

		reply := &Reply{Message: "Locking it in.", Action: ActionLockUniversity, UniversityName: "MIT"}
		d.Dispatch(context.Background(), usr, prof, reply)

		if reply.UniversityLocked || prof.Locked != nil {
			t.Error("two shortlisted entries are not enough to lock")
		}
		if !strings.Contains(reply.Message, "at least 3") {
			t.Errorf("message = %q", reply.Message)
		}
	})
}

func TestDispatchLockSuccessAdvancesStage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	usr := &user.User{ID: 1, Stage: user.StageFinalizingUniversities}
	prof := &profile.Profile{UserID: 1}
	prof.AddShortlist(1, university.CategoryDream, now)
	prof.AddShortlist(2, university.CategoryTarget, now)
	prof.AddShortlist(3, university.CategorySafe, now)
	d := newTestDispatcher(&fakeTaskRepo{}, newFakeProfileRepo(prof), catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{Message: "Great decision.", Action: ActionLockUniversity, UniversityName: "University of Texas at Austin"}
	d.Dispatch(context.Background(), usr, prof, reply)

	if !reply.UniversityLocked {
		t.Fatal("lock annotation not set")
	}
	if prof.Locked == nil || prof.Locked.UniversityID != 2 {
		t.Fatalf("locked = %+v", prof.Locked)
	}
	if usr.Stage != user.StagePreparingApplications {
		t.Errorf("stage = %s, want PREPARING_APPLICATIONS", usr.Stage)
	}
}

func TestDispatchRelockOverwrites(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	usr := &user.User{ID: 1, Stage: user.StagePreparingApplications}
	prof := &profile.Profile{UserID: 1}
	prof.AddShortlist(1, university.CategoryDream, now)
	prof.AddShortlist(2, university.CategoryTarget, now)
	prof.AddShortlist(3, university.CategorySafe, now)
	prof.Lock(1, now)
	d := newTestDispatcher(&fakeTaskRepo{}, newFakeProfileRepo(prof), catalogOfThree(), newFakeUserRepo(usr))

	reply := &Reply{Message: "Changing course.", Action: ActionLockUniversity, UniversityName: "Arizona State University"}
	d.Dispatch(context.Background(), usr, prof, reply)

	if prof.Locked == nil || prof.Locked.UniversityID != 3 {
		t.Fatalf("relock should overwrite, locked = %+v", prof.Locked)
	}
	if usr.Stage != user.StagePreparingApplications {
		t.Errorf("stage must not regress, got %s", usr.Stage)
	}
}
