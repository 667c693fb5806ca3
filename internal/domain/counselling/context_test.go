package counselling

import (
	"strings"
	"testing"
	"time"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/user"
)

func TestBuildContextEmptyProfile(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya", Stage: user.StageOnboarding}
	prof := &profile.Profile{UserID: 1}

	bctx := BuildContext(usr, prof, nil, nil, "", "hello")

	for _, label := range []string{FacetAcademic, FacetStudyGoal, FacetBudget, FacetExams, FacetExperience} {
		if bctx.FacetSummaries[label] != NotProvided {
			t.Errorf("facet %q = %q, want %q", label, bctx.FacetSummaries[label], NotProvided)
		}
		if bctx.AlreadyProvided[label] {
			t.Errorf("facet %q marked as provided on an empty profile", label)
		}
	}
	if !bctx.FirstTurn {
		t.Error("FirstTurn should be set before the first counselling turn")
	}
	if !strings.Contains(bctx.Instruction, "one topic at a time") {
		t.Errorf("empty-profile instruction = %q", bctx.Instruction)
	}
}

func TestBuildContextProvidedFacets(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya", Stage: user.StageBuildingProfile, FirstCounsellingDone: true}
	prof := &profile.Profile{
		UserID:   1,
		Academic: &profile.Academic{Level: "B.Tech", Major: "Computer Science", GPA: "8.7", GraduationYear: 2025},
		StudyGoal: &profile.StudyGoal{
			Degree: "MS", Field: "Computer Science", Countries: []string{"USA", "Canada"}, IntakeYear: 2027,
		},
		GRE:            profile.ExamScore{Taken: true, Score: "325"},
		IELTS:          profile.ExamScore{Taken: true},
		WorkExperience: "2 years backend engineering",
	}

	bctx := BuildContext(usr, prof, nil, nil, "", "what next?")

	if !bctx.AlreadyProvided[FacetAcademic] || !bctx.AlreadyProvided[FacetStudyGoal] {
		t.Fatal("populated facets should be marked as provided")
	}
	if bctx.AlreadyProvided[FacetBudget] {
		t.Error("budget was not provided")
	}
	if got := bctx.FacetSummaries[FacetAcademic]; !strings.Contains(got, "Computer Science") || !strings.Contains(got, "8.7") {
		t.Errorf("academic summary = %q", got)
	}
	if got := bctx.FacetSummaries[FacetExams]; !strings.Contains(got, "GRE 325") || !strings.Contains(got, "IELTS taken") {
		t.Errorf("exam summary = %q", got)
	}
	if !strings.Contains(bctx.Instruction, FacetAcademic) || !strings.Contains(bctx.Instruction, "Do not ask about these again") {
		t.Errorf("instruction = %q", bctx.Instruction)
	}
	if bctx.FirstTurn {
		t.Error("FirstTurn should be cleared after the first counselling turn")
	}
}

func TestBuildContextScrubsAssistantHistory(t *testing.T) {
	usr := &user.User{ID: 1, Name: "Priya"}
	prof := &profile.Profile{UserID: 1}
	now := time.Now()
	history := []conversation.Message{
		{Role: conversation.RoleUser, Content: "tell me about MIT", Timestamp: now},
		{Role: conversation.RoleAssistant, Content: `MIT is a reach. {"action": "NONE"} Worth applying anyway.`, Timestamp: now},
		{Role: conversation.RoleAssistant, Content: `{"action": "NONE"}`, Timestamp: now},
	}

	bctx := BuildContext(usr, prof, history, nil, "", "ok")

	if len(bctx.History) != 2 {
		t.Fatalf("history length = %d, want 2 (fully structural message dropped)", len(bctx.History))
	}
	if bctx.History[0].Content != "tell me about MIT" {
		t.Errorf("user message altered: %q", bctx.History[0].Content)
	}
	scrubbed := bctx.History[1].Content
	if strings.Contains(scrubbed, "{") || strings.Contains(scrubbed, "action") {
		t.Errorf("assistant history still carries artifacts: %q", scrubbed)
	}
	if !strings.Contains(scrubbed, "Worth applying anyway") {
		t.Errorf("assistant prose lost: %q", scrubbed)
	}
}

func TestFallbackReplyRichPathNeedsCoreFacets(t *testing.T) {
	rich := FallbackReply(Context{AlreadyProvided: map[string]bool{
		FacetAcademic:  true,
		FacetStudyGoal: true,
	}})
	if len(rich.CollegeRecommendations) == 0 {
		t.Error("developed profile should get example recommendations")
	}
	if rich.Action != ActionNone || !rich.Fallback {
		t.Errorf("fallback contract violated: action=%q fallback=%v", rich.Action, rich.Fallback)
	}

	sparse := FallbackReply(Context{AlreadyProvided: map[string]bool{FacetAcademic: true}})
	if len(sparse.CollegeRecommendations) != 0 {
		t.Error("sparse profile should get a profile-completion nudge, not recommendations")
	}
	if !strings.Contains(sparse.Message, "profile") {
		t.Errorf("nudge message = %q", sparse.Message)
	}
}
