package counselling

import (
	"fmt"
	"strings"

	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/domain/profile"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/domain/user"
)

// NotProvided is the sentinel summary for an empty profile facet.
const NotProvided = "Not provided"

// HistoryWindow is how many trailing messages feed the engine.
const HistoryWindow = 10

// Facet labels, as shown to the engine and tracked in AlreadyProvided.
const (
	FacetAcademic   = "academic background"
	FacetStudyGoal  = "study goal"
	FacetBudget     = "budget"
	FacetExams      = "exam scores"
	FacetExperience = "work experience"
)

// ShortlistedSummary is one shortlist line for the engine.
type ShortlistedSummary struct {
	Name     string
	Category university.Category
}

// HistoryMessage is one prior message as presented to the engine.
type HistoryMessage struct {
	Role    conversation.Role
	Content string
}

// Context is the immutable per-turn input to the reasoning engine. Building
// it never mutates the profile, the user, or the conversation record.
type Context struct {
	UserMessage string
	UserName    string
	Stage       user.Stage

	FacetSummaries  map[string]string
	AlreadyProvided map[string]bool
	Instruction     string

	Shortlisted []ShortlistedSummary
	Locked      string
	History     []HistoryMessage

	FirstTurn bool
}

// BuildContext assembles the engine context for one turn. Every populated
// facet contributes both a summary line and an AlreadyProvided entry, so
// the instruction can steer the engine away from re-asking answered
// questions.
func BuildContext(usr *user.User, prof *profile.Profile, history []conversation.Message, shortlisted []ShortlistedSummary, locked string, userMessage string) Context {
	bctx := Context{
		UserMessage:     strings.TrimSpace(userMessage),
		UserName:        usr.Name,
		Stage:           usr.Stage,
		FacetSummaries:  make(map[string]string, 5),
		AlreadyProvided: make(map[string]bool, 5),
		Shortlisted:     shortlisted,
		Locked:          locked,
		FirstTurn:       !usr.FirstCounsellingDone,
	}

	addFacet := func(label, summary string) {
		if summary == "" {
			bctx.FacetSummaries[label] = NotProvided
			return
		}
		bctx.FacetSummaries[label] = summary
		bctx.AlreadyProvided[label] = true
	}

	addFacet(FacetAcademic, summarizeAcademic(prof.Academic))
	addFacet(FacetStudyGoal, summarizeStudyGoal(prof.StudyGoal))
	addFacet(FacetBudget, summarizeBudget(prof.Budget))
	addFacet(FacetExams, summarizeExams(prof))
	addFacet(FacetExperience, summarizeExperience(prof))

	bctx.Instruction = renderInstruction(bctx.AlreadyProvided)

	for _, msg := range history {
		content := msg.Content
		if msg.Role == conversation.RoleAssistant {
			content = scrubStructuredArtifacts(content)
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		bctx.History = append(bctx.History, HistoryMessage{Role: msg.Role, Content: content})
	}

	return bctx
}

func summarizeAcademic(a *profile.Academic) string {
	if a == nil {
		return ""
	}
	var parts []string
	if a.Level != "" {
		parts = append(parts, a.Level)
	}
	if a.Major != "" {
		parts = append(parts, "in "+a.Major)
	}
	if a.University != "" {
		parts = append(parts, "at "+a.University)
	}
	if a.GPA != "" {
		parts = append(parts, "GPA "+a.GPA)
	}
	if a.GraduationYear > 0 {
		parts = append(parts, fmt.Sprintf("graduating %d", a.GraduationYear))
	}
	return strings.Join(parts, ", ")
}

func summarizeStudyGoal(g *profile.StudyGoal) string {
	if g == nil {
		return ""
	}
	var parts []string
	if g.Degree != "" {
		parts = append(parts, g.Degree)
	}
	if g.Field != "" {
		parts = append(parts, "in "+g.Field)
	}
	if len(g.Countries) > 0 {
		parts = append(parts, "targeting "+strings.Join(g.Countries, "/"))
	}
	if g.IntakeYear > 0 {
		parts = append(parts, fmt.Sprintf("intake %d", g.IntakeYear))
	}
	return strings.Join(parts, ", ")
}

func summarizeBudget(b *profile.Budget) string {
	if b == nil {
		return ""
	}
	var parts []string
	if b.Range != "" {
		parts = append(parts, b.Range)
	}
	if b.Funding != "" {
		parts = append(parts, "funded via "+b.Funding)
	}
	return strings.Join(parts, ", ")
}

func summarizeExams(p *profile.Profile) string {
	var parts []string
	for _, exam := range []struct {
		name  string
		score profile.ExamScore
	}{
		{"IELTS", p.IELTS},
		{"TOEFL", p.TOEFL},
		{"GRE", p.GRE},
		{"GMAT", p.GMAT},
	} {
		if !exam.score.Taken {
			continue
		}
		if exam.score.Score != "" {
			parts = append(parts, exam.name+" "+exam.score.Score)
		} else {
			parts = append(parts, exam.name+" taken")
		}
	}
	return strings.Join(parts, ", ")
}

func summarizeExperience(p *profile.Profile) string {
	var parts []string
	if p.WorkExperience != "" {
		parts = append(parts, p.WorkExperience)
	}
	if p.ResearchExperience != "" {
		parts = append(parts, "research: "+p.ResearchExperience)
	}
	if p.Publications != "" {
		parts = append(parts, "publications: "+p.Publications)
	}
	return strings.Join(parts, "; ")
}

func renderInstruction(alreadyProvided map[string]bool) string {
	if len(alreadyProvided) == 0 {
		return "The student has not shared any profile details yet. Ask about their background one topic at a time."
	}
	labels := make([]string, 0, len(alreadyProvided))
	for _, label := range []string{FacetAcademic, FacetStudyGoal, FacetBudget, FacetExams, FacetExperience} {
		if alreadyProvided[label] {
			labels = append(labels, label)
		}
	}
	return "The student already provided: " + strings.Join(labels, ", ") +
		". Do not ask about these again; build on them."
}

// scrubStructuredArtifacts removes JSON fragments a previous turn may have
// leaked into an assistant message, so history fed back to the engine stays
// prose-only.
func scrubStructuredArtifacts(content string) string {
	for offset := 0; offset < len(content); {
		start := strings.IndexByte(content[offset:], '{')
		if start < 0 {
			break
		}
		start += offset
		end := matchBrace(content, start)
		if end < 0 {
			content = content[:start]
			break
		}
		if looksSerializedBlock(content[start : end+1]) {
			content = content[:start] + " " + content[end+1:]
			offset = start
		} else {
			offset = end + 1
		}
	}
	return strings.Join(strings.Fields(content), " ")
}

// looksSerializedBlock separates data from prose wrapped in braces: a
// serialized object carries quoted text and a colon, or nothing readable at
// all, while "{curly}" in a sentence carries neither.
func looksSerializedBlock(block string) bool {
	if strings.Contains(block, `"`) && strings.Contains(block, ":") {
		return true
	}
	for _, r := range block {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
