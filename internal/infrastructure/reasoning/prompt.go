package reasoning

import (
	"fmt"
	"strings"

	"gradpath-server/internal/domain/counselling"
)

const responseSchema = `Respond with a single JSON object only, no prose outside it:
{
  "message": "your conversational reply to the student",
  "profileAssessment": {"academics": "...", "internships": "...", "readiness": "..."},
  "collegeRecommendations": [
    {"name": "...", "country": "...", "rank": 0, "category": "DREAM|TARGET|SAFE", "whyItFits": "...", "acceptanceChance": "..."}
  ],
  "nextSteps": ["..."],
  "action": "NONE|CREATE_TASK|SHORTLIST_UNIVERSITY|LOCK_UNIVERSITY|AUTO_SHORTLIST_MULTIPLE",
  "task": {"title": "...", "reason": "..."},
  "universityName": "...",
  "autoShortlisted": [{"name": "...", "category": "..."}]
}
Use "action" only when the student clearly asks for it or it obviously helps.
Set "universityName" when action is SHORTLIST_UNIVERSITY or LOCK_UNIVERSITY.
Set "task" when action is CREATE_TASK. Omit fields you do not need.`

// RenderSystemPrompt turns the built context into the engine's system
// message: persona, the student's known profile, standing shortlist state,
// and the strict output schema.
func RenderSystemPrompt(bctx counselling.Context) string {
	var b strings.Builder

	b.WriteString("You are an experienced study-abroad counsellor helping a student plan ")
	b.WriteString("their university applications. Be warm, specific, and practical.\n\n")

	if bctx.UserName != "" {
		fmt.Fprintf(&b, "Student: %s\n", bctx.UserName)
	}
	fmt.Fprintf(&b, "Journey stage: %s\n\n", bctx.Stage)

	b.WriteString("What you know about the student:\n")
	for _, label := range []string{
		counselling.FacetAcademic,
		counselling.FacetStudyGoal,
		counselling.FacetBudget,
		counselling.FacetExams,
		counselling.FacetExperience,
	} {
		fmt.Fprintf(&b, "- %s: %s\n", label, bctx.FacetSummaries[label])
	}
	b.WriteString("\n")

	if bctx.Instruction != "" {
		b.WriteString(bctx.Instruction)
		b.WriteString("\n\n")
	}

	if len(bctx.Shortlisted) > 0 {
		b.WriteString("Current shortlist:\n")
		for _, entry := range bctx.Shortlisted {
			fmt.Fprintf(&b, "- %s (%s)\n", entry.Name, entry.Category)
		}
		b.WriteString("\n")
	}
	if bctx.Locked != "" {
		fmt.Fprintf(&b, "The student has locked %s as their final choice.\n\n", bctx.Locked)
	}
	if bctx.FirstTurn {
		b.WriteString("This is the student's first counselling session; welcome them briefly.\n\n")
	}

	b.WriteString(responseSchema)
	return b.String()
}
