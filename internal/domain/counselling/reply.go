// Package counselling implements the orchestration engine behind the
// counsellor endpoint: context building, reasoning-engine interpretation,
// action dispatch, and the per-user rate limit.
package counselling

import "strings"

// Action is the single side effect a counsellor reply may request.
type Action string

const (
	ActionNone                  Action = "NONE"
	ActionCreateTask            Action = "CREATE_TASK"
	ActionShortlistUniversity   Action = "SHORTLIST_UNIVERSITY"
	ActionLockUniversity        Action = "LOCK_UNIVERSITY"
	ActionAutoShortlistMultiple Action = "AUTO_SHORTLIST_MULTIPLE"
)

// ParseAction coerces a raw action string to a known Action. Anything
// unrecognized becomes NONE so a confused engine can never trigger an
// unintended side effect.
func ParseAction(raw string) Action {
	switch Action(strings.ToUpper(strings.TrimSpace(raw))) {
	case ActionCreateTask:
		return ActionCreateTask
	case ActionShortlistUniversity:
		return ActionShortlistUniversity
	case ActionLockUniversity:
		return ActionLockUniversity
	case ActionAutoShortlistMultiple:
		return ActionAutoShortlistMultiple
	default:
		return ActionNone
	}
}

// ProfileAssessment is the engine's read on the student's standing.
type ProfileAssessment struct {
	Academics   string `json:"academics,omitempty"`
	Internships string `json:"internships,omitempty"`
	Readiness   string `json:"readiness,omitempty"`
}

// Recommendation is one suggested university in a reply.
type Recommendation struct {
	Name             string `json:"name"`
	Country          string `json:"country,omitempty"`
	Rank             int    `json:"rank,omitempty"`
	Category         string `json:"category,omitempty"`
	WhyItFits        string `json:"whyItFits,omitempty"`
	AcceptanceChance string `json:"acceptanceChance,omitempty"`
}

// TaskSuggestion is the payload for CREATE_TASK.
type TaskSuggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason,omitempty"`
}

// AutoShortlistEntry names one university for AUTO_SHORTLIST_MULTIPLE.
type AutoShortlistEntry struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ShortlistResult annotates one committed auto-shortlist addition.
type ShortlistResult struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Reply is the structured counsellor turn result. The interpreter always
// produces one; the dispatcher annotates it with what actually happened.
type Reply struct {
	Message                string               `json:"message"`
	ProfileAssessment      *ProfileAssessment   `json:"profileAssessment,omitempty"`
	CollegeRecommendations []Recommendation     `json:"collegeRecommendations,omitempty"`
	NextSteps              []string             `json:"nextSteps,omitempty"`
	Action                 Action               `json:"action"`
	Task                   *TaskSuggestion      `json:"task,omitempty"`
	UniversityName         string               `json:"universityName,omitempty"`
	AutoShortlisted        []AutoShortlistEntry `json:"autoShortlisted,omitempty"`

	// Execution annotations, set by the dispatcher.
	TaskCreated            bool              `json:"taskCreated,omitempty"`
	UniversityShortlisted  bool              `json:"universityShortlisted,omitempty"`
	UniversityLocked       bool              `json:"universityLocked,omitempty"`
	AutoShortlistedResults []ShortlistResult `json:"autoShortlistedResults,omitempty"`

	// Fallback marks replies synthesized without (or despite) the engine.
	Fallback bool `json:"fallback,omitempty"`
}

// Normalize enforces the reply contract after parsing: a known action,
// required payloads present, and a usable message.
func (r *Reply) Normalize() {
	r.Action = ParseAction(string(r.Action))

	switch r.Action {
	case ActionCreateTask:
		if r.Task == nil || strings.TrimSpace(r.Task.Title) == "" {
			r.Action = ActionNone
		}
	case ActionShortlistUniversity, ActionLockUniversity:
		if strings.TrimSpace(r.UniversityName) == "" {
			r.Action = ActionNone
		}
	case ActionAutoShortlistMultiple:
		entries := r.AutoShortlisted[:0]
		for _, e := range r.AutoShortlisted {
			if strings.TrimSpace(e.Name) != "" {
				entries = append(entries, e)
			}
		}
		r.AutoShortlisted = entries
		if len(r.AutoShortlisted) == 0 {
			r.Action = ActionNone
		}
	}

	r.Message = SanitizeMessage(r.Message)
}
