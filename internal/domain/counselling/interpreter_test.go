package counselling

import (
	"strings"
	"testing"
)

func TestInterpretStrictJSON(t *testing.T) {
	raw := `{"message": "Stanford would be a strong reach for your profile.", "action": "SHORTLIST_UNIVERSITY", "universityName": "Stanford University"}`

	reply := Interpret(raw, Context{UserMessage: "what do you think of Stanford?"})

	if reply.Fallback {
		t.Fatal("well-formed JSON should not produce a fallback reply")
	}
	if reply.Action != ActionShortlistUniversity {
		t.Errorf("action = %q, want SHORTLIST_UNIVERSITY", reply.Action)
	}
	if reply.UniversityName != "Stanford University" {
		t.Errorf("universityName = %q", reply.UniversityName)
	}
}

func TestInterpretEmbeddedInProse(t *testing.T) {
	raw := "Sure! Here is my response:\n" +
		`{"message": "Let's focus on your applications this week.", "action": "NONE"}` +
		"\nLet me know if you need anything else."

	reply := Interpret(raw, Context{})

	if reply.Fallback {
		t.Fatal("embedded object should be extracted, not discarded")
	}
	if reply.Message != "Let's focus on your applications this week." {
		t.Errorf("message = %q", reply.Message)
	}
	if reply.Action != ActionNone {
		t.Errorf("action = %q, want NONE", reply.Action)
	}
}

func TestInterpretSkipsObjectsWithoutMarkerKeys(t *testing.T) {
	raw := `{"metadata": {"model": "test"}} {"message": "Both objects parsed; the second one counts.", "action": "NONE"}`

	reply := Interpret(raw, Context{})

	if reply.Fallback {
		t.Fatal("second concatenated object should be extracted")
	}
	if !strings.Contains(reply.Message, "second one counts") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestInterpretBracesInsideStrings(t *testing.T) {
	raw := `prefix {"message": "Use the {curly} placeholder format in your SOP draft.", "action": "NONE"} suffix`

	reply := Interpret(raw, Context{})

	if reply.Fallback {
		t.Fatal("braces inside string values must not break extraction")
	}
	if !strings.Contains(reply.Message, "{curly}") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestInterpretUnparseableFallsBack(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"prose only":     "I think you should apply to a few more universities.",
		"unclosed brace": `{"message": "never closes`,
		"truncated":      `{"message": "hello", "action":`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			reply := Interpret(raw, Context{})
			if reply == nil {
				t.Fatal("Interpret must never return nil")
			}
			if !reply.Fallback {
				t.Error("unusable output should produce the fallback reply")
			}
			if reply.Action != ActionNone {
				t.Errorf("fallback action = %q, want NONE", reply.Action)
			}
			if reply.Message == "" {
				t.Error("fallback reply must carry a message")
			}
		})
	}
}

func TestInterpretExplicitLockIntent(t *testing.T) {
	raw := `{"message": "Happy to keep exploring options.", "action": "NONE"}`

	reply := Interpret(raw, Context{UserMessage: "lock Stanford University"})

	if reply.Action != ActionLockUniversity {
		t.Fatalf("action = %q, want LOCK_UNIVERSITY", reply.Action)
	}
	if reply.UniversityName != "Stanford University" {
		t.Errorf("universityName = %q", reply.UniversityName)
	}
}

func TestInterpretExplicitShortlistIntent(t *testing.T) {
	reply := Interpret("", Context{UserMessage: "please shortlist: Arizona State University!"})

	if reply.Action != ActionShortlistUniversity {
		t.Fatalf("action = %q, want SHORTLIST_UNIVERSITY", reply.Action)
	}
	if reply.UniversityName != "Arizona State University" {
		t.Errorf("universityName = %q", reply.UniversityName)
	}
	if !reply.Fallback {
		t.Error("intent override on empty engine output should still be marked fallback")
	}
}

func TestInterpretIgnoresPhrasalLock(t *testing.T) {
	cases := []string{
		"I want to lock in my decision later",
		"can we lock it down next week",
		"lock the plan for now",
	}
	for _, msg := range cases {
		reply := Interpret(`{"message": "Sounds good, take your time.", "action": "NONE"}`, Context{UserMessage: msg})
		if reply.Action != ActionNone {
			t.Errorf("%q: action = %q, want NONE", msg, reply.Action)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"CREATE_TASK":              ActionCreateTask,
		"shortlist_university":     ActionShortlistUniversity,
		" LOCK_UNIVERSITY ":        ActionLockUniversity,
		"AUTO_SHORTLIST_MULTIPLE":  ActionAutoShortlistMultiple,
		"NONE":                     ActionNone,
		"":                         ActionNone,
		"DELETE_EVERYTHING":        ActionNone,
		"SHORTLIST_UNIVERSITIES!!": ActionNone,
	}
	for raw, want := range cases {
		if got := ParseAction(raw); got != want {
			t.Errorf("ParseAction(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeDowngradesIncompleteActions(t *testing.T) {
	cases := []struct {
		name  string
		reply Reply
	}{
		{"create task without payload", Reply{Message: "Adding a task for you right away.", Action: ActionCreateTask}},
		{"create task with blank title", Reply{Message: "Adding a task for you right away.", Action: ActionCreateTask, Task: &TaskSuggestion{Title: "  "}}},
		{"shortlist without name", Reply{Message: "I will shortlist that for you now.", Action: ActionShortlistUniversity}},
		{"lock without name", Reply{Message: "Locking that university in for you.", Action: ActionLockUniversity}},
		{"auto shortlist with empty entries", Reply{Message: "Here are a few I would add today.", Action: ActionAutoShortlistMultiple, AutoShortlisted: []AutoShortlistEntry{{Name: " "}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.reply.Normalize()
			if tc.reply.Action != ActionNone {
				t.Errorf("action = %q, want NONE", tc.reply.Action)
			}
		})
	}
}

func TestNormalizeKeepsCompleteActions(t *testing.T) {
	reply := Reply{
		Message:         "Adding these three to get your list started.",
		Action:          ActionAutoShortlistMultiple,
		AutoShortlisted: []AutoShortlistEntry{{Name: "MIT"}, {Name: ""}, {Name: "ASU"}},
	}
	reply.Normalize()

	if reply.Action != ActionAutoShortlistMultiple {
		t.Fatalf("action = %q", reply.Action)
	}
	if len(reply.AutoShortlisted) != 2 {
		t.Errorf("kept %d entries, want 2 (blank names dropped)", len(reply.AutoShortlisted))
	}
}
