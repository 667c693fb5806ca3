package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureIDFormat(t *testing.T) {
	id, err := GenerateSecureID("user", 16)
	if err != nil {
		t.Fatalf("GenerateSecureID: %v", err)
	}

	if !strings.HasPrefix(id, "user_") {
		t.Errorf("id = %q, want a user_ prefix", id)
	}
	random := strings.TrimPrefix(id, "user_")
	if len(random) != 16 {
		t.Errorf("random part length = %d, want 16", len(random))
	}
	for _, r := range random {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Errorf("id %q carries %q outside the alphabet", id, r)
		}
	}
}

func TestGenerateSecureIDRejectsBadLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := GenerateSecureID("task", length); err == nil {
			t.Errorf("length %d should be rejected", length)
		}
	}
}

func TestGenerateSecureIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 256; i++ {
		id, err := GenerateSecureID("conv", 16)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestMustGenerateSecureID(t *testing.T) {
	id := MustGenerateSecureID("univ", 12)
	if !strings.HasPrefix(id, "univ_") || len(id) != len("univ_")+12 {
		t.Errorf("id = %q", id)
	}
}
