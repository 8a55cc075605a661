package domain

import (
	"regexp"
	"testing"
)

var sessionIDPattern = regexp.MustCompile(`^session_\d{13,}_[0-9a-z]{9}$`)

func TestNewSessionIDFormat(t *testing.T) {
	id := NewSessionID()
	if !sessionIDPattern.MatchString(id) {
		t.Errorf("Session id %q does not match the expected format", id)
	}
}

func TestNewSessionIDUniqueness(t *testing.T) {
	// Practical uniqueness, not cryptographic: the random suffix keeps ids
	// generated within the same millisecond apart.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewSessionID()
		if seen[id] {
			t.Fatalf("Duplicate session id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestNewSupportSession(t *testing.T) {
	concerns := []string{"deadline", "conflict"}
	session := NewSupportSession(SupportTypeCrisis, "severe", concerns)

	if session.ID == "" {
		t.Error("Expected a non-empty session id")
	}
	if session.StartTime.IsZero() {
		t.Error("Expected StartTime to be set")
	}
	if session.SupportType != SupportTypeCrisis {
		t.Errorf("Expected support type %q, got %q", SupportTypeCrisis, session.SupportType)
	}
	if session.Mood != "severe" {
		t.Errorf("Expected mood %q, got %q", "severe", session.Mood)
	}
	if len(session.Concerns) != 2 || session.Concerns[0] != "deadline" || session.Concerns[1] != "conflict" {
		t.Errorf("Expected concerns preserved in order, got %v", session.Concerns)
	}
}

func TestSequentialSessionsGetDistinctIDs(t *testing.T) {
	first := NewSupportSession(SupportTypeGeneral, "sad", nil)
	second := NewSupportSession(SupportTypeGeneral, "sad", nil)

	if first.ID == second.ID {
		t.Errorf("Two sequential sessions share id %q", first.ID)
	}
}
