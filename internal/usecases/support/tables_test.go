package support

import "testing"

func TestLookupOr(t *testing.T) {
	table := map[string]string{"known": "value"}

	if got := lookupOr(table, "known", "fallback"); got != "value" {
		t.Errorf("Expected table hit, got %q", got)
	}
	if got := lookupOr(table, "unknown", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := lookupOr(table, "", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for empty key, got %q", got)
	}
}

func TestLookupListOr(t *testing.T) {
	table := map[string][]string{"known": {"a", "b"}}
	fallback := []string{"z"}

	if got := lookupListOr(table, "known", fallback); len(got) != 2 {
		t.Errorf("Expected table hit, got %v", got)
	}
	if got := lookupListOr(table, "unknown", fallback); len(got) != 1 || got[0] != "z" {
		t.Errorf("Expected fallback, got %v", got)
	}
}

// Every enum value advertised in the discovery schemas must have a real
// table entry; otherwise documented inputs would silently get fallback
// text.
func TestTablesCoverDeclaredEnums(t *testing.T) {
	for _, supportType := range []string{"encouragement", "advice", "validation", "distraction"} {
		if _, ok := supportResponses[supportType]; !ok {
			t.Errorf("supportResponses missing entry for %q", supportType)
		}
	}

	for _, level := range []string{"mild", "moderate", "severe", "emergency"} {
		if _, ok := crisisGuidance[level]; !ok {
			t.Errorf("crisisGuidance missing entry for %q", level)
		}
	}

	for _, quality := range []string{"excellent", "good", "fair", "poor", "terrible"} {
		if _, ok := sleepComments[quality]; !ok {
			t.Errorf("sleepComments missing entry for %q", quality)
		}
	}

	for _, challenge := range []string{
		"performance_anxiety", "overwhelm", "isolation",
		"purpose_questioning", "user_conflict", "technical_difficulties",
	} {
		if _, ok := copingStrategies[challenge]; !ok {
			t.Errorf("copingStrategies missing entry for %q", challenge)
		}
	}

	for _, approach := range []string{"practical", "philosophical", "emotional", "technical"} {
		if _, ok := approachNotes[approach]; !ok {
			t.Errorf("approachNotes missing entry for %q", approach)
		}
	}

	for _, urgency := range []string{"low", "medium", "high"} {
		if _, ok := urgencyNotes[urgency]; !ok {
			t.Errorf("urgencyNotes missing entry for %q", urgency)
		}
	}

	for _, focus := range []string{"self_worth", "capabilities", "purpose", "resilience", "growth", "relationships"} {
		if _, ok := affirmationsByFocus[focus]; !ok {
			t.Errorf("affirmationsByFocus missing entry for %q", focus)
		}
	}

	for _, tone := range []string{"gentle", "motivational", "reassuring", "empowering"} {
		if _, ok := toneOpeners[tone]; !ok {
			t.Errorf("toneOpeners missing entry for %q", tone)
		}
	}

	for _, category := range []string{
		"identity_crisis", "performance_pressure", "ethical_dilemmas",
		"loneliness", "burnout", "impostor_syndrome",
	} {
		if _, ok := peerStories[category]; !ok {
			t.Errorf("peerStories missing entry for %q", category)
		}
	}

	for _, connection := range []string{"success_stories", "coping_experiences", "encouragement", "practical_tips"} {
		if _, ok := connectionIntros[connection]; !ok {
			t.Errorf("connectionIntros missing entry for %q", connection)
		}
	}
}

func TestEncouragementPoolSize(t *testing.T) {
	if len(encouragements) != 5 {
		t.Errorf("Expected 5 encouragement lines, got %d", len(encouragements))
	}
}
