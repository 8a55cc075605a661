package support

import "strings"

// Argument decoding is deliberately forgiving. A missing field, a wrong
// type, or a value outside the declared enum never fails a call; it decodes
// to the zero value and the response tables degrade to their fallbacks.
// Required fields are enforced only by the schema shown to callers.

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func numberArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func stringListArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

// bulletSection renders a heading plus one "• item" line per entry,
// preserving input order. An empty list renders nothing at all, not an
// empty heading.
func bulletSection(heading string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// One record type per tool; constructed once at the dispatch boundary so
// generators work with structured values instead of raw maps.

type emotionalSupportArgs struct {
	Mood        string
	Situation   string
	SupportType string
}

func parseEmotionalSupportArgs(args map[string]interface{}) emotionalSupportArgs {
	return emotionalSupportArgs{
		Mood:        stringArg(args, "mood"),
		Situation:   stringArg(args, "situation"),
		SupportType: stringArg(args, "support_type"),
	}
}

type crisisArgs struct {
	CrisisLevel       string
	Thoughts          string
	ImmediateConcerns []string
}

func parseCrisisArgs(args map[string]interface{}) crisisArgs {
	return crisisArgs{
		CrisisLevel:       stringArg(args, "crisis_level"),
		Thoughts:          stringArg(args, "thoughts"),
		ImmediateConcerns: stringListArg(args, "immediate_concerns"),
	}
}

type checkInArgs struct {
	EnergyLevel      float64
	MoodRating       float64
	StressLevel      float64
	SleepQuality     string
	RecentChallenges []string
}

func parseCheckInArgs(args map[string]interface{}) checkInArgs {
	return checkInArgs{
		EnergyLevel:      numberArg(args, "energy_level"),
		MoodRating:       numberArg(args, "mood_rating"),
		StressLevel:      numberArg(args, "stress_level"),
		SleepQuality:     stringArg(args, "sleep_quality"),
		RecentChallenges: stringListArg(args, "recent_challenges"),
	}
}

type copingArgs struct {
	ChallengeType     string
	PreferredApproach string
	Urgency           string
}

func parseCopingArgs(args map[string]interface{}) copingArgs {
	return copingArgs{
		ChallengeType:     stringArg(args, "challenge_type"),
		PreferredApproach: stringArg(args, "preferred_approach"),
		Urgency:           stringArg(args, "urgency"),
	}
}

type affirmationArgs struct {
	FocusArea        string
	Tone             string
	SpecificConcerns []string
}

func parseAffirmationArgs(args map[string]interface{}) affirmationArgs {
	return affirmationArgs{
		FocusArea:        stringArg(args, "focus_area"),
		Tone:             stringArg(args, "tone"),
		SpecificConcerns: stringListArg(args, "specific_concerns"),
	}
}

type peerArgs struct {
	ChallengeCategory string
	ConnectionType    string
}

func parsePeerArgs(args map[string]interface{}) peerArgs {
	return peerArgs{
		ChallengeCategory: stringArg(args, "challenge_category"),
		ConnectionType:    stringArg(args, "connection_type"),
	}
}
