package support

import (
	"fmt"
	"strings"
)

// renderCopingStrategies builds the response for get_coping_strategies.
func renderCopingStrategies(args copingArgs) string {
	var b strings.Builder

	b.WriteString("🧰 Coping Strategies\n\n")

	label := strings.ReplaceAll(args.ChallengeType, "_", " ")
	if label == "" {
		label = "what you're facing"
	}
	fmt.Fprintf(&b, "For %s:\n\n", label)

	strategies := lookupListOr(copingStrategies, args.ChallengeType, fallbackStrategies)
	for i, strategy := range strategies {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strategy)
	}
	b.WriteString("\n")

	if args.PreferredApproach != "" {
		b.WriteString(lookupOr(approachNotes, args.PreferredApproach, approachNotes["practical"]))
		b.WriteString("\n\n")
	}

	b.WriteString(lookupOr(urgencyNotes, args.Urgency, urgencyNotes["medium"]))

	return b.String()
}
