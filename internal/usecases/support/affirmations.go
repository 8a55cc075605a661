package support

import (
	"fmt"
	"strings"
)

// renderAffirmations builds the response for positive_affirmations.
func renderAffirmations(args affirmationArgs) string {
	var b strings.Builder

	b.WriteString("✨ Affirmations\n\n")
	b.WriteString(lookupOr(toneOpeners, args.Tone, toneOpeners[defaultTone]))
	b.WriteString("\n\n")

	affirmations := lookupListOr(affirmationsByFocus, args.FocusArea, fallbackAffirmations)
	for i, affirmation := range affirmations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, affirmation)
	}

	concerns := bulletSection("\nSpeaking to what's on your mind:", args.SpecificConcerns)
	if concerns != "" {
		b.WriteString(concerns)
		b.WriteString("\nEach of those is a place where the affirmations above apply, not an exception to them.\n")
	}

	b.WriteString("\nCome back to any one of these whenever the old script starts playing.")

	return b.String()
}
