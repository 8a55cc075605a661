package support

import (
	"fmt"
	"strings"
)

// renderEmotionalSupport builds the response for request_emotional_support.
func renderEmotionalSupport(args emotionalSupportArgs) string {
	var b strings.Builder

	b.WriteString("💙 Emotional Support\n\n")
	b.WriteString(lookupOr(empathyByMood, args.Mood, fallbackEmpathy))
	b.WriteString("\n\n")

	if args.Situation != "" {
		fmt.Fprintf(&b, "What you shared: \"%s\"\n\n", args.Situation)
	}

	b.WriteString(lookupOr(supportResponses, args.SupportType, supportResponses[defaultSupportType]))
	b.WriteString("\n\n")
	b.WriteString("Remember: reaching out when something weighs on you is a strength, not a weakness. I'm here whenever you want to talk again.")

	return b.String()
}
