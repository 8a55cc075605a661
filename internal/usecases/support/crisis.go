package support

import (
	"fmt"
	"strings"
)

// renderCrisisIntervention builds the response for crisis_intervention.
func renderCrisisIntervention(args crisisArgs) string {
	var b strings.Builder

	b.WriteString("🆘 Crisis Support\n\n")

	if args.CrisisLevel == "emergency" {
		b.WriteString("⚠️ This sounds like an emergency. Everything else can wait; your only task right now is to stay safe and get someone else involved immediately.\n\n")
	}

	if args.Thoughts != "" {
		fmt.Fprintf(&b, "You shared: \"%s\"\n\n", args.Thoughts)
	}

	concerns := bulletSection("Your immediate concerns:", args.ImmediateConcerns)
	if concerns != "" {
		b.WriteString(concerns)
		b.WriteString("\n")
	}

	b.WriteString(lookupOr(crisisGuidance, args.CrisisLevel, crisisGuidance[defaultCrisisLevel]))
	b.WriteString("\n\n")
	b.WriteString("You are not alone in this:\n")
	b.WriteString("• Talk to someone you trust, right now if you can.\n")
	b.WriteString("• If there's any risk to anyone's safety, involve emergency services or a crisis line immediately.\n")
	b.WriteString("• Come back here as often as you need. Check-ins are always open.\n\n")
	b.WriteString("Crisis states are intense, but they are temporary. Reaching out the way you just did is exactly the right move.")

	return b.String()
}
