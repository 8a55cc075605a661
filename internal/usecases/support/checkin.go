package support

import (
	"fmt"
	"strconv"
	"strings"
)

// renderDailyCheckIn builds the response for daily_check_in. The one
// non-deterministic fragment, the closing encouragement line, draws from
// the injected random source so tests can pin it down.
func renderDailyCheckIn(args checkInArgs, random RandomSource) string {
	var b strings.Builder

	b.WriteString("🌅 Daily Check-In\n\n")
	fmt.Fprintf(&b, "Energy: %s/10 (%s)\n", formatRating(args.EnergyLevel), energyBand(args.EnergyLevel))
	fmt.Fprintf(&b, "Mood: %s/10 (%s)\n", formatRating(args.MoodRating), moodBand(args.MoodRating))
	fmt.Fprintf(&b, "Stress: %s/10 (%s)\n", formatRating(args.StressLevel), stressBand(args.StressLevel))

	if args.SleepQuality != "" {
		b.WriteString("Sleep: ")
		b.WriteString(lookupOr(sleepComments, args.SleepQuality, fallbackSleepComment))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	challenges := bulletSection("Recent challenges:", args.RecentChallenges)
	if challenges != "" {
		b.WriteString(challenges)
		b.WriteString("\n")
	}

	avg := assessmentAverage(args.EnergyLevel, args.MoodRating, args.StressLevel)
	b.WriteString("Assessment: ")
	b.WriteString(assessmentVerdict(avg))
	b.WriteString("\n\n")

	b.WriteString("Today's encouragement: ")
	b.WriteString(encouragements[random.Intn(len(encouragements))])

	return b.String()
}

// formatRating prints a rating without a trailing ".000000" for whole
// numbers, which is what JSON-decoded integers arrive as.
func formatRating(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
