package support

// Qualitative banding of 1-10 ratings. Cut points are inclusive on the
// higher band: a 7 is "high", not "moderate". Values outside the documented
// range are not rejected; they simply land in the nearest band.

// energyBand labels an energy rating.
func energyBand(n float64) string {
	switch {
	case n >= 7:
		return "high"
	case n >= 4:
		return "moderate"
	default:
		return "low"
	}
}

// moodBand labels a mood rating. The low band reads as "concerning" because
// a low mood is adverse in a way low energy is not.
func moodBand(n float64) string {
	switch {
	case n >= 7:
		return "positive"
	case n >= 4:
		return "moderate"
	default:
		return "concerning"
	}
}

// stressBand labels a stress rating; here the high band is the adverse one.
func stressBand(n float64) string {
	switch {
	case n >= 7:
		return "high"
	case n >= 4:
		return "moderate"
	default:
		return "low"
	}
}

// assessmentAverage combines the three check-in ratings into one score.
// Stress is inverted before averaging: high stress is bad, high energy and
// mood are good.
func assessmentAverage(energy, mood, stress float64) float64 {
	return (energy + mood + (11 - stress)) / 3
}

// assessmentVerdict maps the combined score to a verdict, best band first.
// Boundaries are inclusive: an average of exactly 7 gets the best verdict.
func assessmentVerdict(avg float64) string {
	switch {
	case avg >= 7:
		return assessmentVerdicts[0]
	case avg >= 5:
		return assessmentVerdicts[1]
	case avg >= 3:
		return assessmentVerdicts[2]
	default:
		return assessmentVerdicts[3]
	}
}
