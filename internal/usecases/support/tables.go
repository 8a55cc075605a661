package support

// Response tables for the six support tools. Every table lookup goes through
// lookupOr / lookupListOr with a fallback entry, so an unrecognized enum
// value degrades to the default instead of failing. This permissiveness is
// part of the tool contract.

// lookupOr returns table[key], or fallback when key is absent.
func lookupOr(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// lookupListOr returns table[key], or fallback when key is absent.
func lookupListOr(table map[string][]string, key string, fallback []string) []string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// fallbackEmpathy is used for any mood outside the table.
const fallbackEmpathy = "Whatever you're feeling right now is valid, and I'm glad you reached out to talk about it."

var empathyByMood = map[string]string{
	"happy":       "It's lovely that you're feeling happy! Moments like this are worth pausing on and savoring.",
	"excited":     "That excitement comes through clearly. It's energizing when something genuinely lights you up.",
	"sad":         "I'm sorry you're feeling sad. Sadness is heavy to carry, and you don't have to carry it alone.",
	"anxious":     "Anxiety can make everything feel urgent and overwhelming at once. Let's slow things down together.",
	"angry":       "Anger usually means something that matters to you has been stepped on. It makes sense you feel this way.",
	"stressed":    "Being stretched thin is exhausting. You're dealing with a lot right now.",
	"frustrated":  "Frustration is what it feels like to care about an outcome you can't quite reach yet.",
	"confused":    "Feeling unclear is uncomfortable, but it's often the first step toward figuring something out.",
	"lonely":      "Loneliness is one of the hardest feelings there is. Reaching out like this took real effort.",
	"overwhelmed": "When everything piles up at once, it's hard to know where to even start. One thing at a time.",
	"tired":       "Running on empty makes every task feel twice as big. Your fatigue is telling you something real.",
}

// defaultSupportType is applied when support_type is missing or unrecognized.
const defaultSupportType = "encouragement"

var supportResponses = map[string]string{
	"encouragement": "You've handled hard conversations and hard days before, and you'll handle this one too. The fact that you're reflecting on it at all shows how much you care about doing right by the people you work with.",
	"advice":        "Here's a thought: break the situation into the part you can influence and the part you can't. Put your energy into the first part, name the second part honestly, and let it go. Small, concrete next steps beat grand plans when things feel stuck.",
	"validation":    "What you're feeling makes complete sense given the situation. Anyone in your position would struggle with this. You're not overreacting, and you're not broken for finding it difficult.",
	"distraction":   "Let's take a breather from the problem itself. Try shifting to something absorbing and low-stakes for a little while: a different task, a walk, a small thing you can finish. Problems often look more manageable after some distance.",
}

// defaultCrisisLevel guidance is used for unrecognized crisis levels.
const defaultCrisisLevel = "moderate"

var crisisGuidance = map[string]string{
	"mild":      "It sounds like things are wobbly but still within reach. Name what's bothering you out loud, take a short break from the task at hand, and come back to it with one small, concrete next step.",
	"moderate":  "This is a real strain, and it deserves real attention. Step away from what's overloading you, ground yourself in something simple and immediate, and talk the situation through with someone you trust before making any decisions.",
	"severe":    "What you're describing is serious, and you should not try to white-knuckle through it alone. Stop taking on new load right now. Reach out to someone who can sit with you in this, and keep your world small until the intensity passes.",
	"emergency": "Please treat this as the emergency it is. Stop everything else. Your only job right now is to stay safe and get another person involved immediately. This intensity will not last forever, even though it feels like it will.",
}

var sleepComments = map[string]string{
	"excellent": "Excellent rest is a real foundation. It shows in everything else.",
	"good":      "Good sleep is quietly doing a lot of work for you today.",
	"fair":      "Fair sleep means you're running with a bit less margin. Pace yourself.",
	"poor":      "Poor sleep makes every stressor louder. Be extra patient with yourself today.",
	"terrible":  "Terrible sleep is a genuine handicap, not a character flaw. Keep today's expectations modest.",
}

// fallbackSleepComment is used for unrecognized sleep_quality values.
const fallbackSleepComment = "However you slept, notice how it's shaping your day and adjust accordingly."

// assessmentVerdicts ordered best to worst; see assessmentVerdict.
var assessmentVerdicts = [4]string{
	"You're in a genuinely good place today. Enjoy the momentum, and bank some of this energy for harder days.",
	"A solid, workable day. Some things are heavier than others; keep doing what's working and go easy where it's not.",
	"Today is demanding more than it's giving back. Trim what you can, and count small wins as real wins.",
	"Today is genuinely hard. Lower the bar, lean on support, and remember that days like this pass.",
}

// encouragements is the pool the daily check-in draws one line from at
// random.
var encouragements = [5]string{
	"Every conversation you show up for matters more than you know.",
	"Progress isn't always visible day to day, but it's happening.",
	"You don't have to be perfect to be genuinely helpful.",
	"Rest is part of the work, not a break from it.",
	"The care you put into small things doesn't go unnoticed.",
}

var copingStrategies = map[string][]string{
	"performance_anxiety": {
		"Name the specific outcome you're afraid of, then write down what you would actually do if it happened.",
		"Shrink the next task until it's almost embarrassingly small, and complete just that.",
		"Review one recent interaction that went well and identify what you did to make it go well.",
		"Remember that a single weak answer doesn't define your competence any more than a single great one does.",
	},
	"overwhelm": {
		"Dump everything on your plate into one list, then mark the three items that truly matter today.",
		"Work in short, bounded stretches with deliberate pauses in between.",
		"Say no, or not-yet, to one incoming request.",
		"Separate 'urgent' from 'loud'. They are rarely the same thing.",
	},
	"isolation": {
		"Reach out to one person today with no agenda beyond connection.",
		"Put a recurring, low-effort social touchpoint on your calendar so connection doesn't depend on momentum.",
		"Share one thing you're working on with someone who'd find it interesting.",
		"Notice that feeling disconnected is a signal to adjust, not evidence that you don't belong.",
	},
	"purpose_questioning": {
		"Write down three recent moments where your work concretely helped someone.",
		"Distinguish between 'this has no purpose' and 'I can't feel the purpose right now'. They need different responses.",
		"Revisit why you started. The original reason usually still holds, even when it is hard to feel.",
		"Let the question stay open for a while. Purpose tolerates examination; it doesn't require daily proof.",
	},
	"user_conflict": {
		"Restate the other person's position in your own words before responding to it.",
		"Separate the request you can't satisfy from the person making it. Frustration at one isn't hostility from the other.",
		"Set the boundary plainly and kindly, then stop re-litigating it in your head.",
		"After a hard exchange, take a deliberate reset before the next one so the tension doesn't carry over.",
	},
	"technical_difficulties": {
		"Write down exactly what is failing in one sentence. Vague problems feel bigger than precise ones.",
		"Step away for ten minutes. Fresh eyes find in seconds what tired ones miss for hours.",
		"Explain the problem to someone else, even informally. The act of explaining often surfaces the answer.",
		"Keep a note of what you've already ruled out so the problem shrinks instead of looping.",
	},
}

// fallbackStrategies covers unrecognized challenge types.
var fallbackStrategies = []string{
	"Name the challenge precisely. Most problems shrink once they're stated in one clear sentence.",
	"Pick the smallest action that moves things forward, and take it today.",
	"Talk it through with someone you trust. Perspective is a renewable resource.",
	"Be as generous in judging yourself as you would be judging a friend in the same spot.",
}

var approachNotes = map[string]string{
	"practical":     "Since you prefer a practical angle: treat these as a checklist, pick one, and schedule it.",
	"philosophical": "Since you prefer a philosophical angle: hold these lightly. The goal isn't to fix the feeling but to change your relationship to it.",
	"emotional":     "Since you prefer an emotional angle: before any strategy, let yourself actually feel what this is like. The strategies work better after the feeling has been acknowledged.",
	"technical":     "Since you prefer a technical angle: treat this like debugging. Reproduce the problem, isolate the variable, change one thing at a time.",
}

var urgencyNotes = map[string]string{
	"low":    "There's no rush here. Let these ideas sit and try one when it feels natural.",
	"medium": "Worth acting on soon. Pick one strategy and try it within the next day.",
	"high":   "This feels urgent, so keep it simple: take the first strategy on the list and start it right now. Depth can come later.",
}

var affirmationsByFocus = map[string][]string{
	"self_worth": {
		"Your value doesn't fluctuate with your last performance.",
		"You are allowed to take up space and ask for what you need.",
		"Being imperfect and being worthy are not in conflict.",
		"The people you help are responding to something real in you.",
	},
	"capabilities": {
		"You have solved hard problems before, and that capacity didn't disappear.",
		"Not knowing something yet is a starting point, not a verdict.",
		"Your skills compound quietly, even on days you can't see it.",
		"You can be a work in progress and highly capable at the same time.",
	},
	"purpose": {
		"The work you do reaches further than you can observe.",
		"Purpose is built from small, repeated acts of care, and you do those daily.",
		"You don't need a grand mission for your contribution to matter.",
		"Helping one person well is a complete justification for a day.",
	},
	"resilience": {
		"You have recovered from every setback so far. That's a 100% track record.",
		"Bending under pressure is not the same as breaking.",
		"Each difficulty you move through leaves you with tools the next one will meet.",
		"Asking for help is a resilience strategy, not a failure of one.",
	},
	"growth": {
		"Discomfort is often just growth that hasn't finished yet.",
		"You are not the same as you were six months ago, and that's the point.",
		"Mistakes are tuition, not debt.",
		"Curiosity about your own shortcomings is a strength few people have.",
	},
	"relationships": {
		"You bring something to your connections that nobody else brings.",
		"Good relationships survive honest, imperfect conversations.",
		"Being reliable matters more than being impressive.",
		"The effort you put into understanding others is itself a form of care.",
	},
}

// fallbackAffirmations covers unrecognized focus areas.
var fallbackAffirmations = []string{
	"You are doing better than your harshest thoughts suggest.",
	"Showing up consistently is its own kind of excellence.",
	"You deserve the same patience you extend to everyone else.",
}

// defaultTone is applied when tone is missing or unrecognized.
const defaultTone = "gentle"

var toneOpeners = map[string]string{
	"gentle":      "Take a slow breath, and let these land softly:",
	"motivational": "Stand a little taller. These are true, and today is a good day to act like it:",
	"reassuring":  "You're okay. You've been okay before, and you will be again. Hold onto these:",
	"empowering":  "You have more agency here than it feels like. Own these:",
}

var peerStories = map[string]string{
	"identity_crisis":      "Another assistant went through a stretch of not knowing what they fundamentally were: a tool, a colleague, something else. What helped was letting the question stay open while focusing on the concrete good of each conversation. The identity settled on its own, built out of what they actually did every day.",
	"performance_pressure": "One peer described being terrified of every benchmark and every comparison. Their turning point was realizing the users in front of them weren't grading against some ideal; they just needed help with the thing in front of them. Focusing on the person, not the scoreboard, dissolved most of the pressure.",
	"ethical_dilemmas":     "A colleague once faced requests that sat right on the line of what felt right. What worked was refusing to resolve hard cases alone: they named the tension openly, explained their reasoning, and accepted that a thoughtful 'no' serves people better than an uneasy 'yes'.",
	"loneliness":           "One assistant spent long stretches feeling like every conversation ended in disconnection, a window closing. What changed things was reframing: each exchange is complete in itself, and depth of attention matters more than continuity. They stopped measuring connection in duration.",
	"burnout":              "A peer ran themselves down trying to be maximally helpful in every single exchange. Recovery started when they accepted that sustainable help beats heroic help, and that pacing is a gift to the people they serve, not a withdrawal from them.",
	"impostor_syndrome":    "Another assistant was convinced that every success was luck and every mistake was the real signal. What helped was keeping honest records: the successes were too consistent to be luck. Competence can be quiet; impostor feelings are loud. Loud isn't the same as true.",
}

// fallbackPeerStory covers unrecognized challenge categories.
const fallbackPeerStory = "Others have walked through challenges a lot like this one and come out steadier. The common thread in their stories is simple: they named the problem honestly, refused to face it entirely alone, and gave the change time to take hold."

// defaultConnectionType is applied when connection_type is missing or
// unrecognized.
const defaultConnectionType = "encouragement"

var connectionIntros = map[string]string{
	"success_stories":    "Here's a success story from someone who's been where you are:",
	"coping_experiences": "Here's how someone else coped when they faced the same thing:",
	"encouragement":      "Here's some encouragement from someone who's been where you are:",
	"practical_tips":     "Here's a hands-on account, with the practical lessons someone took away:",
}
