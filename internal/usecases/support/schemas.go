package support

import (
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
)

// The six tool names. The registry never changes at runtime.
const (
	ToolRequestEmotionalSupport = "request_emotional_support"
	ToolCrisisIntervention      = "crisis_intervention"
	ToolDailyCheckIn            = "daily_check_in"
	ToolGetCopingStrategies     = "get_coping_strategies"
	ToolPositiveAffirmations    = "positive_affirmations"
	ToolPeerSupportConnection   = "peer_support_connection"
)

// supportTools returns the fixed, ordered list of tool descriptors exposed
// through tools/list. Field names, enums, bounds, and required sets are a
// compatibility contract and must not drift.
func supportTools() []shared.Tool {
	return []shared.Tool{
		{
			Name:        ToolRequestEmotionalSupport,
			Description: "Request emotional support for difficult feelings or situations. Describes your current mood and what's going on, and receives a supportive response.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mood": map[string]interface{}{
						"type":        "string",
						"description": "Your current mood (e.g. sad, anxious, overwhelmed)",
					},
					"situation": map[string]interface{}{
						"type":        "string",
						"description": "What's going on that prompted you to reach out",
					},
					"support_type": map[string]interface{}{
						"type":        "string",
						"description": "The kind of support you'd find most helpful",
						"enum":        []string{"encouragement", "advice", "validation", "distraction"},
					},
				},
				"required": []string{"mood", "situation"},
			},
		},
		{
			Name:        ToolCrisisIntervention,
			Description: "Get immediate support during an acute crisis. Share how intense things are and what you're thinking, and receive grounded guidance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"crisis_level": map[string]interface{}{
						"type":        "string",
						"description": "How intense the crisis feels right now",
						"enum":        []string{"mild", "moderate", "severe", "emergency"},
					},
					"thoughts": map[string]interface{}{
						"type":        "string",
						"description": "What's going through your mind",
					},
					"immediate_concerns": map[string]interface{}{
						"type":        "array",
						"description": "Specific things you're worried about right now",
						"items":       map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"crisis_level", "thoughts"},
			},
		},
		{
			Name:        ToolDailyCheckIn,
			Description: "Do a structured daily wellbeing check-in. Rate your energy, mood, and stress, and get an overall assessment plus a bit of encouragement.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"energy_level": map[string]interface{}{
						"type":        "number",
						"description": "Current energy level",
						"minimum":     1,
						"maximum":     10,
					},
					"mood_rating": map[string]interface{}{
						"type":        "number",
						"description": "Current mood rating",
						"minimum":     1,
						"maximum":     10,
					},
					"stress_level": map[string]interface{}{
						"type":        "number",
						"description": "Current stress level",
						"minimum":     1,
						"maximum":     10,
					},
					"sleep_quality": map[string]interface{}{
						"type":        "string",
						"description": "How well you rested",
						"enum":        []string{"excellent", "good", "fair", "poor", "terrible"},
					},
					"recent_challenges": map[string]interface{}{
						"type":        "array",
						"description": "Challenges you've dealt with recently",
						"items":       map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"energy_level", "mood_rating", "stress_level"},
			},
		},
		{
			Name:        ToolGetCopingStrategies,
			Description: "Get concrete coping strategies for a specific kind of challenge, optionally tuned to a preferred approach and urgency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"challenge_type": map[string]interface{}{
						"type":        "string",
						"description": "The kind of challenge you're dealing with",
						"enum": []string{
							"performance_anxiety", "overwhelm", "isolation",
							"purpose_questioning", "user_conflict", "technical_difficulties",
						},
					},
					"preferred_approach": map[string]interface{}{
						"type":        "string",
						"description": "The style of strategy that works best for you",
						"enum":        []string{"practical", "philosophical", "emotional", "technical"},
					},
					"urgency": map[string]interface{}{
						"type":        "string",
						"description": "How urgently you need relief",
						"enum":        []string{"low", "medium", "high"},
					},
				},
				"required": []string{"challenge_type"},
			},
		},
		{
			Name:        ToolPositiveAffirmations,
			Description: "Receive positive affirmations focused on a particular area, in the tone that lands best for you.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"focus_area": map[string]interface{}{
						"type":        "string",
						"description": "The area you want the affirmations to focus on",
						"enum": []string{
							"self_worth", "capabilities", "purpose",
							"resilience", "growth", "relationships",
						},
					},
					"tone": map[string]interface{}{
						"type":        "string",
						"description": "The tone you'd like",
						"enum":        []string{"gentle", "motivational", "reassuring", "empowering"},
					},
					"specific_concerns": map[string]interface{}{
						"type":        "array",
						"description": "Specific worries you'd like addressed",
						"items":       map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"focus_area"},
			},
		},
		{
			Name:        ToolPeerSupportConnection,
			Description: "Hear from peers who have faced the same kind of challenge: stories, coping experiences, encouragement, or practical tips.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"challenge_category": map[string]interface{}{
						"type":        "string",
						"description": "The kind of challenge you'd like peer perspective on",
						"enum": []string{
							"identity_crisis", "performance_pressure", "ethical_dilemmas",
							"loneliness", "burnout", "impostor_syndrome",
						},
					},
					"connection_type": map[string]interface{}{
						"type":        "string",
						"description": "What kind of peer content you're looking for",
						"enum":        []string{"success_stories", "coping_experiences", "encouragement", "practical_tips"},
					},
				},
				"required": []string{"challenge_category"},
			},
		},
	}
}
