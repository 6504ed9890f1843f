package model

// FightScenario is a conflict setup the user practices against.
type FightScenario struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PartnerMessage string `json:"partner_message"`
}

// FightScenarios are the built-in conflict scenarios.
var FightScenarios = []FightScenario{
	{
		ID:             1,
		Title:          "Household Chores Disagreement",
		Description:    "Your partner feels you're not doing your fair share of housework",
		PartnerMessage: "I feel like I'm always the one cleaning up. It would really help if you could be more proactive about the dishes and laundry.",
	},
	{
		ID:             2,
		Title:          "Quality Time Conflict",
		Description:    "Your partner wants more quality time together",
		PartnerMessage: "I miss spending time with you. It feels like you're always busy with work or your phone. Can we make more time for us?",
	},
	{
		ID:             3,
		Title:          "Financial Decision",
		Description:    "Disagreement about a major purchase",
		PartnerMessage: "I don't think we should spend that much money right now. We need to save for our future goals first.",
	},
}

// FightScenarioByID looks up a scenario; nil when the id is unknown.
func FightScenarioByID(id int) *FightScenario {
	for i := range FightScenarios {
		if FightScenarios[i].ID == id {
			return &FightScenarios[i]
		}
	}
	return nil
}

// QuickResponses are the canned response options offered each turn.
var QuickResponses = []ResponseChoice{
	{
		Text:         "You're right, I haven't been pulling my weight. Let's create a schedule together.",
		Kind:         ResponseValidating,
		HeatDelta:    -15,
		EmpathyDelta: 25,
		Feedback:     "Excellent! You acknowledged their feelings and offered a collaborative solution.",
	},
	{
		Text:         "I do plenty around here! You just don't notice everything I do.",
		Kind:         ResponseDefensive,
		HeatDelta:    20,
		EmpathyDelta: -10,
		Feedback:     "This defensive response escalates conflict. Try acknowledging their perspective first.",
	},
	{
		Text:         "I hear that you're feeling overwhelmed. Can you help me understand which tasks are most important to you?",
		Kind:         ResponseCurious,
		HeatDelta:    -10,
		EmpathyDelta: 20,
		Feedback:     "Great mirroring and curiosity! This opens dialogue and shows you care.",
	},
	{
		Text:         "Whatever, I'll just do everything myself then.",
		Kind:         ResponseDismissive,
		HeatDelta:    25,
		EmpathyDelta: -15,
		Feedback:     "This shuts down communication. Try expressing your feelings without withdrawing.",
	},
}

// CoachHints are shown on demand while the user composes a response.
var CoachHints = []string{
	`Try using "I feel..." instead of "You always..."`,
	`Mirror what you heard: "What I'm hearing is..."`,
	`Ask for clarification: "Can you help me understand..."`,
	`Validate their emotion: "I can see this is important to you"`,
	"Take a pause if heat is rising",
	"Express appreciation for bringing this up",
}
