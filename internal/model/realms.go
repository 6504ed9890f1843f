package model

// Realms is the fixed 12-realm question bank for the relational-self
// assessment. Realm and question order defines the wizard's step sequence.
var Realms = []Realm{
	{
		ID:          1,
		Name:        "Realm of Archetypes",
		Emoji:       "🪞",
		Theme:       "Your unconscious love persona",
		Description: "Jungian Shadow & Persona",
		Color:       "#ff00ff",
		Questions: []RealmQuestion{
			{
				ID:   "archetypes_1",
				Text: "In love, you often feel like:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "protector", Label: "🦁 The Protector", Emoji: "🦁"},
					{Value: "free_spirit", Label: "🦋 The Free Spirit", Emoji: "🦋"},
					{Value: "warrior", Label: "⚔️ The Warrior", Emoji: "⚔️"},
					{Value: "healer", Label: "🕊 The Healer", Emoji: "🕊"},
					{Value: "mystic", Label: "🔮 The Mystic", Emoji: "🔮"},
					{Value: "rebel", Label: "🐍 The Rebel", Emoji: "🐍"},
				},
			},
			{
				ID:   "archetypes_2",
				Text: "Your shadow fear in love:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "losing_control", Label: "Losing control"},
					{Value: "being_invisible", Label: "Being invisible"},
					{Value: "being_trapped", Label: "Being trapped"},
					{Value: "being_abandoned", Label: "Being abandoned"},
					{Value: "being_wrong", Label: "Being wrong"},
					{Value: "being_too_much", Label: "Being too much"},
				},
			},
			{
				ID:   "archetypes_3",
				Text: "Which image feels like your dynamic with a partner?",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "entwined_vines", Label: "Two entwined vines", Emoji: "🌿"},
					{Value: "dancing_flames", Label: "Two flames dancing apart", Emoji: "🔥"},
					{Value: "tree_and_bird", Label: "A tree and a bird", Emoji: "🌳"},
					{Value: "facing_mirrors", Label: "Two mirrors facing each other", Emoji: "🪞"},
				},
			},
		},
	},
	{
		ID:          2,
		Name:        "Realm of Attachment",
		Emoji:       "💗",
		Theme:       "How you seek safety and closeness",
		Description: "Attachment patterns and security needs",
		Color:       "#ff1493",
		Questions: []RealmQuestion{
			{
				ID:   "attachment_1",
				Text: "When your partner withdraws, your first impulse:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "pursue", Label: "Pursue them"},
					{Value: "withdraw", Label: "Withdraw too"},
					{Value: "freeze", Label: "Freeze or go numb"},
					{Value: "reflect", Label: "Reflect and wait"},
				},
			},
			{
				ID:   "attachment_2",
				Text: "When conflict arises, what feels worst?",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "disconnection", Label: "Disconnection"},
					{Value: "criticism", Label: "Criticism"},
					{Value: "pressure", Label: "Pressure"},
					{Value: "silence", Label: "Silence"},
				},
			},
			{
				ID:   "attachment_3",
				Text: "Pick the image that feels most like home:",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "cozy_cabin", Label: "Cozy cabin", Emoji: "🏡"},
					{Value: "open_meadow", Label: "Open meadow", Emoji: "🌾"},
					{Value: "locked_fortress", Label: "Locked fortress", Emoji: "🏰"},
					{Value: "floating_island", Label: "Floating island", Emoji: "🏝️"},
				},
			},
		},
	},
	{
		ID:          3,
		Name:        "Realm of Communication",
		Emoji:       "💬",
		Theme:       "How you express needs and handle conflict",
		Description: "Gottman-style communication patterns",
		Color:       "#00ffff",
		Questions: []RealmQuestion{
			{
				ID:   "communication_1",
				Text: "When stressed, you tend to:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "criticize", Label: "Criticize"},
					{Value: "defend", Label: "Defend"},
					{Value: "shut_down", Label: "Shut down"},
					{Value: "appease", Label: "Appease"},
					{Value: "listen_reflect", Label: "Listen & reflect"},
				},
			},
			{
				ID:   "communication_2",
				Text: "During arguments, what's your tone?",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "passionate_intense", Label: "Passionate & intense"},
					{Value: "calm_detached", Label: "Calm but detached"},
					{Value: "warm_anxious", Label: "Warm but anxious"},
					{Value: "silent_resentful", Label: "Silent & resentful"},
				},
			},
			{
				ID:   "communication_3",
				Text: "Which image feels like your typical fight?",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "storm_lightning", Label: "Storm & lightning", Emoji: "⛈️"},
					{Value: "ice_wall", Label: "Ice wall", Emoji: "🧊"},
					{Value: "candles_wind", Label: "Two candles in wind", Emoji: "🕯️"},
					{Value: "river_flow", Label: "River finding flow", Emoji: "🌊"},
				},
			},
		},
	},
	{
		ID:          4,
		Name:        "Realm of Emotions",
		Emoji:       "🔥",
		Theme:       "Emotional literacy and regulation",
		Description: "How you process and express feelings",
		Color:       "#ff6600",
		Questions: []RealmQuestion{
			{
				ID:   "emotions_1",
				Text: "How do you handle intense emotions?",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "feel_fully", Label: "Feel them fully"},
					{Value: "rationalize", Label: "Rationalize them"},
					{Value: "suppress", Label: "Suppress them"},
					{Value: "express_art", Label: "Express through art/action"},
				},
			},
			{
				ID:   "emotions_2",
				Text: "Which emotion dominates your relationships?",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "longing", Label: "Longing"},
					{Value: "anger", Label: "Anger"},
					{Value: "fear", Label: "Fear"},
					{Value: "joy", Label: "Joy"},
					{Value: "guilt", Label: "Guilt"},
				},
			},
			{
				ID:   "emotions_3",
				Text: "Choose an image that feels like your heart:",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "ocean_wave", Label: "Ocean wave", Emoji: "🌊"},
					{Value: "burning_sun", Label: "Burning sun", Emoji: "☀️"},
					{Value: "mirror_lake", Label: "Mirror lake", Emoji: "🏞️"},
					{Value: "locked_chest", Label: "Locked chest", Emoji: "🔒"},
				},
			},
		},
	},
	{
		ID:          5,
		Name:        "Realm of Beliefs",
		Emoji:       "🧠",
		Theme:       "Core relationship scripts",
		Description: "Your unconscious beliefs about love",
		Color:       "#9d00ff",
		Questions: []RealmQuestion{
			{
				ID:   "beliefs_1",
				Text: "Love means...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "safety", Label: "Safety"},
					{Value: "freedom", Label: "Freedom"},
					{Value: "growth", Label: "Growth"},
					{Value: "duty", Label: "Duty"},
					{Value: "passion", Label: "Passion"},
				},
			},
			{
				ID:   "beliefs_2",
				Text: "The more I love someone...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "lose_myself", Label: "...the more I lose myself."},
					{Value: "become_stronger", Label: "...the stronger I become."},
					{Value: "they_leave", Label: "...the more they'll leave."},
					{Value: "grow_together", Label: "...the more we'll grow together."},
				},
			},
			{
				ID:   "beliefs_3",
				Text: "Conflict means...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "danger", Label: "Danger"},
					{Value: "discovery", Label: "Discovery"},
					{Value: "distance", Label: "Distance"},
					{Value: "passion", Label: "Passion"},
				},
			},
		},
	},
	{
		ID:          6,
		Name:        "Realm of Values",
		Emoji:       "💎",
		Theme:       "What you protect and prioritize",
		Description: "Your core relational values",
		Color:       "#00ff80",
		Questions: []RealmQuestion{
			{
				ID:   "values_1",
				Text: "Rank these from most to least important in love:",
				Kind: QuestionRanking,
				Options: []QuestionOption{
					{Value: "freedom", Label: "Freedom"},
					{Value: "loyalty", Label: "Loyalty"},
					{Value: "growth", Label: "Growth"},
					{Value: "peace", Label: "Peace"},
					{Value: "adventure", Label: "Adventure"},
					{Value: "stability", Label: "Stability"},
				},
			},
			{
				ID:   "values_2",
				Text: "If forced to choose:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "truth_over_harmony", Label: "Truth over harmony"},
					{Value: "harmony_over_truth", Label: "Harmony over truth"},
				},
			},
		},
	},
	{
		ID:          7,
		Name:        "Realm of Identity",
		Emoji:       "🧩",
		Theme:       "Who you think you must be to be loved",
		Description: "Your relational identity patterns",
		Color:       "#ff00ff",
		Questions: []RealmQuestion{
			{
				ID:   "identity_1",
				Text: "To be loved, I must be...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "strong", Label: "Strong"},
					{Value: "needed", Label: "Needed"},
					{Value: "perfect", Label: "Perfect"},
					{Value: "peaceful", Label: "Peaceful"},
					{Value: "inspiring", Label: "Inspiring"},
					{Value: "easygoing", Label: "Easygoing"},
				},
			},
			{
				ID:   "identity_2",
				Text: "When I feel unseen, I...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "try_harder", Label: "Try harder"},
					{Value: "withdraw", Label: "Withdraw"},
					{Value: "get_angry", Label: "Get angry"},
					{Value: "go_quiet", Label: "Go quiet"},
					{Value: "create_drama", Label: "Create drama"},
				},
			},
		},
	},
	{
		ID:          8,
		Name:        "Realm of Purpose",
		Emoji:       "💫",
		Theme:       "Direction and growth in love",
		Description: "Love's role in your life journey",
		Color:       "#00ffff",
		Questions: []RealmQuestion{
			{
				ID:   "purpose_1",
				Text: "Love's role in my life is to...",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "ground_me", Label: "Ground me"},
					{Value: "awaken_me", Label: "Awaken me"},
					{Value: "heal_me", Label: "Heal me"},
					{Value: "challenge_me", Label: "Challenge me"},
					{Value: "inspire_me", Label: "Inspire me"},
				},
			},
			{
				ID:   "purpose_2",
				Text: "Pick your path image:",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "lighthouse", Label: "Lighthouse", Emoji: "🗼"},
					{Value: "campfire", Label: "Campfire", Emoji: "🔥"},
					{Value: "bridge", Label: "Bridge", Emoji: "🌉"},
					{Value: "forest_trail", Label: "Forest trail", Emoji: "🌲"},
					{Value: "sunrise", Label: "Sunrise", Emoji: "🌅"},
				},
			},
		},
	},
	{
		ID:          9,
		Name:        "Realm of Love Language",
		Emoji:       "💞",
		Theme:       "How you express and receive love",
		Description: "Your primary love languages",
		Color:       "#ff1493",
		Questions: []RealmQuestion{
			{
				ID:   "love_language_1",
				Text: "You feel most loved when your partner:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "touches_you", Label: "Touches you"},
					{Value: "listens_deeply", Label: "Listens deeply"},
					{Value: "helps_you", Label: "Helps you"},
					{Value: "gives_thoughtful", Label: "Gives you something thoughtful"},
					{Value: "spends_time", Label: "Spends time with you"},
				},
			},
			{
				ID:   "love_language_2",
				Text: "You show love mostly by:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "doing_things", Label: "Doing things for them"},
					{Value: "affirmations", Label: "Saying affirmations"},
					{Value: "planning_experiences", Label: "Planning experiences"},
					{Value: "giving_affection", Label: "Giving affection"},
				},
			},
		},
	},
	{
		ID:          10,
		Name:        "Realm of Needs",
		Emoji:       "🧍",
		Theme:       "Fundamental emotional & relational needs",
		Description: "Your core relationship needs",
		Color:       "#00ff80",
		Questions: []RealmQuestion{
			{ID: "needs_independence", Text: "Need for independence", Kind: QuestionSlider, Min: 1, Max: 10},
			{ID: "needs_closeness", Text: "Need for closeness", Kind: QuestionSlider, Min: 1, Max: 10},
			{ID: "needs_recognition", Text: "Need for recognition", Kind: QuestionSlider, Min: 1, Max: 10},
			{ID: "needs_excitement", Text: "Need for excitement", Kind: QuestionSlider, Min: 1, Max: 10},
			{ID: "needs_peace", Text: "Need for peace", Kind: QuestionSlider, Min: 1, Max: 10},
		},
	},
	{
		ID:          11,
		Name:        "Realm of Intelligences",
		Emoji:       "🪶",
		Theme:       "Dominant intelligence type in love",
		Description: "How you process and express love",
		Color:       "#9d00ff",
		Questions: []RealmQuestion{
			{
				ID:   "intelligences_1",
				Text: "Pick what resonates most with how you love:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "verbal", Label: "Verbal (words, conversation)"},
					{Value: "emotional", Label: "Emotional (feelings, empathy)"},
					{Value: "bodily", Label: "Bodily (touch, physical)"},
					{Value: "musical", Label: "Musical (rhythm, harmony)"},
					{Value: "visual", Label: "Visual (beauty, aesthetics)"},
					{Value: "logical", Label: "Logical (analysis, understanding)"},
					{Value: "spiritual", Label: "Spiritual (transcendence, meaning)"},
				},
			},
		},
	},
	{
		ID:          12,
		Name:        "Realm of the Wounded Parts",
		Emoji:       "🌙",
		Theme:       "Healing the inner child & shadow",
		Description: "Your childhood wounds and healing journey",
		Color:       "#ff00ff",
		Questions: []RealmQuestion{
			{
				ID:   "wounded_1",
				Text: "When a partner pulls away, the child inside you feels:",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "scared", Label: "Scared"},
					{Value: "angry", Label: "Angry"},
					{Value: "empty", Label: "Empty"},
					{Value: "unworthy", Label: "Unworthy"},
					{Value: "calm", Label: "Calm"},
				},
			},
			{
				ID:   "wounded_2",
				Text: "What hurt you most in childhood?",
				Kind: QuestionChoice,
				Options: []QuestionOption{
					{Value: "rejection", Label: "Rejection"},
					{Value: "chaos", Label: "Chaos"},
					{Value: "control", Label: "Control"},
					{Value: "neglect", Label: "Neglect"},
					{Value: "invisibility", Label: "Invisibility"},
				},
			},
			{
				ID:   "wounded_3",
				Text: "Choose an image that feels like your childhood home:",
				Kind: QuestionVisual,
				Options: []QuestionOption{
					{Value: "warm_hearth", Label: "Warm hearth", Emoji: "🏠"},
					{Value: "broken_window", Label: "Broken window", Emoji: "🪟"},
					{Value: "empty_room", Label: "Empty room", Emoji: "🚪"},
					{Value: "garden_wall", Label: "Garden with high walls", Emoji: "🏡"},
				},
			},
		},
	},
}
