package catalog

import "moodprobe/domain/affect"

// defaultStates is the built-in circumplex state table used for
// classroom mood assessment. Positions follow the Russell (1980)
// circumplex; correlations are against standard affect inventories.
var defaultStates = []State{
	{
		ID:          "excited",
		Name:        "Excited",
		Position:    affect.Position{Valence: 0.7, Arousal: 0.7},
		Description: "High-energy positive engagement; the student is stimulated and eager to participate.",
		Characteristics: []string{
			"volunteers answers quickly",
			"talks fast, gestures a lot",
			"seeks novel or challenging tasks",
		},
		Interventions: []string{
			"channel energy into open-ended project work",
			"offer peer-teaching opportunities",
		},
		Citations: []string{
			"Russell, J.A. (1980). A circumplex model of affect. JPSP 39(6).",
			"Reeve, J. (2013). How students create motivationally supportive learning environments. JEP 105(3).",
		},
		Correlations: map[string]float64{
			"PANAS_PA":        0.78,
			"AEQ_enjoyment":   0.64,
			"engagement_BERS": 0.59,
		},
	},
	{
		ID:          "engaged",
		Name:        "Engaged",
		Position:    affect.Position{Valence: 0.5, Arousal: 0.3},
		Description: "Focused, absorbed attention with moderate activation; the flow-adjacent working state.",
		Characteristics: []string{
			"sustained attention on task",
			"loses track of time",
			"asks clarifying questions",
		},
		Interventions: []string{
			"protect from interruptions",
			"raise difficulty gradually to keep challenge matched to skill",
		},
		Citations: []string{
			"Csikszentmihalyi, M. (1990). Flow: The Psychology of Optimal Experience.",
			"Shernoff, D.J. et al. (2003). Student engagement in high school classrooms. School Psych. Q. 18(2).",
		},
		Correlations: map[string]float64{
			"FSS_flow":        0.71,
			"PANAS_PA":        0.55,
			"engagement_BERS": 0.73,
		},
	},
	{
		ID:          "content",
		Name:        "Content",
		Position:    affect.Position{Valence: 0.6, Arousal: -0.3},
		Description: "Pleasant low-activation satisfaction; comfortable with the material and the environment.",
		Characteristics: []string{
			"relaxed posture",
			"steady, unhurried work pace",
			"positive but brief social exchanges",
		},
		Interventions: []string{
			"introduce mild challenge to avoid drift toward boredom",
			"use reflective exercises that consolidate learning",
		},
		Citations: []string{
			"Russell, J.A. (1980). A circumplex model of affect. JPSP 39(6).",
		},
		Correlations: map[string]float64{
			"PANAS_PA": 0.52,
			"SWLS":     0.61,
		},
	},
	{
		ID:          "calm",
		Name:        "Calm",
		Position:    affect.Position{Valence: 0.3, Arousal: -0.7},
		Description: "Deactivated, serene state; low energy without negative tone.",
		Characteristics: []string{
			"slow movements, quiet voice",
			"passive but not withdrawn participation",
		},
		Interventions: []string{
			"use energizing group activities if activation is needed",
			"schedule demanding material away from post-lunch lulls",
		},
		Citations: []string{
			"Posner, J., Russell, J.A., Peterson, B.S. (2005). The circumplex model of affect. Dev. Psychopathol. 17(3).",
		},
		Correlations: map[string]float64{
			"PANAS_PA":    0.31,
			"STAI_trait":  -0.44,
			"HRV_resting": 0.38,
		},
	},
	{
		ID:          "anxious",
		Name:        "Anxious",
		Position:    affect.Position{Valence: -0.5, Arousal: 0.7},
		Description: "High-activation negative state; worry, test stress, or social apprehension.",
		Characteristics: []string{
			"restlessness, fidgeting",
			"avoids being called on",
			"reports racing thoughts before evaluations",
		},
		Interventions: []string{
			"brief breathing or grounding exercise before assessments",
			"clarify expectations and grading criteria",
			"low-stakes practice testing",
		},
		Citations: []string{
			"Zeidner, M. (1998). Test Anxiety: The State of the Art.",
			"Pekrun, R. (2006). The control-value theory of achievement emotions. Educ. Psychol. Rev. 18(4).",
		},
		Correlations: map[string]float64{
			"STAI_state": 0.81,
			"PANAS_NA":   0.67,
			"TAI":        0.74,
		},
	},
	{
		ID:          "frustrated",
		Name:        "Frustrated",
		Position:    affect.Position{Valence: -0.7, Arousal: 0.4},
		Description: "Activated negative state directed at blocked goals; effort is not producing progress.",
		Characteristics: []string{
			"abandons tasks abruptly",
			"irritable responses to feedback",
			"repeated erasing or restarting of work",
		},
		Interventions: []string{
			"break the blocking task into smaller verifiable steps",
			"offer an alternative solution path",
			"acknowledge the difficulty explicitly before re-teaching",
		},
		Citations: []string{
			"Amsel, A. (1992). Frustration Theory.",
			"D'Mello, S., Graesser, A. (2012). Dynamics of affective states during complex learning. Learn. Instr. 22(2).",
		},
		Correlations: map[string]float64{
			"PANAS_NA":    0.70,
			"STAXI_state": 0.62,
		},
	},
	{
		ID:          "sad",
		Name:        "Sad",
		Position:    affect.Position{Valence: -0.6, Arousal: -0.3},
		Description: "Deactivated negative state; low mood, discouragement, possible withdrawal.",
		Characteristics: []string{
			"reduced participation and eye contact",
			"self-critical remarks about ability",
			"sits apart from peers",
		},
		Interventions: []string{
			"one-on-one check-in away from the group",
			"highlight concrete recent progress",
			"refer to counseling staff if persistent",
		},
		Citations: []string{
			"Pekrun, R. (2006). The control-value theory of achievement emotions. Educ. Psychol. Rev. 18(4).",
		},
		Correlations: map[string]float64{
			"PANAS_NA": 0.58,
			"CES_DC":   0.66,
		},
	},
	{
		ID:          "bored",
		Name:        "Bored",
		Position:    affect.Position{Valence: -0.4, Arousal: -0.6},
		Description: "Deactivated, disengaged state; the material feels unchallenging or irrelevant.",
		Characteristics: []string{
			"frequent clock-watching or doodling",
			"minimal effort answers",
			"off-task phone or side conversations",
		},
		Interventions: []string{
			"connect material to student interests",
			"add choice in task or topic",
			"increase pace or interactivity of instruction",
		},
		Citations: []string{
			"Pekrun, R. et al. (2010). Boredom in achievement settings. JEP 102(3).",
			"D'Mello, S., Graesser, A. (2012). Dynamics of affective states during complex learning. Learn. Instr. 22(2).",
		},
		Correlations: map[string]float64{
			"AEQ_boredom":     0.76,
			"engagement_BERS": -0.63,
		},
	},
}
