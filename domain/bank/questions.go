package bank

import (
	"moodprobe/domain/affect"
	"moodprobe/domain/core"
)

// defaultQuestions is the built-in validated bank. Weights come from
// the item analysis of the original classroom instrument; impacts are
// target positions in valence/arousal space.
var defaultQuestions = []Question{
	{
		ID:   "q-energy-level",
		Text: "Right now, how would you describe your energy level?",
		Type: Physiological,
		DiscriminantStates: []core.StateID{"excited", "calm", "bored"},
		InformationWeight:  0.9,
		Options: []Option{
			{Value: 1, Label: "Completely drained", Impact: affect.Position{Valence: -0.3, Arousal: -0.8}},
			{Value: 2, Label: "Low, sluggish", Impact: affect.Position{Valence: -0.1, Arousal: -0.5}},
			{Value: 3, Label: "Steady, normal", Impact: affect.Position{Valence: 0.1, Arousal: 0.0}},
			{Value: 4, Label: "Energized", Impact: affect.Position{Valence: 0.3, Arousal: 0.5}},
			{Value: 5, Label: "Buzzing, can't sit still", Impact: affect.Position{Valence: 0.2, Arousal: 0.9}},
		},
	},
	{
		ID:   "q-class-mood",
		Text: "How did you feel during today's class overall?",
		Type: Behavioral,
		DiscriminantStates: []core.StateID{"content", "sad", "frustrated"},
		InformationWeight:  0.85,
		Options: []Option{
			{Value: 1, Label: "Bad, I wanted it to end", Impact: affect.Position{Valence: -0.7, Arousal: 0.1}},
			{Value: 2, Label: "Not great", Impact: affect.Position{Valence: -0.4, Arousal: 0.0}},
			{Value: 3, Label: "Neutral", Impact: affect.Position{Valence: 0.0, Arousal: 0.0}},
			{Value: 4, Label: "Good", Impact: affect.Position{Valence: 0.5, Arousal: 0.1}},
			{Value: 5, Label: "Great, I enjoyed it", Impact: affect.Position{Valence: 0.8, Arousal: 0.3}},
		},
	},
	{
		ID:   "q-racing-thoughts",
		Text: "Are your thoughts racing, or is your mind quiet?",
		Type: Cognitive,
		DiscriminantStates: []core.StateID{"anxious", "calm"},
		InformationWeight:  0.88,
		Options: []Option{
			{Value: 1, Label: "Very quiet and settled", Impact: affect.Position{Valence: 0.3, Arousal: -0.7}},
			{Value: 2, Label: "Mostly quiet", Impact: affect.Position{Valence: 0.2, Arousal: -0.4}},
			{Value: 3, Label: "Somewhere in between", Impact: affect.Position{Valence: 0.0, Arousal: 0.1}},
			{Value: 4, Label: "Busy, hard to slow down", Impact: affect.Position{Valence: -0.3, Arousal: 0.5}},
			{Value: 5, Label: "Racing, I can't switch off", Impact: affect.Position{Valence: -0.5, Arousal: 0.8}},
		},
	},
	{
		ID:   "q-task-absorption",
		Text: "When you worked on the exercises, how absorbed were you?",
		Type: Cognitive,
		DiscriminantStates: []core.StateID{"engaged", "bored"},
		InformationWeight:  0.92,
		Options: []Option{
			{Value: 1, Label: "I kept checking the time", Impact: affect.Position{Valence: -0.4, Arousal: -0.6}},
			{Value: 2, Label: "My mind wandered a lot", Impact: affect.Position{Valence: -0.2, Arousal: -0.4}},
			{Value: 3, Label: "On and off", Impact: affect.Position{Valence: 0.1, Arousal: 0.0}},
			{Value: 4, Label: "Mostly focused", Impact: affect.Position{Valence: 0.4, Arousal: 0.2}},
			{Value: 5, Label: "Completely lost in it", Impact: affect.Position{Valence: 0.6, Arousal: 0.3}},
		},
	},
	{
		ID:   "q-body-tension",
		Text: "Do you notice tension in your body (shoulders, jaw, stomach)?",
		Type: Physiological,
		DiscriminantStates: []core.StateID{"anxious", "frustrated", "calm"},
		InformationWeight:  0.8,
		Options: []Option{
			{Value: 1, Label: "None, I feel loose", Impact: affect.Position{Valence: 0.3, Arousal: -0.6}},
			{Value: 2, Label: "A little", Impact: affect.Position{Valence: 0.0, Arousal: -0.2}},
			{Value: 3, Label: "Noticeable", Impact: affect.Position{Valence: -0.3, Arousal: 0.3}},
			{Value: 4, Label: "A lot, I feel wound up", Impact: affect.Position{Valence: -0.5, Arousal: 0.6}},
		},
	},
	{
		ID:   "q-social-pull",
		Text: "Do you feel like talking to classmates right now?",
		Type: Social,
		DiscriminantStates: []core.StateID{"excited", "sad", "content"},
		InformationWeight:  0.75,
		Options: []Option{
			{Value: 1, Label: "No, I'd rather be alone", Impact: affect.Position{Valence: -0.5, Arousal: -0.3}},
			{Value: 2, Label: "Not really", Impact: affect.Position{Valence: -0.2, Arousal: -0.2}},
			{Value: 3, Label: "If they come to me, fine", Impact: affect.Position{Valence: 0.2, Arousal: -0.1}},
			{Value: 4, Label: "Yes, happy to chat", Impact: affect.Position{Valence: 0.5, Arousal: 0.2}},
			{Value: 5, Label: "Yes, I want to tell everyone something", Impact: affect.Position{Valence: 0.7, Arousal: 0.6}},
		},
	},
	{
		ID:   "q-progress-block",
		Text: "When something didn't work in class today, how did it feel?",
		Type: Behavioral,
		DiscriminantStates: []core.StateID{"frustrated", "engaged"},
		InformationWeight:  0.82,
		Options: []Option{
			{Value: 1, Label: "Like a wall, I wanted to give up", Impact: affect.Position{Valence: -0.8, Arousal: 0.4}},
			{Value: 2, Label: "Annoying", Impact: affect.Position{Valence: -0.5, Arousal: 0.3}},
			{Value: 3, Label: "Didn't bother me much", Impact: affect.Position{Valence: 0.0, Arousal: 0.0}},
			{Value: 4, Label: "Like a puzzle I wanted to solve", Impact: affect.Position{Valence: 0.5, Arousal: 0.3}},
		},
	},
	{
		ID:   "q-time-perception",
		Text: "How did time seem to pass during class?",
		Type: Temporal,
		DiscriminantStates: []core.StateID{"engaged", "bored"},
		InformationWeight:  0.86,
		Options: []Option{
			{Value: 1, Label: "Dragged painfully", Impact: affect.Position{Valence: -0.5, Arousal: -0.6}},
			{Value: 2, Label: "A bit slow", Impact: affect.Position{Valence: -0.2, Arousal: -0.3}},
			{Value: 3, Label: "Normal", Impact: affect.Position{Valence: 0.1, Arousal: 0.0}},
			{Value: 4, Label: "Flew by", Impact: affect.Position{Valence: 0.5, Arousal: 0.3}},
		},
	},
	{
		ID:   "q-upcoming-worry",
		Text: "When you think about upcoming tests or deadlines, what happens?",
		Type: Temporal,
		DiscriminantStates: []core.StateID{"anxious", "content"},
		InformationWeight:  0.84,
		Options: []Option{
			{Value: 1, Label: "Nothing, I feel prepared", Impact: affect.Position{Valence: 0.5, Arousal: -0.2}},
			{Value: 2, Label: "A small knot, manageable", Impact: affect.Position{Valence: 0.0, Arousal: 0.2}},
			{Value: 3, Label: "My stomach tightens", Impact: affect.Position{Valence: -0.4, Arousal: 0.5}},
			{Value: 4, Label: "I start panicking", Impact: affect.Position{Valence: -0.6, Arousal: 0.9}},
		},
	},
	{
		ID:   "q-outlook",
		Text: "How do you feel about how things are going for you at school?",
		Type: Cognitive,
		DiscriminantStates: []core.StateID{"sad", "content", "excited"},
		InformationWeight:  0.78,
		Options: []Option{
			{Value: 1, Label: "Discouraged, it's not going well", Impact: affect.Position{Valence: -0.7, Arousal: -0.3}},
			{Value: 2, Label: "A bit down about it", Impact: affect.Position{Valence: -0.4, Arousal: -0.2}},
			{Value: 3, Label: "Okay, nothing special", Impact: affect.Position{Valence: 0.1, Arousal: -0.1}},
			{Value: 4, Label: "Satisfied", Impact: affect.Position{Valence: 0.6, Arousal: 0.0}},
			{Value: 5, Label: "Proud and motivated", Impact: affect.Position{Valence: 0.8, Arousal: 0.4}},
		},
	},
	{
		ID:   "q-restlessness",
		Text: "How still were you able to sit during class?",
		Type: Behavioral,
		DiscriminantStates: []core.StateID{"anxious", "excited", "calm"},
		InformationWeight:  0.7,
		Options: []Option{
			{Value: 1, Label: "Completely still, relaxed", Impact: affect.Position{Valence: 0.2, Arousal: -0.6}},
			{Value: 2, Label: "Mostly still", Impact: affect.Position{Valence: 0.1, Arousal: -0.2}},
			{Value: 3, Label: "Some fidgeting", Impact: affect.Position{Valence: 0.0, Arousal: 0.3}},
			{Value: 4, Label: "Couldn't stop moving", Impact: affect.Position{Valence: -0.1, Arousal: 0.7}},
		},
	},
	{
		ID:   "q-group-reaction",
		Text: "When the teacher announced group work, what was your reaction?",
		Type: Social,
		DiscriminantStates: []core.StateID{"excited", "anxious", "bored"},
		InformationWeight:  0.72,
		Options: []Option{
			{Value: 1, Label: "Dread, I hoped to be skipped", Impact: affect.Position{Valence: -0.5, Arousal: 0.4}},
			{Value: 2, Label: "Indifferent, whatever", Impact: affect.Position{Valence: -0.2, Arousal: -0.4}},
			{Value: 3, Label: "Fine with it", Impact: affect.Position{Valence: 0.3, Arousal: 0.0}},
			{Value: 4, Label: "Glad, I like working with others", Impact: affect.Position{Valence: 0.6, Arousal: 0.4}},
		},
	},
}
