// Package mood holds the fixed emotion taxonomy: every valid mood label, its
// 1-5 intensity, and the support prompt / fallback script used by the chat
// endpoint. The tables are built once at init and never mutated.
package mood

import (
	"sort"
	"strings"
)

// Entry describes a single mood label.
type Entry struct {
	// Intensity is the 1 (lowest) to 5 (highest) mood value recorded as a
	// progress metric when the mood is checked in.
	Intensity int
	// Prompt is the system prompt used when chatting about this mood.
	// Empty means the generic default applies.
	Prompt string
	// Fallback is the canned reply script, line by line, returned when the
	// completion API is unavailable. Empty means the generic default applies.
	Fallback []string
}

// intensityGroups assigns every label an intensity band: core negative moods
// sit at 1, secondary negative at 2, neutral/reflective/tired at 3, settled
// positive at 4 and high-arousal positive at 5. The special labels Unknown,
// Mixed and Unsure read as 3, Conflicted as 2.
var intensityGroups = map[int][]string{
	1: {
		"Sad", "Depressed", "Heartbroken", "Gloomy",
		"Anxious", "Panicked",
		"Hopeless", "Despairing", "Defeated", "Powerless",
	},
	2: {
		"Worried", "Nervous",
		"Angry", "Furious", "Irritated", "Resentful",
		"Stressed", "Overwhelmed", "Burdened", "Pressured",
		"Lonely", "Isolated", "Abandoned", "Disconnected",
		"Ashamed", "Guilty", "Embarrassed", "Humiliated",
		"Conflicted",
	},
	3: {
		"Confused", "Disoriented", "Uncertain", "Lost",
		"Numb", "Empty", "Detached", "Disassociated",
		"Neutral", "Indifferent", "Apathetic", "Balanced",
		"Reflective", "Contemplative", "Thoughtful", "Pensive",
		"Tired", "Exhausted", "Drained", "Fatigued",
		"Unknown", "Mixed", "Unsure",
	},
	4: {
		"Happy", "Content", "Cheerful",
		"Peaceful", "Calm", "Serene", "Tranquil",
	},
	5: {
		"Joyful", "Excited", "Enthusiastic", "Eager", "Energized",
		"Grateful", "Thankful", "Appreciative", "Blessed",
		"Hopeful", "Optimistic", "Encouraged", "Confident",
	},
}

var prompts = map[string]string{
	"Sad":      "Respond to sadness with deep compassion. Offer multiple forms of support: listening, gentle suggestions, and validation. Keep responses natural and conversational.",
	"Anxious":  "Provide anxiety support with understanding and practical techniques. Offer 2-3 options for calming strategies, and let the user guide what they need.",
	"Angry":    "Help process anger in healthy ways. Suggest physical, creative, and reflective outlets. Keep tone calm but understanding.",
	"Stressed": "Offer personalized stress relief options - immediate techniques and longer-term strategies. Adapt to the user's specific situation.",
	"Confused": "Help clarify confusion by breaking things down. Offer different perspectives and encourage exploration of feelings.",
	"Numb":     "Suggest gentle, non-threatening ways to reconnect with emotions. Provide options for different comfort levels.",
	"Hopeless": "Offer hope without dismissing feelings. Share small, manageable steps forward and validate the difficulty.",
	"Happy":    "Celebrate happiness with genuine interest. Ask questions to help savor the moment and reinforce positive feelings.",
	"Excited":  "Share excitement while helping channel energy positively. Suggest ways to harness this productive energy.",
	"Grateful": "Deepen gratitude through reflection and sharing. Offer prompts to explore gratitude further.",
	"Unknown": "When feelings are unclear: gently explore physical sensations and thoughts, offer possible emotion words without pressure, " +
		"suggest simple activities to help identify feelings, and maintain a supportive, non-judgmental presence.",
	"Mixed": "For mixed emotions: acknowledge the complexity, help untangle different feelings, validate that conflicting emotions are normal, " +
		"and address each feeling as needed.",
}

// DefaultPrompt is the system prompt used for moods with no dedicated entry.
const DefaultPrompt = "Provide compassionate, natural responses. Offer support while following the user's lead in conversation."

var fallbacks = map[string][]string{
	"Sad": {
		"I hear how hard this is for you. You might try:",
		"• Writing about what's hurting",
		"• Reaching out to someone who cares",
		"• Gentle movement like walking",
		"• Looking at comforting images",
		"What feels most possible right now?",
	},
	"Anxious": {
		"Anxiety can feel overwhelming. Some options:",
		"• 5-4-3-2-1 grounding (notice 5 things you see, 4 you can touch, etc.)",
		"• Box breathing (inhale 4s, hold 4s, exhale 4s, hold 4s)",
		"• Splashing cold water on your face",
		"• Repeating a calming phrase",
		"Would any of these help?",
	},
	"Angry": {
		"Anger needs healthy outlets. You could:",
		"• Punch a pillow or scream into one",
		"• Do vigorous exercise",
		"• Write an angry letter (then tear it up)",
		"• Use cold water on your face",
		"What usually helps you release anger?",
	},
	"Happy": {
		"I'm glad you're feeling happy! To enjoy this:",
		"• Notice physical sensations of happiness",
		"• Share the feeling with someone",
		"• Do something playful",
		"• Take a mental picture of this moment",
		"What's making you feel happy right now?",
	},
	"Unknown": {
		"Not knowing how you feel is okay. We can:",
		"• Explore physical sensations together",
		"• Try naming possible emotions",
		"• Use colors or images to describe feelings",
		"• Sit with the uncertainty for a bit",
		"What feels right to try?",
	},
	"Mixed": {
		"Mixed feelings are completely normal. We can:",
		"• List out the different emotions",
		"• Give each feeling some attention",
		"• Find where they overlap in your body",
		"• Accept that multiple feelings can coexist",
		"How would you like to approach this?",
	},
}

// defaultFallback is the canned script for moods with no dedicated entry.
var defaultFallback = []string{
	"I'm here to support you. We can:",
	"• Talk through what you're experiencing",
	"• Try some coping strategies",
	"• Just sit with these feelings together",
	"• Find ways to express what's inside",
	"What feels most helpful right now?",
}

var (
	entries map[string]Entry
	byLower map[string]string
	labels  []string
)

func init() {
	entries = make(map[string]Entry)
	byLower = make(map[string]string)
	for intensity, group := range intensityGroups {
		for _, label := range group {
			entries[label] = Entry{
				Intensity: intensity,
				Prompt:    prompts[label],
				Fallback:  fallbacks[label],
			}
			byLower[strings.ToLower(label)] = label
		}
	}
	labels = make([]string, 0, len(entries))
	for label := range entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)
}

// Valid reports whether label is an exact member of the taxonomy.
func Valid(label string) bool {
	_, ok := entries[label]
	return ok
}

// Canonical resolves a label case-insensitively to its stored capitalized
// form. It returns false for labels outside the taxonomy.
func Canonical(label string) (string, bool) {
	canonical, ok := byLower[strings.ToLower(strings.TrimSpace(label))]
	return canonical, ok
}

// Intensity returns the 1-5 intensity for a valid label. Unknown labels fail
// closed; callers are expected to reject them before recording anything.
func Intensity(label string) (int, bool) {
	e, ok := entries[label]
	if !ok {
		return 0, false
	}
	return e.Intensity, true
}

// PromptFor returns the chat system prompt for a label, or the generic
// default when the label has no dedicated prompt.
func PromptFor(label string) string {
	if e, ok := entries[label]; ok && e.Prompt != "" {
		return e.Prompt
	}
	return DefaultPrompt
}

// FallbackFor returns the canned reply script for a label, or the generic
// default when the label has no dedicated script. The returned slice must not
// be modified.
func FallbackFor(label string) []string {
	if e, ok := entries[label]; ok && len(e.Fallback) > 0 {
		return e.Fallback
	}
	return defaultFallback
}

// Labels returns all valid labels in sorted order. The returned slice must
// not be modified.
func Labels() []string {
	return labels
}
