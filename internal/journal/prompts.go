package journal

import (
	"math/rand/v2"

	"github.com/jstrick/dojo/internal/models"
)

// Prompts is the fixed, read-only catalog of philosophical journaling
// prompts. It is never persisted and never mutated at runtime.
var Prompts = []models.Prompt{
	{
		ID:     "stoic_001",
		Type:   "Stoic",
		Text:   "What did you do well today, according to your values? What could you improve?",
		Source: "Epictetus (adapted)",
	},
	{
		ID:     "zen_001",
		Type:   "Zen Koan",
		Text:   "What is the sound of one hand clapping?",
		Source: "Hakuin Ekaku",
	},
	{
		ID:     "persian_001",
		Type:   "Persian Poetry",
		Text:   "The wound is the place where the Light enters you. Reflect on a recent challenge and the light it brought.",
		Source: "Rumi",
	},
	{
		ID:     "existential_001",
		Type:   "Existential",
		Text:   "If you were to live this same life over and over again for eternity, what would you need to change to make it a joyous prospect?",
		Source: "Nietzsche (adapted from the Eternal Recurrence concept)",
	},
	{
		ID:     "taoist_001",
		Type:   "Taoist",
		Text:   "Empty your mind of all thoughts. Let your heart be at peace. Watch the turmoil of beings, but contemplate their return. How can you find stillness today?",
		Source: "Lao Tzu (Tao Te Ching, adapted)",
	},
	{
		ID:     "socratic_001",
		Type:   "Socratic",
		Text:   "What is a belief you hold with strong conviction? What are some reasons someone might rationally hold the opposite belief?",
		Source: "Socratic Method (adapted)",
	},
	{
		ID:     "buddhist_001",
		Type:   "Buddhist",
		Text:   "Consider a person with whom you have difficulty. Can you find a shared human desire (e.g., for happiness, for peace) between you and them? How does this change your perspective?",
		Source: "Metta Meditation (adapted)",
	},
}

// promptIndex gives O(1) id lookup over the catalog, built once at init
var promptIndex = buildPromptIndex()

func buildPromptIndex() map[string]models.Prompt {
	idx := make(map[string]models.Prompt, len(Prompts))
	for _, p := range Prompts {
		idx[p.ID] = p
	}
	return idx
}

// RandomPrompt picks one prompt uniformly at random. The second return is
// false when the catalog is empty.
func RandomPrompt() (models.Prompt, bool) {
	if len(Prompts) == 0 {
		return models.Prompt{}, false
	}
	return Prompts[rand.IntN(len(Prompts))], true
}

// PromptByID looks up a catalog prompt by its exact id.
func PromptByID(id string) (models.Prompt, bool) {
	p, ok := promptIndex[id]
	return p, ok
}
