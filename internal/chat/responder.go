package chat

import (
	"context"
	"math/rand"
	"strings"

	"github.com/wordarena/WordArena/pkg/logger"
)

// keywordRule maps trigger substrings to a fixed tutor reply. Rules are
// checked in order, first hit wins.
type keywordRule struct {
	triggers []string
	reply    string
}

var keywordRules = []keywordRule{
	{
		triggers: []string{"hello", "hi ", "hey"},
		reply:    "Hi there! I'm your study buddy. Ask me about reading, spelling, or how battles work!",
	},
	{
		triggers: []string{"what is a noun", "whats a noun"},
		reply:    "A noun names a person, place, thing, or idea. 'Teacher', 'library', and 'courage' are all nouns.",
	},
	{
		triggers: []string{"what is a verb", "whats a verb"},
		reply:    "A verb is an action or state word, like 'run', 'read', or 'believe'. Every sentence needs one!",
	},
	{
		triggers: []string{"what is an adjective", "whats an adjective"},
		reply:    "An adjective describes a noun, like 'brave', 'tiny', or 'brilliant'. It adds detail to your writing.",
	},
	{
		triggers: []string{"spelling tip", "how to spell", "spell better"},
		reply:    "Break long words into syllables and say each part out loud. Writing a tricky word three times helps it stick!",
	},
	{
		triggers: []string{"reading tip", "comprehension", "understand the passage"},
		reply:    "Read the questions first, then the passage. Underline the sentence that answers each question and re-check it before answering.",
	},
	{
		triggers: []string{"earn exp", "what is exp", "experience points", "rank up"},
		reply:    "You earn EXP from every battle based on your score, with a bonus for winning. Collect EXP to climb from Bronze toward Master!",
	},
	{
		triggers: []string{"how do battles work", "how to play", "matchmaking"},
		reply:    "Join the battle queue and you'll be paired with another player. Answer the same questions, and the higher score wins bonus EXP!",
	},
	{
		triggers: []string{"bye", "goodbye", "see you"},
		reply:    "Good luck in your next battle! Come back any time you need help.",
	},
}

var cannedReplies = []string{
	"That's a great question! Try breaking it into smaller parts and tackling them one at a time.",
	"Hmm, I'm not sure about that one. Reading a little every day is the best way to find answers!",
	"Keep practicing! Every battle you play makes you a stronger reader and speller.",
	"I don't have a good answer for that, but don't give up. Curiosity is how champions learn!",
}

type Responder struct {
	providers []Provider
}

func NewResponder(providers ...Provider) *Responder {
	return &Responder{providers: providers}
}

func DefaultResponder() *Responder {
	return NewResponder(NewGeminiProvider(), NewHuggingFaceProvider())
}

// Respond always produces a reply: keyword match first, then each provider
// in order, then a canned response. Provider failures are swallowed.
func (r *Responder) Respond(ctx context.Context, message string) ChatResponse {
	lowered := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range keywordRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return ChatResponse{Reply: rule.reply, Source: "tutor"}
			}
		}
	}

	for _, provider := range r.providers {
		reply, err := provider.Generate(ctx, message)
		if err != nil {
			logger.Debugf("chat provider %s failed: %v", provider.Name(), err)
			continue
		}
		if strings.TrimSpace(reply) != "" {
			return ChatResponse{Reply: strings.TrimSpace(reply), Source: provider.Name()}
		}
	}

	return ChatResponse{
		Reply:  cannedReplies[rand.Intn(len(cannedReplies))],
		Source: "canned",
	}
}
