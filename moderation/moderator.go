package moderation

import (
	"alumni-chat/domain/chat"
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks dictionary words in message bodies. Matching ignores case,
// punctuation, spacing and common leet substitutions, while the masking is
// applied to the original characters so the rest of the text is untouched.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// normalized is the searchable form of a text plus, for each kept rune, its
// index in the original text.
type normalized struct {
	runes   []rune
	origIdx []int
}

func NewModerator(words []string, replacement rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if p := normalize(word).runes; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	m := &Moderator{replacement: replacement, log: log}
	if len(patterns) == 0 {
		return m, nil
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.matcher = machine
	return m, nil
}

// Censor returns the masked text and the dictionary words that matched, in
// order of appearance.
func (m *Moderator) Censor(text string) (string, []string) {
	if m.matcher == nil {
		return text, nil
	}
	n := normalize(text)
	if len(n.runes) == 0 {
		return text, nil
	}
	terms := m.matcher.MultiPatternSearch(n.runes, false)
	if len(terms) == 0 {
		return text, nil
	}

	out := []rune(text)
	words := make([]string, 0, len(terms))
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(n.origIdx) {
			continue
		}
		for i := n.origIdx[start]; i <= n.origIdx[end-1]; i++ {
			out[i] = m.replacement
		}
		words = append(words, string(term.Word))
	}
	return string(out), words
}

// Moderate censors the body of text messages. Other kinds carry no free text.
func (m *Moderator) Moderate(message chat.Message) chat.Message {
	if message.Kind != chat.KindText {
		return message
	}
	censored, words := m.Censor(message.Body)
	if len(words) > 0 {
		m.log.Info("Message body censored", "conversation_id", message.ConversationID,
			"sender_id", message.SenderID, "matches", len(words))
		message.Body = censored
	}
	return message
}

func normalize(input string) normalized {
	orig := []rune(input)
	n := normalized{runes: make([]rune, 0, len(orig)), origIdx: make([]int, 0, len(orig))}
	for i, r := range orig {
		clean := unleet(r)
		if isNoise(clean) {
			continue
		}
		n.runes = append(n.runes, unicode.ToLower(clean))
		n.origIdx = append(n.origIdx, i)
	}
	return n
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
