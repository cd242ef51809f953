package router

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// score computes the bonus-adjusted score vector for the lowercased task
// text: a raw keyword pass per kind, then one contextual bonus pass over the
// whole vector.
func (e *Engine) score(text string) ScoreVector {
	scores := newScoreVector()
	for _, kind := range AgentKinds {
		scores[kind] = rawScore(text, e.lexicon[kind])
	}
	for _, rule := range e.rules {
		if rule.Match(text) {
			scores[rule.Target] += rule.Bonus
		}
	}
	return scores
}

// rawScore computes one kind's keyword score. Phrases (terms with a space)
// score double their weight on substring presence, counted once no matter how
// often they repeat. Single tokens score weight per whole-word occurrence;
// whole-word matching keeps "go" from firing inside "good".
func rawScore(text string, entries []KeywordEntry) int {
	total := 0
	for _, entry := range entries {
		term := strings.ToLower(entry.Term)
		if strings.Contains(term, " ") {
			if strings.Contains(text, term) {
				total += entry.Weight * 2
			}
		} else {
			total += wordOccurrences(text, term) * entry.Weight
		}
	}
	return total
}

// wordOccurrences counts whole-word occurrences of word in text. Both are
// expected to be lowercase already.
func wordOccurrences(text, word string) int {
	if word == "" {
		return 0
	}
	count := 0
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			break
		}
		i += start
		if boundaryBefore(text, i) && boundaryAfter(text, i+len(word)) {
			count++
		}
		start = i + len(word)
	}
	return count
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
