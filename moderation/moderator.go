// Package moderation censors banned words in free-text input before it is
// stored or echoed back. Matching runs on a normalized shadow of the text
// (lowercased, leet-speak folded, punctuation and spacing removed) while the
// masking is applied to the original runes.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// New builds the Aho-Corasick automaton from the banned-word list. An empty
// list yields a passthrough moderator.
func New(words []string, replacement rune) (*Moderator, error) {
	if len(words) == 0 {
		return &Moderator{replacement: replacement}, nil
	}
	patterns := make([][]rune, len(words))
	for i, w := range words {
		normalized, _ := normalize([]rune(w))
		patterns[i] = normalized
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: m, replacement: replacement}, nil
}

// Censor masks every banned span and returns the sanitized text together
// with the matched (normalized) words.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.machine == nil {
		return original, nil
	}
	origRunes := []rune(original)
	normalized, origIdx := normalize(origRunes)
	if len(normalized) == 0 {
		return original, nil
	}

	spans := m.machine.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		found = append(found, string(span.Word))
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes), found
}

// normalize folds the input for matching and records, for every kept rune,
// its index in the original slice.
func normalize(input []rune) ([]rune, []int) {
	norm := make([]rune, 0, len(input))
	idx := make([]int, 0, len(input))
	for i, r := range input {
		r = foldLeet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		idx = append(idx, i)
	}
	return norm, idx
}

var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

func foldLeet(r rune) rune {
	if mapped, ok := leet[r]; ok {
		return mapped
	}
	return r
}
