// Package normalize prepares raw news text for vectorization: it strips
// everything that is not a CJK ideograph or ASCII alphanumeric, collapses
// whitespace, lowercases, and segments mixed Chinese/Latin text into
// space-joined tokens.
package normalize

import (
	"strings"

	"github.com/go-ego/gse"
)

// Normalizer turns raw text into a space-joined token sequence.
// Safe for concurrent use once constructed: the segmenter dictionary is
// loaded in New and never mutated afterwards.
type Normalizer struct {
	seg gse.Segmenter
}

// New creates a Normalizer with the embedded Chinese dictionary loaded
func New() (*Normalizer, error) {
	n := &Normalizer{}
	if err := n.seg.LoadDict(); err != nil {
		return nil, err
	}
	return n, nil
}

// Normalize cleans and segments text. Empty input returns the empty
// string; there are no other failure modes. The output is idempotent:
// normalizing already-normalized text yields the same string.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	cleaned := clean(text)
	if cleaned == "" {
		return ""
	}

	var tokens []string
	for _, tok := range n.seg.Cut(cleaned, true) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return strings.Join(tokens, " ")
}

// clean replaces every rune outside the CJK ideograph and ASCII
// alphanumeric ranges with a space, collapses whitespace runs, and
// lowercases ASCII letters
func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FA5: // CJK unified ideographs
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
