// SPDX-License-Identifier: MIT

package naivebayes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tebeka/snowball"
)

// TokenSet is a set of distinct tokens.
type TokenSet map[string]struct{}

// Contains reports whether tok is in s.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the tokens in ascending order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Tokenizer turns a message text into its token set.
type Tokenizer func(text string) TokenSet

func validRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\''
}

// Tokenize lowercases text and returns the distinct maximal runs of
// [a-z0-9'] characters. Everything else separates tokens.
func Tokenize(text string) TokenSet {
	out := make(TokenSet)
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool { return !validRune(r) }) {
		out[tok] = struct{}{}
	}
	return out
}

// Stemmer reduces tokens to their stems with a snowball stemmer.
// A Stemmer is not safe for concurrent use.
type Stemmer struct {
	s *snowball.Stemmer
}

// NewStemmer creates a stemmer for a snowball language such as "english".
// Call Close when done.
func NewStemmer(lang string) (*Stemmer, error) {
	s, err := snowball.New(lang)
	if err != nil {
		return nil, fmt.Errorf("NewStemmer(%q): %w: %v", lang, ErrStemmer, err)
	}
	return &Stemmer{s: s}, nil
}

// Stem returns the stem of one lowercase word.
func (st *Stemmer) Stem(word string) string {
	return st.s.Stem(word)
}

// Tokenizer returns a Tokenizer that applies Tokenize and stems every token,
// so "offers" and "offer" count as the same feature.
func (st *Stemmer) Tokenizer() Tokenizer {
	return func(text string) TokenSet {
		raw := Tokenize(text)
		out := make(TokenSet, len(raw))
		for tok := range raw {
			out[st.s.Stem(tok)] = struct{}{}
		}
		return out
	}
}

// Close releases the underlying stemmer. Calling it twice is safe.
func (st *Stemmer) Close() error {
	return st.s.Close()
}
