// SPDX-License-Identifier: MIT
// Package: naivebayes
//
// Purpose:
//   - Token/document counting (Train) and smoothed Bernoulli likelihoods.
//   - Spam posterior over the full vocabulary (Predict).
//
// Determinism:
//   - The vocabulary is kept in first-seen order and Predict sums in that
//     order, so a given training sequence always yields the same bits.

package naivebayes

import (
	"fmt"
	"maps"
	"math"
	"sort"
)

// DefaultK is the default smoothing pseudo-count.
const DefaultK = 0.5

// Message is one labeled training or test text.
type Message struct {
	Text   string
	IsSpam bool
}

type config struct {
	k        float64
	tokenize Tokenizer
}

// Option configures New.
type Option func(*config)

// WithK sets the smoothing pseudo-count. It panics unless k > 0.
func WithK(k float64) Option {
	if !(k > 0) || math.IsInf(k, 0) {
		panic(fmt.Sprintf("naivebayes: WithK(%v): k must be positive and finite", k))
	}
	return func(c *config) { c.k = k }
}

// WithTokenizer replaces Tokenize. It panics on nil.
func WithTokenizer(t Tokenizer) Option {
	if t == nil {
		panic("naivebayes: WithTokenizer(nil)")
	}
	return func(c *config) { c.tokenize = t }
}

// Classifier holds token and message counts. The zero value is not usable;
// call New.
type Classifier struct {
	k        float64
	tokenize Tokenizer

	vocab           []string
	tokens          TokenSet
	tokenSpamCounts map[string]int
	tokenHamCounts  map[string]int
	spamMessages    int
	hamMessages     int
}

// New returns an untrained classifier (k = DefaultK, Tokenize).
func New(opts ...Option) *Classifier {
	cfg := config{k: DefaultK, tokenize: Tokenize}
	for _, o := range opts {
		o(&cfg)
	}
	return &Classifier{
		k:               cfg.k,
		tokenize:        cfg.tokenize,
		tokens:          make(TokenSet),
		tokenSpamCounts: make(map[string]int),
		tokenHamCounts:  make(map[string]int),
	}
}

// K returns the smoothing pseudo-count.
func (c *Classifier) K() float64 { return c.k }

// Train adds messages to the counts. Training twice on the same messages
// doubles their weight.
func (c *Classifier) Train(messages []Message) {
	for _, m := range messages {
		if m.IsSpam {
			c.spamMessages++
		} else {
			c.hamMessages++
		}
		for _, tok := range c.tokenize(m.Text).Sorted() {
			if !c.tokens.Contains(tok) {
				c.tokens[tok] = struct{}{}
				c.vocab = append(c.vocab, tok)
			}
			if m.IsSpam {
				c.tokenSpamCounts[tok]++
			} else {
				c.tokenHamCounts[tok]++
			}
		}
	}
}

// Probabilities returns the smoothed P(token | spam) and P(token | ham).
// Unseen tokens get k/(messages+2k).
func (c *Classifier) Probabilities(token string) (pSpam, pHam float64) {
	spam := float64(c.tokenSpamCounts[token])
	ham := float64(c.tokenHamCounts[token])
	pSpam = (spam + c.k) / (float64(c.spamMessages) + 2*c.k)
	pHam = (ham + c.k) / (float64(c.hamMessages) + 2*c.k)
	return pSpam, pHam
}

// Predict returns P(spam | text) assuming equal class priors.
// An untrained classifier returns 0.5.
//
// Complexity: O(|vocabulary| + len(text)).
func (c *Classifier) Predict(text string) float64 {
	present := c.tokenize(text)
	var logSpam, logHam float64
	for _, tok := range c.vocab {
		pSpam, pHam := c.Probabilities(tok)
		if present.Contains(tok) {
			logSpam += math.Log(pSpam)
			logHam += math.Log(pHam)
		} else {
			logSpam += math.Log(1 - pSpam)
			logHam += math.Log(1 - pHam)
		}
	}
	return 1 / (1 + math.Exp(logHam-logSpam))
}

// PSpamGivenToken returns P(spam | token) for a single token:
// P(token|spam) / (P(token|spam) + P(token|ham)).
func (c *Classifier) PSpamGivenToken(token string) float64 {
	pSpam, pHam := c.Probabilities(token)
	return pSpam / (pSpam + pHam)
}

// rankedVocabulary sorts the vocabulary by PSpamGivenToken, descending,
// ties by token.
func (c *Classifier) rankedVocabulary() []string {
	words := append([]string(nil), c.vocab...)
	score := make(map[string]float64, len(words))
	for _, w := range words {
		score[w] = c.PSpamGivenToken(w)
	}
	sort.Slice(words, func(i, j int) bool {
		if score[words[i]] != score[words[j]] {
			return score[words[i]] > score[words[j]]
		}
		return words[i] < words[j]
	})
	return words
}

// SpammiestWords returns the n tokens with the highest PSpamGivenToken,
// spammiest first.
func (c *Classifier) SpammiestWords(n int) []string {
	words := c.rankedVocabulary()
	n = max(0, min(n, len(words)))
	return words[:n]
}

// HammiestWords returns the n tokens with the lowest PSpamGivenToken,
// hammiest first.
func (c *Classifier) HammiestWords(n int) []string {
	words := c.rankedVocabulary()
	n = max(0, min(n, len(words)))
	out := make([]string, 0, n)
	for i := len(words) - 1; i >= len(words)-n; i-- {
		out = append(out, words[i])
	}
	return out
}

// Vocabulary returns every token seen in training, sorted.
func (c *Classifier) Vocabulary() []string {
	return c.tokens.Sorted()
}

// SpamMessages returns the number of spam messages trained on.
func (c *Classifier) SpamMessages() int { return c.spamMessages }

// HamMessages returns the number of ham messages trained on.
func (c *Classifier) HamMessages() int { return c.hamMessages }

// TokenSpamCounts returns a copy of the per-token spam document counts.
func (c *Classifier) TokenSpamCounts() map[string]int { return maps.Clone(c.tokenSpamCounts) }

// TokenHamCounts returns a copy of the per-token ham document counts.
func (c *Classifier) TokenHamCounts() map[string]int { return maps.Clone(c.tokenHamCounts) }
