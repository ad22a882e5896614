// SPDX-License-Identifier: MIT

// Package naivebayes implements a Bernoulli Naive Bayes spam filter over
// token sets.
//
// ✨ Model:
//
//	P(token | spam) = (spamCount(token) + k) / (spamMessages + 2k)
//	P(token | ham)  = (hamCount(token)  + k) / (hamMessages  + 2k)
//
// Predict walks the whole vocabulary: present tokens contribute log P,
// absent ones log(1 - P). The spam posterior (equal priors) is returned in
// the logistic form 1 / (1 + exp(logHam - logSpam)), which never divides
// 0 by 0 however long the vocabulary gets.
//
// ⚙️ Usage:
//
//	c := naivebayes.New(naivebayes.WithK(0.5))
//	c.Train(messages)
//	p := c.Predict("cheap meds now")
//
// Tokenization defaults to Tokenize (lowercase runs of [a-z0-9']).
// NewStemmer wraps a snowball stemmer into a Tokenizer for WithTokenizer.
//
// Concurrency: Train mutates the classifier; do not call it concurrently
// with anything else. After training, Predict and the accessors may be
// called from many goroutines.
package naivebayes
