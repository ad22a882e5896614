// SPDX-License-Identifier: MIT
// Package: dataset
//
// Purpose:
//   - Load a SpamAssassin-style public corpus (one RFC 822 message per file)
//     into naivebayes.Messages.
//
// Contract:
//   - A file is ham when its path contains "ham", spam otherwise, unless
//     WithLabeler says differently.
//   - The message text is the decoded Subject header. With WithBodies the
//     text/plain and text/html parts are appended; HTML is reduced to its
//     text nodes.
//   - Files whose headers cannot be parsed fall back to a line scan for
//     "Subject:" and contribute no body.
//   - Files without any Subject line are skipped. An empty Subject is kept.

package dataset

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"net/mail"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/katalvlaran/scratchml/naivebayes"
)

const (
	opLoadSpamCorpus = "LoadSpamCorpus"

	// DefaultMaxBodyBytes caps how much of each body is read.
	DefaultMaxBodyBytes = 64 << 10

	subjectPrefix = "Subject:"
)

// SpamOption configures LoadSpamCorpus.
type SpamOption func(*spamConfig)

type spamConfig struct {
	bodies   bool
	maxBody  int64
	labeler  func(path string) bool
	skipName func(name string) bool
}

func defaultSpamConfig() spamConfig {
	return spamConfig{
		maxBody: DefaultMaxBodyBytes,
		labeler: func(path string) bool { return !strings.Contains(path, "ham") },
		skipName: func(name string) bool {
			return strings.HasPrefix(name, ".") || name == "cmds"
		},
	}
}

// WithBodies appends message bodies to the subject text.
func WithBodies() SpamOption {
	return func(c *spamConfig) { c.bodies = true }
}

// WithMaxBodyBytes limits how many body bytes are read per message.
// Panics if n <= 0.
func WithMaxBodyBytes(n int64) SpamOption {
	if n <= 0 {
		panic("dataset: WithMaxBodyBytes(n<=0)")
	}
	return func(c *spamConfig) { c.maxBody = n }
}

// WithLabeler replaces the path rule deciding whether a file is spam.
// Panics if fn is nil.
func WithLabeler(fn func(path string) bool) SpamOption {
	if fn == nil {
		panic("dataset: WithLabeler(nil)")
	}
	return func(c *spamConfig) { c.labeler = fn }
}

// LoadSpamCorpus walks root inside fsys and returns one Message per regular
// file that has a subject, in lexical path order. Hidden files and "cmds"
// index files are skipped.
//
// Errors:
//   - fs walk and read errors, wrapped.
func LoadSpamCorpus(fsys fs.FS, root string, opts ...SpamOption) ([]naivebayes.Message, error) {
	cfg := defaultSpamConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || cfg.skipName(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, datasetErrorf(opLoadSpamCorpus, err)
	}
	sort.Strings(paths)

	out := make([]naivebayes.Message, 0, len(paths))
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, datasetErrorf(opLoadSpamCorpus, err)
		}
		text, ok := messageText(raw, cfg)
		if !ok {
			continue
		}
		out = append(out, naivebayes.Message{
			Text:   text,
			IsSpam: cfg.labeler(p),
		})
	}
	return out, nil
}

// messageText extracts the subject (and optionally the body) of raw.
// ok is false when raw has no Subject line.
func messageText(raw []byte, cfg spamConfig) (text string, ok bool) {
	msg, err := mail.ReadMessage(bytes.NewReader(stripEnvelope(raw)))
	if err != nil {
		return scanSubject(raw)
	}
	if _, present := msg.Header["Subject"]; !present {
		return "", false
	}
	subject := decodeHeader(msg.Header.Get("Subject"))
	if !cfg.bodies {
		return subject, true
	}
	body := extractBody(msg.Header.Get("Content-Type"), io.LimitReader(msg.Body, cfg.maxBody))
	if body == "" {
		return subject, true
	}
	return subject + "\n" + body, true
}

// stripEnvelope drops a leading mbox "From " line, which is not a header.
func stripEnvelope(raw []byte) []byte {
	if !bytes.HasPrefix(raw, []byte("From ")) {
		return raw
	}
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		return raw[i+1:]
	}
	return nil
}

func scanSubject(raw []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, subjectPrefix) {
			return decodeHeader(strings.TrimSpace(strings.TrimPrefix(line, subjectPrefix))), true
		}
	}
	return "", false
}

func decodeHeader(s string) string {
	dec := new(mime.WordDecoder)
	if d, err := dec.DecodeHeader(s); err == nil {
		return d
	}
	return s
}

// extractBody returns the readable text of a body with the given
// Content-Type. Unknown types yield "".
func extractBody(contentType string, r io.Reader) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}
	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		mr := multipart.NewReader(r, params["boundary"])
		var parts []string
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			if t := extractBody(part.Header.Get("Content-Type"), part); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	case mediaType == "text/html":
		return htmlText(r)
	case mediaType == "text/plain":
		b, err := io.ReadAll(r)
		if err != nil && len(b) == 0 {
			return ""
		}
		return strings.TrimSpace(string(b))
	default:
		return ""
	}
}

// htmlText concatenates the text nodes of an HTML document, skipping
// script and style contents.
func htmlText(r io.Reader) string {
	z := html.NewTokenizer(r)
	var (
		sb   strings.Builder
		skip int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return string(name) == "script" || string(name) == "style"
}
