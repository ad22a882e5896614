// SPDX-License-Identifier: MIT

package dataset_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/dataset"
)

const (
	plainSpam = "From spammer@example.com Mon Jan 1 00:00:00 2002\n" +
		"From: spammer@example.com\n" +
		"Subject: Cheap offer now\n" +
		"Content-Type: text/plain\n" +
		"\n" +
		"Buy cheap pills today.\n"

	htmlSpam = "From: promo@example.com\n" +
		"Subject: =?UTF-8?Q?Free_money?=\n" +
		"Content-Type: text/html; charset=utf-8\n" +
		"\n" +
		"<html><head><style>p{color:red}</style></head>" +
		"<body><p>Click <b>here</b></p><script>var x=1;</script></body></html>\n"

	multipartHam = "From: friend@example.com\n" +
		"Subject: Lunch tomorrow\n" +
		"MIME-Version: 1.0\n" +
		"Content-Type: multipart/alternative; boundary=XYZ\n" +
		"\n" +
		"--XYZ\n" +
		"Content-Type: text/plain\n" +
		"\n" +
		"See you at noon\n" +
		"--XYZ\n" +
		"Content-Type: image/png\n" +
		"\n" +
		"binary\n" +
		"--XYZ--\n"

	brokenHam = "not a header line\nSubject: meeting notes\n"

	noSubject = "From: nobody@example.com\n" +
		"Content-Type: text/plain\n" +
		"\n" +
		"Subject: in the body does not count\n"

	emptySubject = "From: nobody@example.com\n" +
		"Subject:\n" +
		"\n" +
		"hi\n"
)

func corpus() fstest.MapFS {
	return fstest.MapFS{
		"corpus/spam/0001":        {Data: []byte(plainSpam)},
		"corpus/spam/0002":        {Data: []byte(htmlSpam)},
		"corpus/spam/cmds":        {Data: []byte("mv 0001 x\n")},
		"corpus/easy_ham/0001":    {Data: []byte(multipartHam)},
		"corpus/easy_ham/0002":    {Data: []byte(brokenHam)},
		"corpus/easy_ham/.hidden": {Data: []byte(plainSpam)},
	}
}

func TestLoadSpamCorpus_Subjects(t *testing.T) {
	t.Parallel()

	msgs, err := dataset.LoadSpamCorpus(corpus(), "corpus")
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	// lexical path order: easy_ham before spam
	assert.Equal(t, "Lunch tomorrow", msgs[0].Text)
	assert.False(t, msgs[0].IsSpam)
	assert.Equal(t, "meeting notes", msgs[1].Text)
	assert.False(t, msgs[1].IsSpam)
	assert.Equal(t, "Cheap offer now", msgs[2].Text)
	assert.True(t, msgs[2].IsSpam)
	assert.Equal(t, "Free money", msgs[3].Text)
	assert.True(t, msgs[3].IsSpam)
}

func TestLoadSpamCorpus_Bodies(t *testing.T) {
	t.Parallel()

	msgs, err := dataset.LoadSpamCorpus(corpus(), "corpus", dataset.WithBodies())
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	assert.Equal(t, "Lunch tomorrow\nSee you at noon", msgs[0].Text)
	assert.Equal(t, "meeting notes", msgs[1].Text)
	assert.Equal(t, "Cheap offer now\nBuy cheap pills today.", msgs[2].Text)
	assert.Equal(t, "Free money\nClick here", msgs[3].Text)
}

func TestLoadSpamCorpus_Options(t *testing.T) {
	t.Parallel()

	msgs, err := dataset.LoadSpamCorpus(corpus(), "corpus/spam",
		dataset.WithBodies(),
		dataset.WithMaxBodyBytes(3),
		dataset.WithLabeler(func(path string) bool { return strings.HasSuffix(path, "2") }),
	)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].IsSpam)
	assert.True(t, msgs[1].IsSpam)
	assert.Equal(t, "Cheap offer now\nBuy", msgs[0].Text)

	_, err = dataset.LoadSpamCorpus(corpus(), "missing")
	assert.Error(t, err)

	assert.Panics(t, func() { dataset.WithMaxBodyBytes(0) })
	assert.Panics(t, func() { dataset.WithLabeler(nil) })
}

func TestLoadSpamCorpus_SkipsMissingSubject(t *testing.T) {
	t.Parallel()

	fsys := corpus()
	fsys["corpus/spam/0003"] = &fstest.MapFile{Data: []byte(noSubject)}
	fsys["corpus/spam/0004"] = &fstest.MapFile{Data: []byte("no headers at all\n")}
	fsys["corpus/spam/0005"] = &fstest.MapFile{Data: []byte(emptySubject)}

	msgs, err := dataset.LoadSpamCorpus(fsys, "corpus/spam")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "Cheap offer now", msgs[0].Text)
	assert.Equal(t, "Free money", msgs[1].Text)
	assert.Equal(t, "", msgs[2].Text)
	assert.True(t, msgs[2].IsSpam)
}
