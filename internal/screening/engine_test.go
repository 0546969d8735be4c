package screening

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeExtractor struct {
	texts map[string]string
	fail  map[string]bool
}

func (f *fakeExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	if f.fail[filename] {
		return "", errors.New("unreadable document")
	}
	return f.texts[filename], nil
}

func TestEngine_Screen(t *testing.T) {
	extractor := &fakeExtractor{
		texts: map[string]string{
			"strong.pdf": "8 years of python and flask. Bachelor of Science.",
			"weak.pdf":   "junior python developer",
		},
		fail: map[string]bool{"broken.pdf": true},
	}
	engine := NewEngine(extractor, 3, 0, zaptest.NewLogger(t))
	criteria := ParseCriteria("python", "flask", "2", "bachelor")

	docs := []Document{
		{ID: "weak.pdf"},
		{ID: "strong.pdf"},
		{ID: "broken.pdf"},
	}

	results, err := engine.Screen(context.Background(), criteria, docs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// strong: 5 + 3 + 2*8 + 10 = 34
	assert.Equal(t, "strong.pdf", results[0].CandidateID)
	assert.Equal(t, 34.0, results[0].Score)

	// weak: keyword only, under the minimum: 5 - 10 = -5
	assert.Equal(t, "weak.pdf", results[1].CandidateID)
	assert.Equal(t, -5.0, results[1].Score)

	// broken: scored on empty text, extraction failure annotated
	assert.Equal(t, "broken.pdf", results[2].CandidateID)
	assert.Equal(t, -10.0, results[2].Score)
	assert.NotEmpty(t, results[2].ExtractionErr)
}

func TestEngine_Deterministic(t *testing.T) {
	extractor := &fakeExtractor{texts: map[string]string{}}
	for i := 0; i < 12; i++ {
		extractor.texts[fmt.Sprintf("cv-%d.pdf", i)] =
			fmt.Sprintf("%d years of go and docker", i%5)
	}
	engine := NewEngine(extractor, 4, 0, zaptest.NewLogger(t))
	criteria := ParseCriteria("go", "docker", "2", "")

	var docs []Document
	for i := 0; i < 12; i++ {
		docs = append(docs, Document{ID: fmt.Sprintf("cv-%d.pdf", i)})
	}

	first, err := engine.Screen(context.Background(), criteria, docs)
	require.NoError(t, err)
	second, err := engine.Screen(context.Background(), criteria, docs)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEngine_TiesKeepSubmissionOrder(t *testing.T) {
	// Every candidate scores the same; the ranked output must equal the
	// submission order even with concurrent workers.
	extractor := &fakeExtractor{texts: map[string]string{}}
	engine := NewEngine(extractor, 4, 0, zaptest.NewLogger(t))
	criteria := ParseCriteria("", "", "0", "")

	var docs []Document
	var want []string
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("cv-%d.pdf", i)
		docs = append(docs, Document{ID: id})
		want = append(want, id)
	}

	results, err := engine.Screen(context.Background(), criteria, docs)
	require.NoError(t, err)

	assert.Equal(t, want, candidateIDs(results))
}

func TestEngine_CancelledContext(t *testing.T) {
	extractor := &fakeExtractor{texts: map[string]string{"cv.pdf": "5 years of go"}}
	engine := NewEngine(extractor, 2, 0, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Screen(ctx, ParseCriteria("go", "", "0", ""), []Document{{ID: "cv.pdf"}})
	require.ErrorIs(t, err, context.Canceled)
}
