package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = NewFieldSpec("i", "s")

const sampleOutput = `(:i "msg-001" :s "Weekly report" :f "alice@example.org")` +
	`(:i "msg-002" :s "Re: Weekly report" :f "bob@example.org")` +
	"\n" +
	`(:i "msg-003" :s "Lunch?" :f "carol@example.org")`

func parseAll(t *testing.T, input string, chunkSizes ...int) []Record {
	t.Helper()
	p := NewStreamParser(testSpec)
	var out []Record
	rest := []byte(input)
	for _, n := range chunkSizes {
		if n > len(rest) {
			n = len(rest)
		}
		p.Write(rest[:n])
		rest = rest[n:]
		out = append(out, p.Next()...)
	}
	p.Write(rest)
	out = append(out, p.Next()...)
	return out
}

func TestStreamParser_FullBuffer(t *testing.T) {
	recs := parseAll(t, sampleOutput)

	require.Len(t, recs, 3)
	assert.Equal(t, "msg-001", recs[0].ID)
	assert.Equal(t, "Weekly report", recs[0].Field("s"))
	assert.Equal(t, "alice@example.org", recs[0].Field("f"))
	assert.Equal(t, "msg-001"+FieldDelimiter+"Weekly report", recs[0].Raw)
	assert.Equal(t, "msg-003", recs[2].ID)
}

func TestStreamParser_ChunkingIsIdempotent(t *testing.T) {
	want := parseAll(t, sampleOutput)

	// Any way of splitting the stream must yield the same record sequence.
	for split := 1; split < len(sampleOutput); split++ {
		got := parseAll(t, sampleOutput, split)
		assert.Equal(t, want, got, "split at %d", split)
	}

	// Byte-at-a-time delivery.
	sizes := make([]int, len(sampleOutput))
	for i := range sizes {
		sizes[i] = 1
	}
	assert.Equal(t, want, parseAll(t, sampleOutput, sizes...))
}

func TestStreamParser_NoRecordYieldedTwice(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(sampleOutput))

	first := p.Next()
	require.Len(t, first, 3)

	// Repeated calls on an unchanged buffer yield nothing new.
	assert.Empty(t, p.Next())

	p.Write([]byte(`(:i "msg-004" :s "Another")`))
	second := p.Next()
	require.Len(t, second, 1)
	assert.Equal(t, "msg-004", second[0].ID)
}

func TestStreamParser_CursorNeverDecreasesOrOverruns(t *testing.T) {
	p := NewStreamParser(testSpec)
	prev := 0
	for _, chunk := range []string{`(:i "a`, `" :s "x")`, `(:i `, `"b" :s "y")`, `(:i "trunc`} {
		p.Write([]byte(chunk))
		p.Next()
		assert.GreaterOrEqual(t, p.Cursor(), prev)
		assert.LessOrEqual(t, p.Cursor(), p.Len())
		prev = p.Cursor()
	}
}

func TestStreamParser_TruncatedTailIsLeftForLater(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(`(:i "msg-001" :s "done")(:i "msg-002" :s "parti`))

	recs := p.Next()
	require.Len(t, recs, 1)
	assert.Equal(t, "msg-001", recs[0].ID)

	p.Write([]byte(`al")`))
	recs = p.Next()
	require.Len(t, recs, 1)
	assert.Equal(t, "msg-002", recs[0].ID)
	assert.Equal(t, "partial", recs[0].Field("s"))
}

func TestStreamParser_EmptyAndWhitespaceBuffers(t *testing.T) {
	p := NewStreamParser(testSpec)
	assert.Empty(t, p.Next())
	assert.Zero(t, p.Cursor())

	p.Write([]byte("  \n\t "))
	assert.Empty(t, p.Next())
	assert.Zero(t, p.Cursor())
}

func TestStreamParser_RecordWithoutIdentifierIsSkipped(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(`(:s "no id here")(:i "msg-001" :s "kept")`))

	recs := p.Next()
	require.Len(t, recs, 1)
	assert.Equal(t, "msg-001", recs[0].ID)
	assert.Equal(t, p.Len(), p.Cursor(), "cursor advances past the skipped record")
}

func TestStreamParser_StopsAtAnomalyWithoutConsuming(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(`(:i "msg-001" :s "ok")garbage(:i "msg-002" :s "never")`))

	recs := p.Next()
	require.Len(t, recs, 1)

	// The rest of the buffer is abandoned; the cursor stays at the anomaly.
	cursor := p.Cursor()
	assert.Empty(t, p.Next())
	assert.Equal(t, cursor, p.Cursor())
}

func TestStreamParser_EscapedQuotesAndNestedLists(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(`(:i "msg-001" :s "He said \"hi\" twice" :refs ("a" "b") :prio 2)`))

	recs := p.Next()
	require.Len(t, recs, 1)
	assert.Equal(t, `He said "hi" twice`, recs[0].Field("s"))
	assert.Equal(t, "2", recs[0].Field("prio"))
	// Nested list contents are not captured as top-level fields.
	assert.Empty(t, recs[0].Field("refs"))
}

func TestStreamParser_AtomAtBufferEndIsTreatedAsTruncated(t *testing.T) {
	p := NewStreamParser(testSpec)
	p.Write([]byte(`(:i "msg-001" :s "x" :prio 12`))

	assert.Empty(t, p.Next())

	p.Write([]byte(`3)`))
	recs := p.Next()
	require.Len(t, recs, 1)
	assert.Equal(t, "123", recs[0].Field("prio"))
}
