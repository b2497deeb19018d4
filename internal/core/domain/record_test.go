package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionID_ExtractsIdentifier(t *testing.T) {
	id, ok := SelectionID("id123" + FieldDelimiter + "Subject line")
	require.True(t, ok)
	assert.Equal(t, "id123", id)
}

func TestSelectionID_MultipleDelimiters(t *testing.T) {
	raw := "id123" + FieldDelimiter + "Subject" + FieldDelimiter + "alice@example.org"
	id, ok := SelectionID(raw)
	require.True(t, ok)
	assert.Equal(t, "id123", id)
}

func TestSelectionID_MissingDelimiterIsRejected(t *testing.T) {
	_, ok := SelectionID("no delimiter here")
	assert.False(t, ok)
}

func TestRecord_Text(t *testing.T) {
	r := Record{Raw: "id123" + FieldDelimiter + "Subject line"}
	text, ok := r.Text()
	require.True(t, ok)
	assert.Equal(t, "Subject line", text)
}

func TestRecord_Text_UnrenderableWithoutDelimiter(t *testing.T) {
	r := Record{Raw: "just one field"}
	_, ok := r.Text()
	assert.False(t, ok)
}

func TestFieldSpec(t *testing.T) {
	spec := NewFieldSpec("i", "s", "f")
	assert.Equal(t, "i", spec.IDKey())
	assert.Equal(t, []string{"i", "s", "f"}, spec.Keys())
	assert.Equal(t, "i"+FieldDelimiter+"s"+FieldDelimiter+"f", spec.String())

	assert.Empty(t, FieldSpec{}.IDKey())
}

func TestCandidate_Notice(t *testing.T) {
	notice := NoticeCandidate("error code 127")
	assert.True(t, notice.IsNotice())

	rec := RecordCandidate(Record{ID: "id123"})
	assert.False(t, rec.IsNotice())
	assert.Equal(t, "id123", rec.Record.ID)
}
