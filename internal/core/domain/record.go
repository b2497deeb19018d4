package domain

import "strings"

// FieldDelimiter separates fields within a record's textual rendering.
// Two INVISIBLE SEPARATOR characters (U+2063) are exceedingly unlikely to
// occur in subjects or addresses, unlike ordinary whitespace.
const FieldDelimiter = "⁣⁣"

// FieldSpec is the ordered list of record fields requested from the search
// tool. The first key is the stable identifier field; the second is the
// free-text field shown to the user.
type FieldSpec struct {
	keys []string
}

// NewFieldSpec creates a field spec from ordered plist keys.
// At least two keys (identifier and free text) are expected.
func NewFieldSpec(keys ...string) FieldSpec {
	return FieldSpec{keys: keys}
}

// Keys returns the ordered field keys.
func (f FieldSpec) Keys() []string {
	return f.keys
}

// IDKey returns the identifier field key, or "" for an empty spec.
func (f FieldSpec) IDKey() string {
	if len(f.keys) == 0 {
		return ""
	}
	return f.keys[0]
}

// String renders the spec as passed to the tool's --fields flag: the keys
// joined by the reserved delimiter.
func (f FieldSpec) String() string {
	return strings.Join(f.keys, FieldDelimiter)
}

// Record is one decoded search result. Identity is defined by ID; Fields
// holds every key/value pair decoded from the wire; Raw is the requested
// field values in spec order, joined by the reserved delimiter, ready for
// display and selection resolution.
type Record struct {
	ID     string
	Fields map[string]string
	Raw    string
}

// Field returns the named field value, or "" when absent.
func (r Record) Field(key string) string {
	return r.Fields[key]
}

// Text returns the free-text portion of the record: everything after the
// first delimiter in Raw. The second return is false when the record cannot
// be split into at least two fields, in which case it is unrenderable.
func (r Record) Text() (string, bool) {
	_, text, ok := strings.Cut(r.Raw, FieldDelimiter)
	return text, ok
}

// SelectionID extracts the stable identifier from a raw selected value: the
// substring preceding the first field delimiter. It returns false when the
// value contains no delimiter, which violates the selection contract.
func SelectionID(raw string) (string, bool) {
	id, _, ok := strings.Cut(raw, FieldDelimiter)
	if !ok {
		return "", false
	}
	return id, true
}

// Candidate is one entry of the live candidate list. It is either a decoded
// Record or a synthetic notice (placeholder prompt, failure message) that
// occupies the list in the record's place.
type Candidate struct {
	Record Record
	Notice string
}

// RecordCandidate wraps a decoded record as a candidate.
func RecordCandidate(r Record) Candidate {
	return Candidate{Record: r}
}

// NoticeCandidate creates a synthetic, non-actionable candidate.
func NoticeCandidate(msg string) Candidate {
	return Candidate{Notice: msg}
}

// IsNotice reports whether the candidate is synthetic.
func (c Candidate) IsNotice() bool {
	return c.Notice != ""
}
