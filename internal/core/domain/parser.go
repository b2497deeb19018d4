package domain

import "strings"

// StreamParser decodes records incrementally from a growing byte stream.
// The search tool emits records back-to-back as s-expression property
// lists, e.g. `(:i "msgid" :s "subject")`. The parser owns an append-only
// buffer and a parse cursor; Next yields the maximal sequence of complete
// records and leaves any truncated tail untouched for a later call.
//
// The cursor never decreases and never passes the last fully-formed record,
// so parsing is idempotent under arbitrary chunking of the input. A region
// that does not begin a well-formed record stops parsing with the cursor
// preserved: truncated streaming input is expected, never an error.
type StreamParser struct {
	spec   FieldSpec
	buf    []byte
	cursor int
}

// NewStreamParser creates a parser that materialises records according to
// the given field spec.
func NewStreamParser(spec FieldSpec) *StreamParser {
	return &StreamParser{spec: spec}
}

// Write appends a chunk of process output to the buffer.
func (p *StreamParser) Write(chunk []byte) {
	p.buf = append(p.buf, chunk...)
}

// Cursor returns the offset of the first unconsumed byte.
func (p *StreamParser) Cursor() int {
	return p.cursor
}

// Len returns the total number of buffered bytes.
func (p *StreamParser) Len() int {
	return len(p.buf)
}

// Next returns all complete records available from the cursor onward and
// advances the cursor past exactly the bytes consumed. A complete record
// that lacks the identifier field is skipped silently; the cursor still
// advances past it. Anything that is not a record at the current position
// ends the scan with the cursor unchanged, abandoning the rest of the
// buffer until more output arrives. Resynchronisation at a later plausible
// record boundary is deliberately not attempted.
func (p *StreamParser) Next() []Record {
	var out []Record
	for {
		fields, n, ok := parseSexpRecord(p.buf[p.cursor:])
		if !ok {
			return out
		}
		p.cursor += n
		if rec, ok := p.materialise(fields); ok {
			out = append(out, rec)
		}
	}
}

// materialise builds a Record from decoded plist fields. Records without
// the identifier field are treated as absent.
func (p *StreamParser) materialise(fields map[string]string) (Record, bool) {
	id := fields[p.spec.IDKey()]
	if id == "" {
		return Record{}, false
	}
	values := make([]string, 0, len(p.spec.Keys()))
	for _, key := range p.spec.Keys() {
		values = append(values, fields[key])
	}
	return Record{
		ID:     id,
		Fields: fields,
		Raw:    strings.Join(values, FieldDelimiter),
	}, true
}

// parseSexpRecord decodes one property-list record from the start of b,
// skipping leading whitespace. It returns the key/value pairs found at the
// top level, the number of bytes consumed, and whether a complete record
// was present. ok is false both for a truncated record and for input that
// does not begin with a record; callers cannot and need not distinguish.
func parseSexpRecord(b []byte) (map[string]string, int, bool) {
	i := skipSpace(b, 0)
	if i >= len(b) || b[i] != '(' {
		return nil, 0, false
	}
	fields := make(map[string]string)
	pendingKey := ""
	depth := 1
	i++

	for {
		i = skipSpace(b, i)
		if i >= len(b) {
			return nil, 0, false
		}
		switch b[i] {
		case ')':
			depth--
			i++
			if depth == 0 {
				return fields, i, true
			}
		case '(':
			depth++
			i++
		case '"':
			val, next, ok := parseString(b, i)
			if !ok {
				return nil, 0, false
			}
			i = next
			if depth == 1 && pendingKey != "" {
				fields[pendingKey] = val
				pendingKey = ""
			}
		default:
			tok, next, ok := parseAtom(b, i)
			if !ok {
				return nil, 0, false
			}
			i = next
			if depth != 1 {
				continue
			}
			if strings.HasPrefix(tok, ":") {
				pendingKey = tok[1:]
			} else if pendingKey != "" {
				fields[pendingKey] = tok
				pendingKey = ""
			}
		}
	}
}

// parseString decodes a double-quoted string starting at b[i] and returns
// the unescaped value and the index just past the closing quote. ok is
// false when the string is unterminated within the buffer.
func parseString(b []byte, i int) (string, int, bool) {
	var sb strings.Builder
	for j := i + 1; j < len(b); j++ {
		switch b[j] {
		case '\\':
			if j+1 >= len(b) {
				return "", 0, false
			}
			j++
			sb.WriteByte(b[j])
		case '"':
			return sb.String(), j + 1, true
		default:
			sb.WriteByte(b[j])
		}
	}
	return "", 0, false
}

// parseAtom scans a bare token (keyword, symbol, or number) starting at
// b[i]. An atom running to the end of the buffer may be truncated, so ok is
// false until a terminator is seen.
func parseAtom(b []byte, i int) (string, int, bool) {
	j := i
	for j < len(b) && !isAtomEnd(b[j]) {
		j++
	}
	if j >= len(b) {
		return "", 0, false
	}
	return string(b[i:j]), j, true
}

func isAtomEnd(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}
