package entry

import "strings"

// Line is a tokenized entry line: `keyword = slot ; slot , field ; ...`.
type Line struct {
	Keyword string
	Slots   []Slot
}

// Slot is one `;`-separated group and its `,`-separated fields.
type Slot struct {
	Raw    string
	Fields []string
}

// Empty reports whether the slot holds nothing but whitespace.
func (s Slot) Empty() bool {
	return s.Raw == ""
}

// Slot returns slot i, or an empty slot when the line has fewer slots.
func (l *Line) Slot(i int) Slot {
	if i < len(l.Slots) {
		return l.Slots[i]
	}
	return Slot{}
}

// Tokenize splits one raw line. Blank lines and full-line `#` comments
// yield a nil Line and no error.
func Tokenize(raw string) (*Line, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	keyword, body, ok := strings.Cut(trimmed, "=")
	if !ok {
		return nil, errorf(MalformedLine, "missing '=' separator")
	}
	line := &Line{Keyword: strings.TrimSpace(keyword)}
	for _, part := range strings.Split(body, ";") {
		line.Slots = append(line.Slots, splitSlot(part))
	}
	return line, nil
}

func splitSlot(part string) Slot {
	raw := strings.TrimSpace(part)
	fields := strings.Split(raw, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return Slot{Raw: raw, Fields: fields}
}
