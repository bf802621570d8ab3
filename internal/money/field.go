package money

import (
	"strconv"
	"strings"
)

// Reformat canonicalizes the raw content of a price field while the user is
// typing: every character except digits is dropped and the last two digits
// are read as centavos, so "1050" and "R$ 10,50" both become "R$ 10,50".
// ok is false when no digit-only interpretation exists.
func Reformat(text string) (canonical string, amount Amount, ok bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, prefix)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", 0, false
		}
	}
	// Enough headroom for any price this application will ever see; longer
	// inputs would overflow int64 centavos.
	if len(s) > 15 {
		return "", 0, false
	}
	cents, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", 0, false
	}
	amount = Amount(cents)
	return Format(amount), amount, true
}

// Field is the live-formatting state of a single price input. Each keystroke
// goes through SetText; when the canonical rendering differs from what the
// widget already shows, SetText reports that a write-back is needed. Writing
// the canonical text back and feeding it into SetText again is a no-op, so
// no notification-suppression mechanism is required around the widget.
type Field struct {
	text   string
	amount Amount
	valid  bool
}

// SetText records the field's new raw content and returns the canonical text
// together with whether the widget must be rewritten to show it.
func (f *Field) SetText(text string) (canonical string, changed bool) {
	canonical, amount, ok := Reformat(text)
	if !ok {
		f.text = text
		f.amount = 0
		f.valid = false
		return text, false
	}
	f.amount = amount
	f.valid = true
	changed = canonical != text
	f.text = canonical
	return canonical, changed
}

// Text returns what the widget should currently display.
func (f *Field) Text() string { return f.text }

// Amount returns the parsed value and whether the field holds one.
func (f *Field) Amount() (Amount, bool) { return f.amount, f.valid }

// LiveTotal derives the read-only total field from the quantity text and the
// unit-price field. Any parse failure blanks the total instead of erroring;
// the submit path is where failures become visible.
func LiveTotal(quantidadeText string, unit *Field) string {
	qty, err := strconv.Atoi(strings.TrimSpace(quantidadeText))
	if err != nil || qty < 1 {
		return ""
	}
	amount, ok := unit.Amount()
	if !ok {
		return ""
	}
	total, err := Total(qty, amount)
	if err != nil {
		return ""
	}
	return Format(total)
}
