package params

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const escape = '\\'

// ErrInvalidDialect is returned by Dialect.Validate.
var ErrInvalidDialect = errors.New("invalid dialect")

// Dialect describes how positional arguments are laid out in a single line of text.
//
// Fields are separated by Delimiter. A field may be enclosed in Quote characters, in
// which case a backslash escapes the following character and the field is taken
// verbatim. Unquoted fields are trimmed of surrounding whitespace. An empty string holds
// no fields at all, while a trailing delimiter introduces an empty last field.
type Dialect struct {
	Delimiter rune
	Quote     rune
}

// DefaultDialect is the comma separated dialect with double quotes.
var DefaultDialect = Dialect{Delimiter: ',', Quote: '"'}

func (d Dialect) normalize() Dialect {
	if d.Delimiter == 0 {
		d.Delimiter = DefaultDialect.Delimiter
	}
	if d.Quote == 0 {
		d.Quote = DefaultDialect.Quote
	}

	return d
}

// Validate reports whether fields joined with d split back unchanged. The delimiter and
// the quote must be distinct valid characters, and neither may be the backslash that
// escapes characters inside quoted fields. Zero fields take their defaults first.
func (d Dialect) Validate() error {
	d = d.normalize()

	switch {
	case d.Delimiter == utf8.RuneError || !utf8.ValidRune(d.Delimiter):
		return fmt.Errorf("%w: delimiter %q is not a valid character", ErrInvalidDialect, d.Delimiter)
	case d.Quote == utf8.RuneError || !utf8.ValidRune(d.Quote):
		return fmt.Errorf("%w: quote %q is not a valid character", ErrInvalidDialect, d.Quote)
	case d.Delimiter == escape || d.Quote == escape:
		return fmt.Errorf("%w: %q is reserved for escaping", ErrInvalidDialect, escape)
	case d.Delimiter == d.Quote:
		return fmt.Errorf("%w: delimiter and quote must differ", ErrInvalidDialect)
	}

	return nil
}

// Split breaks s into fields. Bytes that are not valid UTF-8 are carried into the
// fields unchanged.
func (d Dialect) Split(s string) []string {
	if s == "" {
		return nil
	}

	d = d.normalize()

	var fields []string
	for i := 0; ; {
		j := i
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if r == d.Delimiter || !unicode.IsSpace(r) {
				break
			}
			j += size
		}

		var field string
		if r, size := utf8.DecodeRuneInString(s[j:]); j < len(s) && r == d.Quote {
			field, j = d.readQuoted(s, j+size)
		}

		end := len(s)
		if k := strings.IndexRune(s[j:], d.Delimiter); k >= 0 {
			end = j + k
		}
		// Anything between a closing quote and the delimiter is kept.
		field += strings.TrimSpace(s[j:end])

		fields = append(fields, field)

		if end >= len(s) {
			break
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		i = end + size
	}

	return fields
}

// readQuoted reads a quoted field starting at byte offset i, right after the opening
// quote, and returns it with the offset following the closing quote. An unterminated
// field runs to the end.
func (d Dialect) readQuoted(s string, i int) (string, int) {
	var sb strings.Builder
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == escape && i+size < len(s):
			i += size
			_, n := utf8.DecodeRuneInString(s[i:])
			sb.WriteString(s[i : i+n])
			i += n
		case r == d.Quote:
			return sb.String(), i + size
		default:
			sb.WriteString(s[i : i+size])
			i += size
		}
	}

	return sb.String(), i
}

// Join renders fields so that Split restores them, quoting only where needed.
func (d Dialect) Join(fields []string) string {
	d = d.normalize()

	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteRune(d.Delimiter)
		}
		if !d.needsQuote(f) {
			sb.WriteString(f)
			continue
		}

		sb.WriteRune(d.Quote)
		for k := 0; k < len(f); {
			r, size := utf8.DecodeRuneInString(f[k:])
			if r == d.Quote || r == escape {
				sb.WriteRune(escape)
			}
			sb.WriteString(f[k : k+size])
			k += size
		}
		sb.WriteRune(d.Quote)
	}

	return sb.String()
}

func (d Dialect) needsQuote(f string) bool {
	if f == "" {
		return true
	}

	if strings.ContainsFunc(f, func(r rune) bool {
		return r == d.Delimiter || r == d.Quote || r == escape
	}) {
		return true
	}

	first, _ := utf8.DecodeRuneInString(f)
	last, _ := utf8.DecodeLastRuneInString(f)

	return unicode.IsSpace(first) || unicode.IsSpace(last)
}
