package parser

import (
	"strings"
)

// Options controls tokenizing of delimited text.
type Options struct {
	// Delimiter separates fields. If 0, ',' is used.
	Delimiter rune
}

// DefaultOptions returns comma-delimited options.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

const bom = "\uFEFF"

// ParseCSV tokenizes comma-delimited text. See Parse.
func ParseCSV(text string) [][]string {
	return Parse(text, DefaultOptions())
}

// Parse converts one complete text blob into rows of fields.
//
// Quoting follows RFC 4180: a quote switches the current field into quoted mode,
// where delimiters and line breaks are literal and "" stands for one quote.
// Line breaks may be \n, \r\n or a bare \r. Malformed input never fails: an
// unterminated quote swallows the rest of the text into the current field.
// Blank lines produce no row; a line holding only "" produces one empty field.
// Text is scanned as bytes, so field content that is not valid UTF-8 is kept
// unchanged.
func Parse(text string, opt Options) [][]string {
	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
	}
	sep := string(delim)
	text = strings.TrimPrefix(text, bom)

	var (
		rows    [][]string
		row     []string
		field   strings.Builder
		started bool // a quote was seen in the current field
		quoted  bool
	)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
		started = false
	}
	endRow := func() {
		if len(row) == 0 && field.Len() == 0 && !started {
			return
		}
		endField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if quoted {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				quoted = false
				continue
			}
			field.WriteByte(c)
			continue
		}
		if c == sep[0] && strings.HasPrefix(text[i:], sep) {
			endField()
			i += len(sep) - 1
			continue
		}
		switch c {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		case '\n':
			endRow()
		case '"':
			quoted = true
			started = true
		default:
			field.WriteByte(c)
		}
	}
	endRow()
	return rows
}

type csvParser struct {
	delim rune
	exts  []string
}

func (p csvParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	for _, ext := range p.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (p csvParser) Parse(content []byte) [][]string {
	return Parse(string(content), Options{Delimiter: p.delim})
}
