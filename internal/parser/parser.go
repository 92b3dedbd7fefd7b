package parser

import (
	"errors"
	"fmt"
	"os"
)

// Parser defines a delimited-text parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) [][]string
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the parsed rows.
// The only error reported is failing to read the file; content never fails.
func ParseFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseBytes(path, data), nil
}

// ParseBytes parses already-loaded content, picking the parser by filename.
// Unknown extensions fall back to comma-delimited parsing.
func ParseBytes(filename string, data []byte) [][]string {
	for _, p := range registry {
		if p.CanParse(filename) {
			return p.Parse(data)
		}
	}
	return ParseCSV(string(data))
}

// ParseFileWith reads path and tokenizes it with explicit options, bypassing
// extension detection.
func ParseFileWith(path string, opt Options) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(string(data), opt), nil
}

// DelimiterFor maps a user-facing delimiter name to a rune.
func DelimiterFor(name string) (rune, error) {
	switch name {
	case "", ",", "comma":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("%w: delimiter %q", ErrUnsupported, name)
	}
}

func init() {
	Register(csvParser{delim: ',', exts: []string{".csv", ".txt"}})
	Register(csvParser{delim: '\t', exts: []string{".tsv", ".tab"}})
}

// ErrUnsupported indicates an option value is not supported.
var ErrUnsupported = errors.New("unsupported")
