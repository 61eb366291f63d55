package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a lexicon YAML file.
//
// Example:
//
//	entries:
//	  - canonical: "बुखार"
//	    category: symptom
//	    variants: ["फीवर", "fever"]
type File struct {
	Entries []Entry `yaml:"entries"`
}

// LoadFile reads and parses a lexicon YAML file from disk.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	l, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: parse %q: %w", path, err)
	}
	return l, nil
}

// LoadFromReader parses lexicon YAML from an io.Reader. The reader is
// consumed entirely; the caller is responsible for closing it.
func LoadFromReader(r io.Reader) (*Lexicon, error) {
	var lf File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown keys to catch typos
	if err := dec.Decode(&lf); err != nil {
		return nil, fmt.Errorf("lexicon: decode yaml: %w", err)
	}
	if len(lf.Entries) == 0 {
		return nil, fmt.Errorf("lexicon: file contains no entries")
	}
	return New(lf.Entries)
}
