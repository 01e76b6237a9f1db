// Package letter holds the immutable letter records shown in the gallery.
package letter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"openwhen/internal/color"

	"github.com/pelletier/go-toml/v2"
)

//go:embed letters.toml
var defaultLetters []byte

// ErrInvalidLetter is wrapped by every validation failure.
var ErrInvalidLetter = errors.New("invalid letter")

// Record is one letter. Records are built once at startup and never mutated.
type Record struct {
	ID          int    `toml:"id"`
	Title       string `toml:"title"`
	AccentColor string `toml:"accent_color"`
	Message     string `toml:"message"`
	StampAsset  string `toml:"stamp,omitempty"` // empty means no stamp
}

// HasStamp reports whether a stamp should be drawn.
func (r Record) HasStamp() bool {
	return r.StampAsset != ""
}

// Palette derives the envelope shading from the accent colour.
func (r Record) Palette() (color.Palette, error) {
	return color.NewPalette(r.AccentColor)
}

// Validate checks a single record. Colour problems wrap color.ErrInvalidColorFormat.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: letter %d: empty title", ErrInvalidLetter, r.ID)
	}
	if err := color.Validate(r.AccentColor); err != nil {
		return fmt.Errorf("%w: letter %d: %w", ErrInvalidLetter, r.ID, err)
	}
	return nil
}

// file is the on-disk layout: a list of [[letter]] tables.
type file struct {
	Letters []Record `toml:"letter"`
}

// Set is an ordered, validated list of records.
type Set []Record

// Validate checks every record and that ids are unique.
func (s Set) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no letters", ErrInvalidLetter)
	}
	seen := make(map[int]bool, len(s))
	for _, r := range s {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidLetter, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// ByID returns the record with the given id.
func (s Set) ByID(id int) (Record, bool) {
	for _, r := range s {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Parse decodes and validates a TOML letters document.
func Parse(data []byte) (Set, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode letters: %w", err)
	}
	set := make(Set, len(f.Letters))
	for i, r := range f.Letters {
		r.Title = strings.TrimSpace(r.Title)
		r.Message = strings.TrimRight(r.Message, " \t\r\n")
		r.StampAsset = strings.TrimSpace(r.StampAsset)
		set[i] = r
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Load reads a letters file from disk.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read letters %q: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Defaults returns the compiled-in letters.
func Defaults() Set {
	set, err := Parse(defaultLetters)
	if err != nil {
		panic(fmt.Sprintf("embedded letters: %v", err))
	}
	return set
}

// LoadOrDefault loads path, or returns Defaults when path is empty.
func LoadOrDefault(path string) (Set, error) {
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}
