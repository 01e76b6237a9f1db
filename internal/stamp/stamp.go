// Package stamp turns a letter's stamp asset identifier into something the
// terminal can draw.
//
// Terminals cannot show the stamp images themselves, so each asset is mapped
// to a glyph. The mapping hashes the identifier, so a given asset always gets
// the same glyph.
package stamp

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Glyphs are the symbols a stamp may show.
var Glyphs = []string{"❀", "✿", "❤", "★", "☀", "☾", "♫", "✈", "✦", "✉", "♣", "❄"}

// Stamp is a resolved asset.
type Stamp struct {
	Asset string
	Glyph string
	Path  string // resolved file, empty if no asset directory is configured
	Found bool   // Path exists
}

// Resolver maps asset identifiers to stamps. Dir, when set, is where asset
// files are looked up; a missing file still yields a stamp.
type Resolver struct {
	Dir string
}

// Resolve returns the stamp for asset. ok is false when asset is empty, in
// which case no stamp is drawn.
func (r Resolver) Resolve(asset string) (Stamp, bool) {
	if asset == "" {
		return Stamp{}, false
	}
	s := Stamp{Asset: asset, Glyph: GlyphFor(asset)}
	if r.Dir != "" {
		s.Path = filepath.Join(r.Dir, filepath.Clean("/"+asset))
		if info, err := os.Stat(s.Path); err == nil && !info.IsDir() {
			s.Found = true
		}
	}
	return s, true
}

// GlyphFor picks the glyph for an asset identifier.
func GlyphFor(asset string) string {
	return Glyphs[xxhash.Sum64String(asset)%uint64(len(Glyphs))]
}
