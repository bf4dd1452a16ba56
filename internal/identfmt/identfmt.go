// Package identfmt derives the C identifier fragments the Declaration
// Emitter and Driver stitch together: namespace/class lower- and
// upper-case prefixes, and header-guard defines (SPEC_FULL.md §6,
// generator.c's filename_to_define).
//
// Non-ASCII source identifiers are first decomposed and stripped of
// diacritics (NFD + Mn-rune removal) so a name like "Café" sanitizes to
// "CAFE" rather than a sea of underscores — grounded on the teacher's
// direct use of golang.org/x/text/unicode/norm for the same class of
// problem (internal/interp/string_helpers.go, internal/bytecode).
package identfmt

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

func foldASCII(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return folded
}

// ToUpperPrefix renders name as an upper-case C prefix segment followed
// by an underscore, e.g. "Gtk" -> "GTK_".
func ToUpperPrefix(name string) string {
	if name == "" {
		return ""
	}
	return upperCaser.String(foldASCII(name)) + "_"
}

// ToLowerPrefix renders name as a lower-case C prefix segment followed
// by an underscore, e.g. "Gtk" -> "gtk_".
func ToLowerPrefix(name string) string {
	if name == "" {
		return ""
	}
	return lowerCaser.String(foldASCII(name)) + "_"
}

// ToUpper / ToLower render a bare identifier fragment without a trailing
// underscore, e.g. class name "Button" -> "BUTTON" / "button".
func ToUpper(name string) string { return upperCaser.String(foldASCII(name)) }
func ToLower(name string) string { return lowerCaser.String(foldASCII(name)) }

// HeaderGuard derives the `__NAME_H__`-style include-guard macro from a
// header filename's basename: upper-case, non-alphanumeric runs become
// a single underscore (SPEC_FULL.md §6).
func HeaderGuard(headerFilename string) string {
	base := filepath.Base(headerFilename)
	folded := foldASCII(base)

	var sb strings.Builder
	lastWasUnderscore := false
	for _, r := range folded {
		if isAlnumASCII(r) {
			sb.WriteRune(unicode.ToUpper(r))
			lastWasUnderscore = false
			continue
		}
		if !lastWasUnderscore {
			sb.WriteRune('_')
			lastWasUnderscore = true
		}
	}
	return "__" + sb.String() + "__"
}

func isAlnumASCII(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
