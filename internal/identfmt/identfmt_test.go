package identfmt_test

import (
	"testing"

	"github.com/octanelang/octanec/internal/identfmt"
)

func TestPrefixCasing(t *testing.T) {
	if got := identfmt.ToUpperPrefix("Gtk"); got != "GTK_" {
		t.Errorf("ToUpperPrefix(Gtk) = %q, want GTK_", got)
	}
	if got := identfmt.ToLowerPrefix("Gtk"); got != "gtk_" {
		t.Errorf("ToLowerPrefix(Gtk) = %q, want gtk_", got)
	}
	if got := identfmt.ToUpper("Button"); got != "BUTTON" {
		t.Errorf("ToUpper(Button) = %q, want BUTTON", got)
	}
	if got := identfmt.ToLower("Button"); got != "button" {
		t.Errorf("ToLower(Button) = %q, want button", got)
	}
}

func TestPrefixEmptyNameYieldsEmpty(t *testing.T) {
	if got := identfmt.ToUpperPrefix(""); got != "" {
		t.Errorf("ToUpperPrefix(\"\") = %q, want \"\"", got)
	}
	if got := identfmt.ToLowerPrefix(""); got != "" {
		t.Errorf("ToLowerPrefix(\"\") = %q, want \"\"", got)
	}
}

// TestPrefixStripsDiacritics confirms non-ASCII source identifiers fold
// to their ASCII skeleton rather than producing underscore runs.
func TestPrefixStripsDiacritics(t *testing.T) {
	if got := identfmt.ToUpperPrefix("Café"); got != "CAFE_" {
		t.Errorf("ToUpperPrefix(Café) = %q, want CAFE_", got)
	}
}

func TestHeaderGuardCollapsesNonAlnumRuns(t *testing.T) {
	if got := identfmt.HeaderGuard("counter.h"); got != "__COUNTER_H__" {
		t.Errorf("HeaderGuard(counter.h) = %q, want __COUNTER_H__", got)
	}
	if got := identfmt.HeaderGuard("path/to/my-widget.v2.h"); got != "__MY_WIDGET_V2_H__" {
		t.Errorf("HeaderGuard(my-widget.v2.h) = %q, want __MY_WIDGET_V2_H__", got)
	}
}

func TestHeaderGuardUsesBasenameOnly(t *testing.T) {
	withDir := identfmt.HeaderGuard("/generated/app/counter.h")
	bare := identfmt.HeaderGuard("counter.h")
	if withDir != bare {
		t.Errorf("HeaderGuard should ignore directory components: %q != %q", withDir, bare)
	}
}
