package help

import (
	"strings"
	"testing"
)

func sample() *Content {
	return &Content{
		Name:    "app",
		Version: "1.0.0",
		About:   "Does things",
		Usage:   "app [OPTIONS] <INPUT>",
		Positionals: []Positional{
			{Name: "INPUT", Desc: "Input file", Required: true},
			{Name: "OUTPUT", Desc: "Output file"},
		},
		Options: []Flag{
			{Long: "config", Short: "c", Placeholder: "FILE", Desc: "Config file", Extra: "[default: app.conf]"},
			{Long: "verbose", Desc: "More output"},
			{Short: "q", Desc: "Less output"},
		},
		Subcommands: []Subcommand{
			{Name: "init", Aliases: []string{"i"}, Desc: "Create a project"},
		},
	}
}

func TestRenderPlain(t *testing.T) {
	text := Render(sample(), PlainStyles())

	for _, want := range []string{
		"app 1.0.0",
		"Does things",
		"Usage: app [OPTIONS] <INPUT>",
		"Arguments:",
		"<INPUT>",
		"[OUTPUT]",
		"Options:",
		"-c, --config <FILE>",
		"Config file [default: app.conf]",
		"    --verbose",
		"-q",
		"Commands:",
		"init, i",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered help missing %q:\n%s", want, text)
		}
	}
}

func TestRenderColumnsAligned(t *testing.T) {
	text := Render(sample(), PlainStyles())

	var configCol, verboseCol int
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, "Config file"); idx >= 0 {
			configCol = idx
		}
		if idx := strings.Index(line, "More output"); idx >= 0 {
			verboseCol = idx
		}
	}
	if configCol == 0 || verboseCol == 0 {
		t.Fatalf("descriptions not found:\n%s", text)
	}
	if configCol != verboseCol {
		t.Fatalf("descriptions misaligned: %d vs %d\n%s", configCol, verboseCol, text)
	}
}

func TestRenderStyledAlignmentIgnoresEscapes(t *testing.T) {
	styled := Render(sample(), DefaultStyles())
	if !strings.Contains(styled, "Usage:") {
		t.Fatalf("styled render broken:\n%s", styled)
	}

	var configCol, verboseCol int
	for _, line := range strings.Split(styled, "\n") {
		if idx := strings.Index(line, "Config file"); idx >= 0 {
			configCol = visibleWidth(line[:idx])
		}
		if idx := strings.Index(line, "More output"); idx >= 0 {
			verboseCol = visibleWidth(line[:idx])
		}
	}
	if configCol == 0 || verboseCol == 0 {
		t.Fatalf("descriptions not found:\n%s", styled)
	}
	if configCol != verboseCol {
		t.Fatalf("styled descriptions misaligned: %d vs %d\n%s", configCol, verboseCol, styled)
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	text := Render(&Content{Name: "bare", Usage: "bare"}, PlainStyles())
	for _, absent := range []string{"Arguments:", "Options:", "Commands:"} {
		if strings.Contains(text, absent) {
			t.Fatalf("empty section %q rendered:\n%s", absent, text)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	if got := visibleWidth("plain"); got != 5 {
		t.Fatalf("visibleWidth = %d", got)
	}
	if got := visibleWidth("\x1b[1mbold\x1b[0m"); got != 4 {
		t.Fatalf("visibleWidth with escapes = %d", got)
	}
}
