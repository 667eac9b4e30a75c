package clap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchesSingleValue(t *testing.T) {
	m := newArgMatches()
	m.setValue("config", "a.conf", SourceCommandLine)

	v, ok := m.GetOne("config")
	if !ok || v != "a.conf" {
		t.Fatalf("GetOne = %v, %v", v, ok)
	}
	if got := m.GetString("config"); got != "a.conf" {
		t.Fatalf("GetString = %q", got)
	}
	if src, ok := m.Source("config"); !ok || src != SourceCommandLine {
		t.Fatalf("Source = %v, %v", src, ok)
	}
	if !m.Contains("config") || m.Contains("other") {
		t.Fatal("Contains wrong")
	}
}

func TestMatchesLastWriterWins(t *testing.T) {
	m := newArgMatches()
	m.setValue("config", "first", SourceDefault)
	m.setValue("config", "second", SourceCommandLine)

	if v, _ := m.GetOne("config"); v != "second" {
		t.Fatalf("GetOne = %v", v)
	}
	if len(m.GetRaw("config")) != 1 {
		t.Fatal("set must replace, not accumulate")
	}
}

func TestMatchesAppendPreservesOrder(t *testing.T) {
	m := newArgMatches()
	m.appendValue("include", "a", SourceCommandLine)
	m.appendValue("include", "b", SourceCommandLine)
	m.appendValue("include", "c", SourceCommandLine)

	if diff := cmp.Diff([]any{"a", "b", "c"}, m.GetMany("include")); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchesGetOneOr(t *testing.T) {
	m := newArgMatches()
	if got := m.GetOneOr("missing", "fallback"); got != "fallback" {
		t.Fatalf("GetOneOr = %v", got)
	}
	m.setValue("present", "real", SourceCommandLine)
	if got := m.GetOneOr("present", "fallback"); got != "real" {
		t.Fatalf("GetOneOr = %v", got)
	}
}

func TestMatchesFlagCounts(t *testing.T) {
	m := newArgMatches()
	m.incrementFlag("verbose")
	m.incrementFlag("verbose")
	m.incrementFlag("verbose")

	if m.GetCount("verbose") != 3 {
		t.Fatalf("GetCount = %d", m.GetCount("verbose"))
	}
	if !m.Flag("verbose") || m.Flag("quiet") {
		t.Fatal("Flag wrong")
	}
}

func TestMatchesSetFalseStillPresent(t *testing.T) {
	m := newArgMatches()
	m.setFlag("color", false)
	if m.Flag("color") {
		t.Fatal("toggled-off flag should read false")
	}
	if !m.Contains("color") {
		t.Fatal("toggled-off flag should still be present")
	}
}

func TestMatchesSubcommand(t *testing.T) {
	child := newArgMatches()
	child.setValue("name", "proj", SourceCommandLine)
	m := newArgMatches()
	m.setSubcommand("init", child)

	name, got, ok := m.Subcommand()
	if !ok || name != "init" || got != child {
		t.Fatal("Subcommand wrong")
	}
	if m.SubcommandName() != "init" {
		t.Fatal("SubcommandName wrong")
	}
	if m.SubcommandMatches() != child || m.SubcommandMatches("init") != child {
		t.Fatal("SubcommandMatches wrong")
	}
	if m.SubcommandMatches("other") != nil {
		t.Fatal("SubcommandMatches should check the name")
	}
}

func TestMatchesIDsInsertionOrder(t *testing.T) {
	m := newArgMatches()
	m.setValue("b", 1, SourceCommandLine)
	m.incrementFlag("a")
	m.setValue("b", 2, SourceCommandLine)
	m.appendValue("c", 3, SourceCommandLine)

	if diff := cmp.Diff([]string{"b", "a", "c"}, m.IDs()); diff != "" {
		t.Fatalf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchesEmpty(t *testing.T) {
	m := newArgMatches()
	if !m.Empty() {
		t.Fatal("fresh matches should be empty")
	}
	m.addTrailing("x")
	if m.Empty() {
		t.Fatal("trailing tokens count as content")
	}
}

func TestMatchesTrailingVerbatim(t *testing.T) {
	m := newArgMatches()
	m.addTrailing("-a", "--b", "c")
	if diff := cmp.Diff([]string{"-a", "--b", "c"}, m.Trailing()); diff != "" {
		t.Fatalf("trailing mismatch (-want +got):\n%s", diff)
	}
}
