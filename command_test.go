package clap

import "testing"

func TestCommandLookups(t *testing.T) {
	cmd := NewCommand("app").
		Arg(NewArg("config").Short('c').Long("config")).
		Arg(NewArg("verbose").Short('v').Long("verbose").Action(ActionSetTrue)).
		Arg(NewArg("input"))

	if cmd.FindArg("config") == nil || cmd.FindArg("nope") != nil {
		t.Fatal("FindArg wrong")
	}
	if got := cmd.FindArgByShort('c'); got == nil || got.id != "config" {
		t.Fatal("FindArgByShort wrong")
	}
	if got := cmd.FindArgByLong("verbose"); got == nil || got.id != "verbose" {
		t.Fatal("FindArgByLong wrong")
	}
	if cmd.FindArgByShort('z') != nil || cmd.FindArgByLong("zzz") != nil {
		t.Fatal("lookup should miss unknown flags")
	}
}

func TestPositionalAndOptionalSplit(t *testing.T) {
	cmd := NewCommand("app").
		Arg(NewArg("config").Long("config")).
		Arg(NewArg("input")).
		Arg(NewArg("output"))

	positionals := cmd.PositionalArgs()
	if len(positionals) != 2 || positionals[0].id != "input" || positionals[1].id != "output" {
		t.Fatalf("positionals wrong: %v", positionals)
	}
	opts := cmd.OptionalArgs()
	if len(opts) != 1 || opts[0].id != "config" {
		t.Fatalf("optionals wrong: %v", opts)
	}
}

func TestFindSubcommandByAlias(t *testing.T) {
	cmd := NewCommand("app").
		Subcommand(NewCommand("install").Aliases("i", "in").HiddenAliases("inst"))

	for _, name := range []string{"install", "i", "in", "inst"} {
		if sub := cmd.FindSubcommand(name); sub == nil || sub.name != "install" {
			t.Fatalf("FindSubcommand(%q) failed", name)
		}
	}
	if cmd.FindSubcommand("remove") != nil {
		t.Fatal("FindSubcommand should miss unknown names")
	}
}

func TestFullName(t *testing.T) {
	root := NewCommand("app")
	mid := NewCommand("remote").DisplayName("Remote")
	leaf := NewCommand("add")
	root.Subcommand(mid)
	mid.Subcommand(leaf)

	if got := leaf.FullName(); got != "app Remote add" {
		t.Fatalf("FullName = %q", got)
	}
	if got := root.FullName(); got != "app" {
		t.Fatalf("FullName = %q", got)
	}
}

func TestPropagateVersion(t *testing.T) {
	sub := NewCommand("sub")
	NewCommand("app").
		Version("2.0.0").
		Setting(SettingPropagateVersion).
		Subcommand(sub)

	if sub.version != "2.0.0" {
		t.Fatalf("version not propagated, got %q", sub.version)
	}

	pinned := NewCommand("pinned").Version("0.1.0")
	NewCommand("app2").
		Version("2.0.0").
		Setting(SettingPropagateVersion).
		Subcommand(pinned)
	if pinned.version != "0.1.0" {
		t.Fatalf("child version overwritten: %q", pinned.version)
	}
}

func TestBuiltinArgsSynthesis(t *testing.T) {
	cmd := NewCommand("app").Version("1.0")
	cmd.ensureBuiltins()
	if cmd.FindArg("help") == nil || cmd.FindArg("version") == nil {
		t.Fatal("builtins missing")
	}
	if len(cmd.args) != 0 {
		t.Fatal("builtins must not pollute declared args")
	}

	// Idempotent.
	cmd.ensureBuiltins()
	if len(cmd.builtinArgs) != 2 {
		t.Fatalf("builtins duplicated: %d", len(cmd.builtinArgs))
	}
}

func TestBuiltinArgsSuppressed(t *testing.T) {
	cmd := NewCommand("app").Version("1.0").
		Setting(SettingDisableHelpFlag, SettingDisableVersionFlag)
	cmd.ensureBuiltins()
	if len(cmd.builtinArgs) != 0 {
		t.Fatalf("builtins should be suppressed, got %d", len(cmd.builtinArgs))
	}

	// No version string means no version flag either.
	plain := NewCommand("app")
	plain.ensureBuiltins()
	if plain.FindArg("version") != nil {
		t.Fatal("version flag requires a version string")
	}
}

func TestUserHelpArgWinsOverBuiltin(t *testing.T) {
	cmd := NewCommand("app").Arg(NewArg("help").Long("help").Action(ActionSetTrue))
	cmd.ensureBuiltins()
	if len(cmd.builtinArgs) != 0 {
		t.Fatal("user-declared help should suppress the builtin")
	}
}
