package clap

import (
	"fmt"
	"sort"
	"strings"
)

// Setting toggles optional command behavior. Settings without core parsing
// semantics are accepted; the help renderer reads SettingDisableColoredHelp,
// SettingHideAuthor, SettingHidePossibleValues and SettingSubcommandRequired,
// and the remaining ones have no effect.
type Setting int

const (
	SettingPropagateVersion Setting = iota
	SettingSubcommandRequired
	SettingAllowExternalSubcommands
	SettingSubcommandPrecedenceOverArg
	SettingHideAuthor
	SettingArgRequiredElseHelp
	SettingDisableHelpFlag
	SettingDisableVersionFlag
	SettingDisableColoredHelp
	SettingDeriveDisplayOrder
	SettingAllowHyphenValues
	SettingAllowNegativeNumbers
	SettingIgnoreErrors
	SettingFlattenHelp
	SettingNextLineHelp
	SettingHidePossibleValues
	SettingDontCollapseArgsInUsage
	SettingInferLongArgs
	SettingInferSubcommands
)

// ActionHandler runs when the command is dispatched with its parsed matches.
type ActionHandler func(*ArgMatches) error

// Command is one node in the CLI tree: it owns its arguments, groups, and
// subcommands. Parents own children through the subcommand list; the parent
// pointer is lookup-only and never forms a cycle. A Command must be treated
// as immutable once parsing starts; it is then safe to share across
// goroutines, each calling GetMatches with its own argv.
type Command struct {
	name          string
	displayName   string
	version       string
	author        string
	about         string
	longAbout     string
	usageOverride string
	beforeHelp    string
	afterHelp     string

	args        []*Arg
	builtinArgs []*Arg
	subcommands []*Command
	groups      []*ArgGroup

	aliases       []string
	hiddenAliases []string

	settings map[Setting]bool
	parent   *Command

	positionalCounter int
	action            ActionHandler
}

// NewCommand starts building a command tree node.
func NewCommand(name string) *Command {
	if name == "" {
		panic("clap.NewCommand: name cannot be empty")
	}
	return &Command{name: name, settings: map[Setting]bool{}}
}

// DisplayName overrides the name shown in usage and full-path output.
func (c *Command) DisplayName(name string) *Command { c.displayName = name; return c }

// Version sets the version string reported by --version.
func (c *Command) Version(v string) *Command { c.version = v; return c }

// Author sets the author line for help output.
func (c *Command) Author(a string) *Command { c.author = a; return c }

// About sets the one-line description.
func (c *Command) About(text string) *Command { c.about = text; return c }

// LongAbout sets the extended description shown in full help.
func (c *Command) LongAbout(text string) *Command { c.longAbout = text; return c }

// UsageOverride replaces the generated usage line.
func (c *Command) UsageOverride(usage string) *Command { c.usageOverride = usage; return c }

// BeforeHelp adds text displayed before the help body.
func (c *Command) BeforeHelp(text string) *Command { c.beforeHelp = text; return c }

// AfterHelp adds text displayed after the help body.
func (c *Command) AfterHelp(text string) *Command { c.afterHelp = text; return c }

// Aliases adds alternate names the command answers to.
func (c *Command) Aliases(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

// HiddenAliases adds alternate names excluded from help output.
func (c *Command) HiddenAliases(names ...string) *Command {
	c.hiddenAliases = append(c.hiddenAliases, names...)
	return c
}

// Setting enables the given settings.
func (c *Command) Setting(settings ...Setting) *Command {
	for _, s := range settings {
		c.settings[s] = true
	}
	return c
}

// UnsetSetting disables the given settings.
func (c *Command) UnsetSetting(settings ...Setting) *Command {
	for _, s := range settings {
		delete(c.settings, s)
	}
	return c
}

func (c *Command) isSet(s Setting) bool { return c.settings[s] }

// Action installs the handler invoked by Run when this command is selected.
func (c *Command) Action(handler ActionHandler) *Command { c.action = handler; return c }

// Arg attaches a built argument. Positional slots declared with an automatic
// index receive the next free slot. Duplicate ids are a construction bug.
func (c *Command) Arg(a *Arg) *Command {
	if c.findDeclaredArg(a.id) != nil {
		panic(fmt.Sprintf("clap.Command.Arg: duplicate arg id %q on command %q", a.id, c.name))
	}
	if a.IsPositional() && a.index == autoIndex {
		a.index = c.positionalCounter
		c.positionalCounter++
	}
	c.args = append(c.args, a)
	return c
}

// ArgWith builds and attaches an argument in one call, for block-style trees.
func (c *Command) ArgWith(id string, build func(*Arg)) *Command {
	a := NewArg(id)
	if build != nil {
		build(a)
	}
	return c.Arg(a)
}

// Subcommand attaches a child command. With SettingPropagateVersion a child
// without its own version inherits this command's.
func (c *Command) Subcommand(sub *Command) *Command {
	sub.parent = c
	if c.isSet(SettingPropagateVersion) {
		if sub.version == "" {
			sub.version = c.version
		}
		sub.settings[SettingPropagateVersion] = true
	}
	c.subcommands = append(c.subcommands, sub)
	return c
}

// Group attaches an argument group.
func (c *Command) Group(g *ArgGroup) *Command {
	c.groups = append(c.groups, g)
	return c
}

// --- Lookups ---

func (c *Command) findDeclaredArg(id string) *Arg {
	for _, a := range c.args {
		if a.id == id {
			return a
		}
	}
	return nil
}

// FindArg returns the argument with the given id, including builtins.
func (c *Command) FindArg(id string) *Arg {
	if a := c.findDeclaredArg(id); a != nil {
		return a
	}
	for _, a := range c.builtinArgs {
		if a.id == id {
			return a
		}
	}
	return nil
}

// FindArgByShort returns the argument answering to the short flag.
func (c *Command) FindArgByShort(ch rune) *Arg {
	for _, a := range c.allArgs() {
		if a.MatchesShort(ch) {
			return a
		}
	}
	return nil
}

// FindArgByLong returns the argument answering to the long flag.
func (c *Command) FindArgByLong(name string) *Arg {
	for _, a := range c.allArgs() {
		if a.MatchesLong(name) {
			return a
		}
	}
	return nil
}

// FindSubcommand returns the child matching name, an alias, or a hidden alias.
func (c *Command) FindSubcommand(name string) *Command {
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub
		}
		for _, alias := range sub.aliases {
			if alias == name {
				return sub
			}
		}
		for _, alias := range sub.hiddenAliases {
			if alias == name {
				return sub
			}
		}
	}
	return nil
}

func (c *Command) allArgs() []*Arg {
	if len(c.builtinArgs) == 0 {
		return c.args
	}
	all := make([]*Arg, 0, len(c.args)+len(c.builtinArgs))
	all = append(all, c.args...)
	all = append(all, c.builtinArgs...)
	return all
}

// PositionalArgs returns the positional arguments sorted by slot index.
func (c *Command) PositionalArgs() []*Arg {
	var positionals []*Arg
	for _, a := range c.args {
		if a.IsPositional() {
			positionals = append(positionals, a)
		}
	}
	sort.SliceStable(positionals, func(i, j int) bool {
		return positionals[i].index < positionals[j].index
	})
	return positionals
}

// OptionalArgs returns the non-positional arguments in declaration order.
func (c *Command) OptionalArgs() []*Arg {
	var opts []*Arg
	for _, a := range c.args {
		if !a.IsPositional() {
			opts = append(opts, a)
		}
	}
	return opts
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// EffectiveName returns the display name when set, else the name.
func (c *Command) EffectiveName() string {
	if c.displayName != "" {
		return c.displayName
	}
	return c.name
}

// FullName returns the space-joined command chain from the root to this node.
func (c *Command) FullName() string {
	var parts []string
	for node := c; node != nil; node = node.parent {
		parts = append(parts, node.EffectiveName())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// GetMatches parses argv against this command tree and validates the result.
// argv must not include the program name.
func (c *Command) GetMatches(argv []string) (*ArgMatches, error) {
	p := newParser(c, nil, nil)
	matches, err := p.parse(argv)
	if err != nil {
		return nil, err
	}
	if err := validate(c, matches); err != nil {
		return nil, err
	}
	return matches, nil
}
