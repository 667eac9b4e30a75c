package clap

import "fmt"

// Action determines what binding a value or encountering a flag does.
type Action int

const (
	// ActionSet stores the value, replacing any previous one.
	ActionSet Action = iota
	// ActionAppend accumulates values across occurrences.
	ActionAppend
	// ActionSetTrue marks the flag on.
	ActionSetTrue
	// ActionSetFalse marks the flag off while still recording presence.
	ActionSetFalse
	// ActionCount increments a counter per occurrence, e.g. -vvv.
	ActionCount
	// ActionHelp renders help and aborts the parse with a display condition.
	ActionHelp
	// ActionVersion renders the version line and aborts likewise.
	ActionVersion
)

// IsFlagAction reports whether the action consumes no value tokens.
func (a Action) IsFlagAction() bool {
	switch a {
	case ActionSetTrue, ActionSetFalse, ActionCount, ActionHelp, ActionVersion:
		return true
	}
	return false
}

// ValueHint describes the kind of value an argument expects. Display only.
type ValueHint int

const (
	HintNone ValueHint = iota
	HintAnyPath
	HintFilePath
	HintDirPath
	HintExecutablePath
	HintCommandName
	HintHostname
	HintURL
	HintUsername
	HintEmail
)

// autoIndex marks a positional slot awaiting assignment at attach time.
const autoIndex = -1

type requiredIfPair struct {
	argID string
	value string
}

// Arg statically describes one option, flag, or positional slot. Build one
// with NewArg, chain setters, and attach it to a Command; after attachment it
// must be treated as immutable.
type Arg struct {
	id    string
	short rune
	long  string
	index int

	required bool
	global   bool
	hidden   bool

	help                string
	defaultValue        string
	hasDefault          bool
	defaultMissingValue string
	hasDefaultMissing   bool
	envVar              string

	numArgs        ValueRange
	valueDelimiter rune
	valueNames     []string
	action         Action
	parser         ValueParser
	hint           ValueHint

	conflicts      []string
	requires       []string
	requiredUnless []string
	requiredIf     []requiredIfPair
	groups         []string

	allowMultiple      bool
	hidePossibleValues bool
	hideDefaultValue   bool
}

// NewArg starts building an argument with the given id. The id is the stable
// key used in match lookups and cross-argument references.
func NewArg(id string) *Arg {
	if id == "" {
		panic("clap.NewArg: id cannot be empty")
	}
	return &Arg{
		id:      id,
		index:   autoIndex,
		numArgs: RangeOne,
		parser:  StringParser{},
	}
}

// Short sets the single-character flag, e.g. 'v' for -v.
func (a *Arg) Short(c rune) *Arg { a.short = c; return a }

// Long sets the long flag name without dashes, e.g. "verbose" for --verbose.
func (a *Arg) Long(name string) *Arg { a.long = name; return a }

// Index pins a positional slot. Pass -1 (the construction default) to have the
// owning command assign the next free slot at attach time.
func (a *Arg) Index(i int) *Arg {
	if i < autoIndex {
		panic(fmt.Sprintf("clap.Arg.Index: invalid index %d", i))
	}
	a.index = i
	return a
}

// Help sets the one-line description shown in help output.
func (a *Arg) Help(text string) *Arg { a.help = text; return a }

// Required makes the argument mandatory.
func (a *Arg) Required(required bool) *Arg { a.required = required; return a }

// Global makes the binding visible to subcommand parsers.
func (a *Arg) Global(global bool) *Arg { a.global = global; return a }

// Hidden excludes the argument from help output.
func (a *Arg) Hidden(hidden bool) *Arg { a.hidden = hidden; return a }

// Default supplies a value used when nothing binds from argv or environment.
func (a *Arg) Default(value string) *Arg {
	a.defaultValue = value
	a.hasDefault = true
	return a
}

// DefaultMissing supplies the value used when the option appears with no
// attached token, e.g. --color with DefaultMissing("always").
func (a *Arg) DefaultMissing(value string) *Arg {
	a.defaultMissingValue = value
	a.hasDefaultMissing = true
	return a
}

// Env names an environment variable consulted when argv does not bind one.
func (a *Arg) Env(name string) *Arg { a.envVar = name; return a }

// NumArgs constrains how many raw tokens may bind.
func (a *Arg) NumArgs(r ValueRange) *Arg { a.numArgs = r; return a }

// ValueDelimiter splits each bound token on the delimiter before parsing,
// so --include a,b,c yields three values.
func (a *Arg) ValueDelimiter(d rune) *Arg { a.valueDelimiter = d; return a }

// ValueNames sets display names for the value slots in help output.
func (a *Arg) ValueNames(names ...string) *Arg {
	a.valueNames = append([]string{}, names...)
	return a
}

// Action selects what binding does. Flag actions force a zero value range.
func (a *Arg) Action(action Action) *Arg {
	a.action = action
	if action.IsFlagAction() {
		a.numArgs = RangeZero
	}
	return a
}

// Parser sets the value parser. The default is StringParser.
func (a *Arg) Parser(p ValueParser) *Arg {
	if p == nil {
		panic("clap.Arg.Parser: parser cannot be nil")
	}
	a.parser = p
	return a
}

// Hint records the expected value kind for help output.
func (a *Arg) Hint(h ValueHint) *Arg { a.hint = h; return a }

// ConflictsWith declares args that may not appear together with this one.
func (a *Arg) ConflictsWith(ids ...string) *Arg {
	a.conflicts = append(a.conflicts, ids...)
	return a
}

// Requires declares args that must appear whenever this one does.
func (a *Arg) Requires(ids ...string) *Arg {
	a.requires = append(a.requires, ids...)
	return a
}

// RequiredUnless makes the argument mandatory unless one of ids is present.
func (a *Arg) RequiredUnless(ids ...string) *Arg {
	a.requiredUnless = append(a.requiredUnless, ids...)
	return a
}

// RequiredIf makes the argument mandatory when argID was bound to value.
func (a *Arg) RequiredIf(argID, value string) *Arg {
	a.requiredIf = append(a.requiredIf, requiredIfPair{argID: argID, value: value})
	return a
}

// Group adds the argument to the named groups.
func (a *Arg) Group(ids ...string) *Arg {
	a.groups = append(a.groups, ids...)
	return a
}

// AllowMultiple lets a positional keep collecting tokens greedily.
func (a *Arg) AllowMultiple(allow bool) *Arg { a.allowMultiple = allow; return a }

// HidePossibleValues suppresses the accepted-values list in help output.
func (a *Arg) HidePossibleValues(hide bool) *Arg { a.hidePossibleValues = hide; return a }

// HideDefaultValue suppresses the default in help output.
func (a *Arg) HideDefaultValue(hide bool) *Arg { a.hideDefaultValue = hide; return a }

// --- Queries ---

// ID returns the stable key.
func (a *Arg) ID() string { return a.id }

// IsPositional reports whether the argument binds by position rather than by
// flag. Positionals have neither a short nor a long name.
func (a *Arg) IsPositional() bool { return a.short == 0 && a.long == "" }

// IsFlag reports whether the argument consumes no value tokens.
func (a *Arg) IsFlag() bool { return a.action.IsFlagAction() }

// TakesValue reports whether at least one token may bind.
func (a *Arg) TakesValue() bool { return !a.IsFlag() && (a.numArgs.unbounded || a.numArgs.max > 0) }

// DisplayName renders the argument for error and help text: the long form
// when present, then the short form, then the bare id.
func (a *Arg) DisplayName() string {
	switch {
	case a.long != "":
		return "--" + a.long
	case a.short != 0:
		return "-" + string(a.short)
	default:
		return "<" + a.id + ">"
	}
}

// MatchesName reports whether name equals the id, long, or short form.
func (a *Arg) MatchesName(name string) bool {
	return name == a.id || (a.long != "" && name == a.long) ||
		(a.short != 0 && name == string(a.short))
}

// MatchesShort reports whether c is this argument's short flag.
func (a *Arg) MatchesShort(c rune) bool { return a.short != 0 && a.short == c }

// MatchesLong reports whether name is this argument's long flag.
func (a *Arg) MatchesLong(name string) bool { return a.long != "" && a.long == name }
