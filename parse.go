package clap

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/IxDay/clap/internal/flags"
)

// parser walks one argument vector against one command. Subcommand tokens
// spawn a fresh parser seeded with the globals matched so far.
type parser struct {
	cmd     *Command
	matches *ArgMatches

	positionalIndex int
	trailingMode    bool
	current         *Arg
	pending         []string

	inheritedValues map[string][]MatchedValue
	inheritedFlags  map[string]int
}

func newParser(cmd *Command, inheritedValues map[string][]MatchedValue, inheritedFlags map[string]int) *parser {
	return &parser{
		cmd:             cmd,
		matches:         newArgMatches(),
		inheritedValues: inheritedValues,
		inheritedFlags:  inheritedFlags,
	}
}

func (p *parser) parse(argv []string) (*ArgMatches, error) {
	p.cmd.ensureBuiltins()
	p.seedInherited()
	if err := p.applyDefaults(); err != nil {
		return nil, err
	}
	if err := p.applyEnv(); err != nil {
		return nil, err
	}

	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case p.trailingMode:
			p.matches.addTrailing(tok)

		case tok == "--":
			if err := p.flush(); err != nil {
				return nil, err
			}
			p.trailingMode = true

		case strings.HasPrefix(tok, "--"):
			if err := p.flush(); err != nil {
				return nil, err
			}
			if err := p.parseLong(tok); err != nil {
				return nil, err
			}

		case strings.HasPrefix(tok, "-") && len(tok) > 1 && !p.isNegativeNumber(tok):
			if err := p.flush(); err != nil {
				return nil, err
			}
			if err := p.parseShortCluster(tok); err != nil {
				return nil, err
			}

		case p.current != nil:
			p.pending = append(p.pending, tok)
			if max, bounded := p.current.numArgs.Max(); bounded && len(p.pending) >= max {
				if err := p.flush(); err != nil {
					return nil, err
				}
			}

		default:
			consumedAll, err := p.parsePositionalOrSub(tok, argv[i+1:])
			if err != nil {
				return nil, err
			}
			if consumedAll {
				i = len(argv)
			}
		}
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	return p.matches, nil
}

// --- Setup phase ---

// builtinsMu serializes ensureBuiltins so that concurrent first parses of a
// shared tree do not race on builtinArgs.
var builtinsMu sync.Mutex

// ensureBuiltins lazily attaches the generated help and version flags. The
// lookup covers builtinArgs, so repeated calls attach nothing.
func (c *Command) ensureBuiltins() {
	builtinsMu.Lock()
	defer builtinsMu.Unlock()
	if !c.isSet(SettingDisableHelpFlag) && c.FindArg(flags.Help.ID) == nil {
		c.builtinArgs = append(c.builtinArgs, NewArg(flags.Help.ID).
			Short(flags.Help.Short).
			Long(flags.Help.Long).
			Help(flags.Help.Desc).
			Action(ActionHelp))
	}
	if c.version != "" && !c.isSet(SettingDisableVersionFlag) && c.FindArg(flags.Version.ID) == nil {
		c.builtinArgs = append(c.builtinArgs, NewArg(flags.Version.ID).
			Short(flags.Version.Short).
			Long(flags.Version.Long).
			Help(flags.Version.Desc).
			Action(ActionVersion))
	}
}

func (p *parser) seedInherited() {
	for id, vs := range p.inheritedValues {
		for _, mv := range vs {
			p.matches.appendValue(id, mv.Value, SourceDefault)
		}
	}
	for id, count := range p.inheritedFlags {
		for i := 0; i < count; i++ {
			p.matches.incrementFlag(id)
		}
	}
}

func (p *parser) applyDefaults() error {
	for _, a := range p.cmd.allArgs() {
		if !a.hasDefault || p.matches.Contains(a.id) {
			continue
		}
		if err := p.bindTokens(a, []string{a.defaultValue}, SourceDefault); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) applyEnv() error {
	for _, a := range p.cmd.allArgs() {
		if a.envVar == "" {
			continue
		}
		if src, ok := p.matches.Source(a.id); ok && src == SourceCommandLine {
			continue
		}
		value := os.Getenv(a.envVar)
		if value == "" {
			continue
		}
		if err := p.bindTokens(a, []string{value}, SourceEnv); err != nil {
			return err
		}
	}
	return nil
}

// bindTokens parses tokens for a non-argv source and replaces any prior
// binding wholesale, so env overrides default and argv later overrides both.
func (p *parser) bindTokens(a *Arg, raw []string, src ValueSource) error {
	values, err := p.parseTokens(a, raw)
	if err != nil {
		return err
	}
	p.matches.setValues(a.id, values, src)
	return nil
}

// --- Long options ---

func (p *parser) parseLong(tok string) error {
	name := strings.TrimPrefix(tok, "--")
	attached := ""
	hasAttached := false
	if eq := strings.Index(name, "="); eq >= 0 {
		attached = name[eq+1:]
		name = name[:eq]
		hasAttached = true
	}

	arg := p.cmd.FindArgByLong(name)
	if arg == nil && p.cmd.isSet(SettingInferLongArgs) {
		arg = p.cmd.inferLongArg(name)
	}
	if arg == nil {
		return &Error{
			Kind:        ErrUnknownArgument,
			Value:       "--" + name,
			Suggestions: p.longSuggestions(name),
		}
	}

	if arg.IsFlag() {
		// An attached =value on a flag is silently dropped.
		return p.performFlagAction(arg)
	}
	if hasAttached {
		return p.storeTokens(arg, []string{attached}, false)
	}
	p.current = arg
	return nil
}

func (c *Command) inferLongArg(prefix string) *Arg {
	var hit *Arg
	for _, a := range c.allArgs() {
		if a.long != "" && strings.HasPrefix(a.long, prefix) {
			if hit != nil {
				return nil // ambiguous
			}
			hit = a
		}
	}
	return hit
}

// --- Short clusters ---

func (p *parser) parseShortCluster(tok string) error {
	cluster := []rune(tok[1:])
	for i := 0; i < len(cluster); i++ {
		ch := cluster[i]
		arg := p.cmd.FindArgByShort(ch)
		if arg == nil {
			return &Error{
				Kind:        ErrUnknownArgument,
				Value:       "-" + string(ch),
				Suggestions: p.longSuggestions(string(ch)),
			}
		}
		if arg.IsFlag() {
			if err := p.performFlagAction(arg); err != nil {
				return err
			}
			continue
		}
		rest := string(cluster[i+1:])
		if rest != "" {
			rest = strings.TrimPrefix(rest, "=")
			return p.storeTokens(arg, []string{rest}, false)
		}
		p.current = arg
		return nil
	}
	return nil
}

// --- Actions ---

func (p *parser) performFlagAction(arg *Arg) error {
	switch arg.action {
	case ActionSetTrue:
		p.matches.setFlag(arg.id, true)
	case ActionSetFalse:
		p.matches.setFlag(arg.id, false)
	case ActionCount:
		p.matches.incrementFlag(arg.id)
	case ActionHelp:
		return &Error{Kind: ErrDisplayHelp, Text: renderHelp(p.cmd)}
	case ActionVersion:
		return &Error{Kind: ErrDisplayVersion, Text: renderVersion(p.cmd)}
	}
	return nil
}

// --- Value accumulation ---

// flush binds the pending tokens to the option awaiting values. It runs when
// the next option starts, on --, and at the end of the vector.
func (p *parser) flush() error {
	arg := p.current
	if arg == nil {
		return nil
	}
	pending := p.pending
	p.current, p.pending = nil, nil

	if len(pending) == 0 {
		switch {
		case arg.hasDefaultMissing:
			pending = []string{arg.defaultMissingValue}
		case arg.numArgs.Min() > 0:
			return &Error{Kind: ErrTooFewValues, Arg: arg.id, Bound: arg.numArgs.Min(), Actual: 0}
		default:
			return nil
		}
	}
	return p.storeTokens(arg, pending, false)
}

// parseTokens splits each raw token on the arg's delimiter, then runs every
// piece through the value parser. Splitting happens before parsing so the
// delimiter composes with typed parsers.
func (p *parser) parseTokens(a *Arg, raw []string) ([]any, error) {
	var pieces []string
	for _, tok := range raw {
		if a.valueDelimiter != 0 {
			pieces = append(pieces, strings.Split(tok, string(a.valueDelimiter))...)
		} else {
			pieces = append(pieces, tok)
		}
	}
	values := make([]any, 0, len(pieces))
	for _, piece := range pieces {
		v, err := a.parser.Parse(piece)
		if err != nil {
			return nil, wrapInvalid(a, piece, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (p *parser) storeTokens(a *Arg, raw []string, forceAppend bool) error {
	values, err := p.parseTokens(a, raw)
	if err != nil {
		return err
	}
	if a.action == ActionAppend || forceAppend {
		// The first command-line occurrence displaces any default, env, or
		// inherited binding instead of appending to it.
		if vs := p.matches.values[a.id]; len(vs) > 0 && vs[0].Source != SourceCommandLine {
			p.matches.values[a.id] = nil
		}
		for _, v := range values {
			p.matches.appendValue(a.id, v, SourceCommandLine)
		}
		return nil
	}
	// Set: last writer wins, one at a time.
	for _, v := range values {
		p.matches.setValue(a.id, v, SourceCommandLine)
	}
	return nil
}

// wrapInvalid attaches the owning arg id to a parser failure; parsers only
// know the token they rejected.
func wrapInvalid(a *Arg, raw string, err error) error {
	if e, ok := err.(*Error); ok && e.Kind == ErrInvalidValue {
		e.Arg = a.id
		if e.Expected == "" {
			e.Expected = a.parser.TypeName()
		}
		return e
	}
	return &Error{Kind: ErrInvalidValue, Arg: a.id, Value: raw, Expected: a.parser.TypeName()}
}

// --- Positionals and subcommands ---

func (p *parser) parsePositionalOrSub(tok string, rest []string) (consumedAll bool, err error) {
	if len(p.cmd.subcommands) > 0 {
		sub := p.cmd.FindSubcommand(tok)
		if sub == nil && p.cmd.isSet(SettingInferSubcommands) {
			sub = p.cmd.inferSubcommand(tok)
		}
		if sub != nil {
			return true, p.recurse(sub, rest)
		}
	}

	positionals := p.cmd.PositionalArgs()
	if p.positionalIndex < len(positionals) {
		a := positionals[p.positionalIndex]
		greedy := a.action == ActionAppend || a.allowMultiple
		if err := p.storeTokens(a, []string{tok}, greedy); err != nil {
			return false, err
		}
		if !greedy {
			p.positionalIndex++
		}
		return false, nil
	}

	if len(p.cmd.subcommands) > 0 {
		if p.cmd.isSet(SettingAllowExternalSubcommands) {
			external := newArgMatches()
			external.addTrailing(rest...)
			p.matches.setSubcommand(tok, external)
			return true, nil
		}
		return false, &Error{
			Kind:        ErrInvalidSubcommand,
			Value:       tok,
			Suggestions: p.subcommandSuggestions(tok),
		}
	}
	return false, &Error{
		Kind:        ErrUnknownArgument,
		Value:       tok,
		Suggestions: p.longSuggestions(tok),
	}
}

func (c *Command) inferSubcommand(prefix string) *Command {
	var hit *Command
	for _, sub := range c.subcommands {
		names := append([]string{sub.name}, sub.aliases...)
		names = append(names, sub.hiddenAliases...)
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				if hit != nil && hit != sub {
					return nil // ambiguous
				}
				hit = sub
				break
			}
		}
	}
	return hit
}

// recurse parses the remaining tokens against sub, seeding it with the
// bindings of every global argument matched so far.
func (p *parser) recurse(sub *Command, rest []string) error {
	inheritedValues := map[string][]MatchedValue{}
	inheritedFlags := map[string]int{}

	globals := map[string]bool{}
	for _, a := range p.cmd.allArgs() {
		if a.global {
			globals[a.id] = true
		}
	}
	// Globals handed down from further up stay global for the grandchildren.
	for id := range p.inheritedValues {
		globals[id] = true
	}
	for id := range p.inheritedFlags {
		globals[id] = true
	}

	for id := range globals {
		if vs := p.matches.values[id]; len(vs) > 0 {
			inheritedValues[id] = append([]MatchedValue{}, vs...)
		}
		if count := p.matches.flags[id]; count > 0 {
			inheritedFlags[id] = count
		}
	}

	child := newParser(sub, inheritedValues, inheritedFlags)
	childMatches, err := child.parse(rest)
	if err != nil {
		return err
	}
	p.matches.setSubcommand(sub.name, childMatches)
	return nil
}

// --- Helpers ---

// isNegativeNumber reports whether tok should be read as a numeric value
// rather than an option, e.g. -123 or -1.5.
func (p *parser) isNegativeNumber(tok string) bool {
	if !p.cmd.isSet(SettingAllowNegativeNumbers) {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

func (p *parser) longSuggestions(probe string) []string {
	var candidates []string
	for _, a := range p.cmd.allArgs() {
		if a.long != "" && !a.hidden {
			candidates = append(candidates, a.long)
		}
	}
	names := suggest(probe, candidates)
	for i, name := range names {
		names[i] = "--" + name
	}
	return names
}

func (p *parser) subcommandSuggestions(probe string) []string {
	var candidates []string
	for _, sub := range p.cmd.subcommands {
		candidates = append(candidates, sub.name)
		candidates = append(candidates, sub.aliases...)
	}
	return suggest(probe, candidates)
}
