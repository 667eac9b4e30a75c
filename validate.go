package clap

import "fmt"

// validate runs the post-parse constraint checks in a fixed order; the first
// violation wins. It recurses into the selected subcommand last.
func validate(cmd *Command, m *ArgMatches) error {
	checks := []func(*Command, *ArgMatches) error{
		checkRequired,
		checkRequiredGroups,
		checkConflicts,
		checkDependencies,
		checkConditionalRequired,
		checkRequiredUnless,
		checkValueCounts,
		checkGroupExclusivity,
		checkSubcommandRequired,
	}
	for _, check := range checks {
		if err := check(cmd, m); err != nil {
			return err
		}
	}

	if name, sub, ok := m.Subcommand(); ok {
		if subCmd := cmd.FindSubcommand(name); subCmd != nil {
			return validate(subCmd, sub)
		}
	}
	return nil
}

func checkRequired(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		if a.required && !m.Contains(a.id) {
			return &Error{Kind: ErrMissingRequired, Arg: a.id}
		}
	}
	return nil
}

func checkRequiredGroups(cmd *Command, m *ArgMatches) error {
	for _, g := range cmd.groups {
		if !g.required {
			continue
		}
		found := false
		for _, id := range g.args {
			if m.Contains(id) {
				found = true
				break
			}
		}
		if !found {
			return &Error{Kind: ErrMissingRequiredGroup, Other: g.id}
		}
	}
	return nil
}

func checkConflicts(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		if !m.Contains(a.id) {
			continue
		}
		for _, other := range a.conflicts {
			if m.Contains(other) {
				return &Error{Kind: ErrArgumentConflict, Arg: a.id, Other: other}
			}
		}
	}
	for _, g := range cmd.groups {
		if !groupPresent(g, m) {
			continue
		}
		for _, other := range g.conflictsWith {
			if m.Contains(other) {
				return &Error{Kind: ErrArgumentConflict, Arg: firstPresentMember(g, m), Other: other}
			}
		}
	}
	return nil
}

func checkDependencies(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		if !m.Contains(a.id) {
			continue
		}
		for _, other := range a.requires {
			if !m.Contains(other) {
				return &Error{Kind: ErrMissingDependency, Arg: a.id, Other: other}
			}
		}
	}
	for _, g := range cmd.groups {
		if !groupPresent(g, m) {
			continue
		}
		for _, other := range g.requires {
			if !m.Contains(other) {
				return &Error{Kind: ErrMissingDependency, Arg: firstPresentMember(g, m), Other: other}
			}
		}
	}
	return nil
}

func checkConditionalRequired(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		for _, cond := range a.requiredIf {
			if !m.Contains(cond.argID) || m.Contains(a.id) {
				continue
			}
			if lastValueString(m, cond.argID) == cond.value {
				return &Error{
					Kind:    ErrMissingRequired,
					Arg:     a.id,
					Context: fmt.Sprintf("required when '%s' is '%s'", cond.argID, cond.value),
				}
			}
		}
	}
	return nil
}

func checkRequiredUnless(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		if len(a.requiredUnless) == 0 || m.Contains(a.id) {
			continue
		}
		anyPresent := false
		for _, id := range a.requiredUnless {
			if m.Contains(id) {
				anyPresent = true
				break
			}
		}
		if !anyPresent {
			return &Error{Kind: ErrMissingRequired, Arg: a.id}
		}
	}
	return nil
}

func checkValueCounts(cmd *Command, m *ArgMatches) error {
	for _, a := range cmd.args {
		if a.IsFlag() || !m.Contains(a.id) {
			continue
		}
		n := len(m.values[a.id])
		if a.action == ActionAppend || a.allowMultiple {
			// Values accumulate across occurrences, so the per-occurrence
			// upper bound does not apply to the total.
			if n < a.numArgs.Min() {
				return &Error{Kind: ErrTooFewValues, Arg: a.id, Bound: a.numArgs.Min(), Actual: n}
			}
			continue
		}
		if a.numArgs.Includes(n) {
			continue
		}
		if n < a.numArgs.Min() {
			return &Error{Kind: ErrTooFewValues, Arg: a.id, Bound: a.numArgs.Min(), Actual: n}
		}
		bound, _ := a.numArgs.Max()
		return &Error{Kind: ErrTooManyValues, Arg: a.id, Bound: bound, Actual: n}
	}
	return nil
}

func checkGroupExclusivity(cmd *Command, m *ArgMatches) error {
	for _, g := range cmd.groups {
		if g.multiple {
			continue
		}
		first := ""
		for _, id := range g.args {
			if !m.Contains(id) {
				continue
			}
			if first != "" {
				return &Error{Kind: ErrArgumentConflict, Arg: first, Other: id}
			}
			first = id
		}
	}
	return nil
}

func checkSubcommandRequired(cmd *Command, m *ArgMatches) error {
	if !cmd.isSet(SettingSubcommandRequired) || len(cmd.subcommands) == 0 || m.subcommand != nil {
		return nil
	}
	if cmd.isSet(SettingArgRequiredElseHelp) && !hasUserInput(m) {
		return &Error{Kind: ErrDisplayHelp, Text: renderHelp(cmd)}
	}
	return &Error{Kind: ErrMissingSubcommand}
}

// hasUserInput reports whether anything was matched from the command line
// itself, as opposed to defaults and environment fallbacks.
func hasUserInput(m *ArgMatches) bool {
	if len(m.trailing) > 0 {
		return true
	}
	for _, vs := range m.values {
		for _, v := range vs {
			if v.Source == SourceCommandLine {
				return true
			}
		}
	}
	for _, count := range m.flags {
		if count > 0 {
			return true
		}
	}
	return false
}

func groupPresent(g *ArgGroup, m *ArgMatches) bool {
	return firstPresentMember(g, m) != ""
}

func firstPresentMember(g *ArgGroup, m *ArgMatches) string {
	for _, id := range g.args {
		if m.Contains(id) {
			return id
		}
	}
	return ""
}

func lastValueString(m *ArgMatches, id string) string {
	v, ok := m.GetOne(id)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
