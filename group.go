package clap

import (
	"fmt"
	"regexp"
)

// ArgGroup bundles argument ids with joint semantics: a required group needs
// at least one member present, and a non-multiple group makes its members
// mutually exclusive.
type ArgGroup struct {
	id            string
	args          []string
	required      bool
	multiple      bool
	conflictsWith []string
	requires      []string
}

var validGroupID = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// NewGroup starts building a group with the given id.
func NewGroup(id string) *ArgGroup {
	if id == "" {
		panic("clap.NewGroup: id cannot be empty")
	}
	if !validGroupID.MatchString(id) {
		panic(fmt.Sprintf(
			"clap.NewGroup: invalid id %q (must match %s)",
			id, validGroupID.String(),
		))
	}
	return &ArgGroup{id: id}
}

// Args adds member argument ids.
func (g *ArgGroup) Args(ids ...string) *ArgGroup {
	g.args = append(g.args, ids...)
	return g
}

// Required demands that at least one member be present.
func (g *ArgGroup) Required(required bool) *ArgGroup { g.required = required; return g }

// Multiple allows more than one member to appear; without it the members are
// mutually exclusive.
func (g *ArgGroup) Multiple(multiple bool) *ArgGroup { g.multiple = multiple; return g }

// ConflictsWith declares args that may not appear with any member.
func (g *ArgGroup) ConflictsWith(ids ...string) *ArgGroup {
	g.conflictsWith = append(g.conflictsWith, ids...)
	return g
}

// Requires declares args that must appear when any member does.
func (g *ArgGroup) Requires(ids ...string) *ArgGroup {
	g.requires = append(g.requires, ids...)
	return g
}

// ID returns the group id.
func (g *ArgGroup) ID() string { return g.id }

// Members returns the member argument ids.
func (g *ArgGroup) Members() []string { return g.args }
