// Package flags is the registry of builtin flags the parser synthesizes.
// Help and detection logic derive from this registry.
package flags

import "strings"

// Def describes a builtin flag.
type Def struct {
	ID    string // arg id used in match lookups
	Long  string // without "--", e.g. "help"
	Short rune   // without "-", e.g. 'h' (zero if none)
	Desc  string // help text
}

// Builtin flag definitions. The parser attaches these lazily unless the
// command disables them or declares an arg with the same id.
var (
	Help    = Def{ID: "help", Long: "help", Short: 'h', Desc: "Print help"}
	Version = Def{ID: "version", Long: "version", Short: 'V', Desc: "Print version"}
)

// All is the complete builtin registry.
var All = []Def{Help, Version}

// Find returns the def matching arg (e.g. "--help", "-h"), or nil.
func Find(arg string) *Def {
	if after, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ := strings.Cut(after, "=")
		for i := range All {
			if All[i].Long == name {
				return &All[i]
			}
		}
		return nil
	}
	if after, ok := strings.CutPrefix(arg, "-"); ok {
		for i := range All {
			if All[i].Short != 0 && after == string(All[i].Short) {
				return &All[i]
			}
		}
	}
	return nil
}
