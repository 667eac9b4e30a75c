// Package help renders command help text. The library core builds a Content
// snapshot from its command tree; rendering never reaches back into parser
// state.
package help

// Positional represents a positional argument in command usage.
type Positional struct {
	Name     string
	Desc     string
	Required bool
}

// Flag represents an option or flag line.
type Flag struct {
	Long        string
	Short       string // without "-", empty if none
	Placeholder string // value placeholder, empty for flags
	Desc        string
	Extra       string // trailing annotations, e.g. "[default: always]"
}

// Subcommand represents a subcommand entry.
type Subcommand struct {
	Name    string
	Aliases []string
	Desc    string
}

// Content holds everything the renderer needs for one command.
type Content struct {
	Name        string
	Version     string
	Author      string
	About       string
	LongAbout   string
	Usage       string
	BeforeHelp  string
	AfterHelp   string
	Positionals []Positional
	Options     []Flag
	Subcommands []Subcommand
}
