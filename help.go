package clap

import (
	"strings"

	"github.com/IxDay/clap/internal/help"
)

// renderHelp produces the full help page for a command. The DisplayHelp
// condition carries this text; the core itself never prints.
func renderHelp(c *Command) string {
	c.ensureBuiltins()
	styles := help.DefaultStyles()
	if c.isSet(SettingDisableColoredHelp) {
		styles = help.PlainStyles()
	}
	return help.Render(buildHelpContent(c), styles)
}

// renderVersion produces the version line for DisplayVersion.
func renderVersion(c *Command) string {
	if c.version == "" {
		return c.EffectiveName()
	}
	return c.EffectiveName() + " " + c.version
}

func buildHelpContent(c *Command) *help.Content {
	content := &help.Content{
		Name:       c.EffectiveName(),
		Version:    c.version,
		About:      c.about,
		LongAbout:  c.longAbout,
		Usage:      usageLine(c),
		BeforeHelp: c.beforeHelp,
		AfterHelp:  c.afterHelp,
	}
	if !c.isSet(SettingHideAuthor) {
		content.Author = c.author
	}

	for _, a := range c.PositionalArgs() {
		if a.hidden {
			continue
		}
		content.Positionals = append(content.Positionals, help.Positional{
			Name:     positionalName(a),
			Desc:     a.help,
			Required: a.required || a.numArgs.IsRequired(),
		})
	}

	for _, a := range c.OptionalArgs() {
		if a.hidden {
			continue
		}
		content.Options = append(content.Options, optionEntry(c, a))
	}
	for _, a := range c.builtinArgs {
		content.Options = append(content.Options, optionEntry(c, a))
	}

	for _, sub := range c.subcommands {
		content.Subcommands = append(content.Subcommands, help.Subcommand{
			Name:    sub.name,
			Aliases: append([]string{}, sub.aliases...),
			Desc:    sub.about,
		})
	}
	return content
}

func optionEntry(c *Command, a *Arg) help.Flag {
	entry := help.Flag{
		Long: a.long,
		Desc: a.help,
	}
	if a.short != 0 {
		entry.Short = string(a.short)
	}
	if a.TakesValue() {
		entry.Placeholder = positionalName(a)
	}
	entry.Extra = strings.Join(extras(c, a), " ")
	return entry
}

func extras(c *Command, a *Arg) []string {
	var parts []string
	if a.envVar != "" {
		parts = append(parts, "[env: "+a.envVar+"]")
	}
	if a.hasDefault && !a.hideDefaultValue {
		parts = append(parts, "[default: "+a.defaultValue+"]")
	}
	hidePossible := a.hidePossibleValues || c.isSet(SettingHidePossibleValues)
	if possible := a.parser.PossibleValues(); len(possible) > 0 && !hidePossible {
		parts = append(parts, "[possible values: "+strings.Join(possible, ", ")+"]")
	}
	return parts
}

var hintPlaceholders = map[ValueHint]string{
	HintAnyPath:        "PATH",
	HintFilePath:       "FILE",
	HintDirPath:        "DIR",
	HintExecutablePath: "EXE",
	HintCommandName:    "COMMAND",
	HintHostname:       "HOST",
	HintURL:            "URL",
	HintUsername:       "USER",
	HintEmail:          "EMAIL",
}

func positionalName(a *Arg) string {
	if len(a.valueNames) > 0 {
		return strings.Join(a.valueNames, "> <")
	}
	if name, ok := hintPlaceholders[a.hint]; ok {
		return name
	}
	return strings.ToUpper(a.id)
}

// usageLine derives the one-line usage summary, unless overridden.
func usageLine(c *Command) string {
	if c.usageOverride != "" {
		return c.usageOverride
	}
	parts := []string{c.FullName()}
	if len(c.args) > 0 || len(c.builtinArgs) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	for _, a := range c.PositionalArgs() {
		if a.hidden {
			continue
		}
		name := "<" + positionalName(a) + ">"
		if !a.required && !a.numArgs.IsRequired() {
			name = "[" + positionalName(a) + "]"
		}
		if a.numArgs.IsMultiple() || a.allowMultiple || a.action == ActionAppend {
			name += "..."
		}
		parts = append(parts, name)
	}
	if len(c.subcommands) > 0 {
		if c.isSet(SettingSubcommandRequired) {
			parts = append(parts, "<COMMAND>")
		} else {
			parts = append(parts, "[COMMAND]")
		}
	}
	return strings.Join(parts, " ")
}
