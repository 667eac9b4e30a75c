// Package help rendering functions.
// This file handles the actual rendering of help content with proper styling.

package help

import (
	"strings"
)

const columnGap = 2

// Render formats the content as a complete help page. Section order is fixed:
// before-help, header, usage, arguments, options, commands, after-help.
func Render(c *Content, styles Styles) string {
	var b strings.Builder

	if c.BeforeHelp != "" {
		b.WriteString(c.BeforeHelp)
		b.WriteString("\n\n")
	}

	writeHeader(&b, c)

	b.WriteString(styles.Header.Render("Usage:"))
	b.WriteString(" " + c.Usage + "\n")

	if len(c.Positionals) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Arguments:"))
		b.WriteString("\n")
		writePositionals(&b, c.Positionals, styles)
	}

	if len(c.Options) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Options:"))
		b.WriteString("\n")
		writeOptions(&b, c.Options, styles)
	}

	if len(c.Subcommands) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Commands:"))
		b.WriteString("\n")
		writeSubcommands(&b, c.Subcommands, styles)
	}

	if c.AfterHelp != "" {
		b.WriteString("\n" + c.AfterHelp + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeHeader(b *strings.Builder, c *Content) {
	title := c.Name
	if c.Version != "" {
		title += " " + c.Version
	}
	b.WriteString(title + "\n")
	if c.Author != "" {
		b.WriteString(c.Author + "\n")
	}
	about := c.LongAbout
	if about == "" {
		about = c.About
	}
	if about != "" {
		b.WriteString(about + "\n")
	}
	b.WriteString("\n")
}

func writePositionals(b *strings.Builder, positionals []Positional, styles Styles) {
	rows := make([][2]string, len(positionals))
	for i, p := range positionals {
		name := "<" + p.Name + ">"
		if !p.Required {
			name = "[" + p.Name + "]"
		}
		rows[i] = [2]string{styles.Flag.Render(name), p.Desc}
	}
	writeColumns(b, rows)
}

func writeOptions(b *strings.Builder, options []Flag, styles Styles) {
	rows := make([][2]string, len(options))
	for i, f := range options {
		var left string
		switch {
		case f.Short != "" && f.Long != "":
			left = "-" + f.Short + ", --" + f.Long
		case f.Long != "":
			left = "    --" + f.Long
		default:
			left = "-" + f.Short
		}
		left = styles.Flag.Render(left)
		if f.Placeholder != "" {
			left += " " + styles.Placeholder.Render("<"+f.Placeholder+">")
		}
		desc := f.Desc
		if f.Extra != "" {
			if desc != "" {
				desc += " "
			}
			desc += f.Extra
		}
		rows[i] = [2]string{left, desc}
	}
	writeColumns(b, rows)
}

func writeSubcommands(b *strings.Builder, subs []Subcommand, styles Styles) {
	rows := make([][2]string, len(subs))
	for i, s := range subs {
		name := s.Name
		if len(s.Aliases) > 0 {
			name += ", " + strings.Join(s.Aliases, ", ")
		}
		rows[i] = [2]string{styles.Flag.Render(name), s.Desc}
	}
	writeColumns(b, rows)
}

// writeColumns aligns two-column rows on the widest left cell. Width is
// measured on the rendered cell, so styled output stays aligned only when
// styles add no visible characters; ANSI escapes are width-zero to lipgloss
// but not to plain len, which is why measurement uses visibleWidth.
func writeColumns(b *strings.Builder, rows [][2]string) {
	widest := 0
	for _, row := range rows {
		if w := visibleWidth(row[0]); w > widest {
			widest = w
		}
	}
	for _, row := range rows {
		b.WriteString("  " + row[0])
		if row[1] != "" {
			b.WriteString(strings.Repeat(" ", widest-visibleWidth(row[0])+columnGap))
			b.WriteString(row[1])
		}
		b.WriteString("\n")
	}
}

// visibleWidth counts printable characters, skipping ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
