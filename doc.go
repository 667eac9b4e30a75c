// Package clap is a declarative command-line argument parser. An application
// describes its interface as a tree of commands, arguments, and groups using
// a fluent builder, then parses a raw argument vector against that
// description to get a structured, source-tagged match result.
//
//	cmd := clap.NewCommand("myapp").
//		Version("1.0.0").
//		Arg(clap.NewArg("config").Short('c').Long("config").Default("default.conf")).
//		Arg(clap.NewArg("verbose").Short('v').Action(clap.ActionCount)).
//		Subcommand(clap.NewCommand("init").
//			Arg(clap.NewArg("name").Required(true)))
//
//	matches, err := cmd.GetMatches(os.Args[1:])
//
// The parser handles long options (--name, --name=value, --name value), short
// options and clusters (-x, -xvalue, -abc, -vvv counting), positionals,
// subcommand recursion with global-argument inheritance, the -- terminator,
// environment-variable fallbacks, and defaults, with the precedence
// command line > environment > default. A post-parse validator enforces
// required-ness, conflicts, dependencies, conditional requirements, group
// exclusivity, and value-count bounds.
//
// The core never prints or exits; failures unwind as *Error values carrying a
// programmatic Kind. Run and Execute provide the conventional process glue on
// top: help and version displays exit 0, anything else prints to stderr and
// exits 1.
//
// A Command tree is immutable once parsing starts, so one tree may serve
// concurrent GetMatches calls, each with its own argument vector.
package clap
