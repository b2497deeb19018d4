package domain

import "strings"

// Command is a fully-constructed invocation of the external search tool.
// Args are passed to the process verbatim; String renders the equivalent
// shell line for logging and display.
type Command struct {
	Path string
	Args []string
}

// BuildFindCommand constructs the search invocation for a query. It is a
// pure function of the query and settings: the tool's find subcommand, the
// configured fixed flags, the --fields spec naming the identifier and
// free-text fields, colour output disabled, and the query as the final
// argument.
func BuildFindCommand(query string, s Settings) Command {
	args := make([]string, 0, len(s.FixedFlags)+5)
	args = append(args, "find")
	args = append(args, s.FixedFlags...)
	args = append(args, "--fields", s.Fields.String(), "--nocolor", query)
	return Command{Path: s.Executable, Args: args}
}

// String renders the command as a single shell line with each argument
// safely quoted.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, QuoteShellArg(c.Path))
	for _, a := range c.Args {
		parts = append(parts, QuoteShellArg(a))
	}
	return strings.Join(parts, " ")
}

// shellSafe holds the characters that need no quoting in a POSIX shell word.
const shellSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// QuoteShellArg quotes s as a single POSIX shell argument. Values made only
// of safe characters pass through unchanged; anything else is wrapped in
// single quotes with embedded quotes rendered as '\''. Shell metacharacters
// and apostrophes cannot break out of the argument boundary.
func QuoteShellArg(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !strings.ContainsRune(shellSafe, r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
