package domain

import "time"

// Default configuration values.
const (
	// DefaultExecutable is the well-known search tool name, resolved via
	// the execution path.
	DefaultExecutable = "mu"

	// DefaultMinQueryLength is the shortest query that spawns a search.
	DefaultMinQueryLength = 3

	// DefaultThrottleInterval is the minimum wall-clock spacing between
	// intermediate candidate-list publications.
	DefaultThrottleInterval = 100 * time.Millisecond
)

// Settings is the configuration surface for search runs. A Settings value
// is captured at run start; changing settings affects subsequent runs only.
type Settings struct {
	// Executable is the search tool binary, resolved on the execution path.
	Executable string

	// FixedFlags are passed to every invocation (result cap, dedup, sort
	// order, output format).
	FixedFlags []string

	// Fields names the record fields to request, identifier first.
	Fields FieldSpec

	// MinQueryLength is the threshold below which no process is spawned
	// and a "need more input" prompt is shown instead.
	MinQueryLength int

	// ThrottleInterval bounds the intermediate UI publish rate.
	ThrottleInterval time.Duration

	// ExitCodes maps tool exit codes to messages shown on failure.
	ExitCodes ExitTable
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		Executable: DefaultExecutable,
		FixedFlags: []string{
			"--maxnum=500",
			"--skip-dups",
			"--sortfield=date",
			"--reverse",
			"--format=sexp",
		},
		Fields:           NewFieldSpec("i", "s"),
		MinQueryLength:   DefaultMinQueryLength,
		ThrottleInterval: DefaultThrottleInterval,
		ExitCodes:        DefaultExitTable(),
	}
}
