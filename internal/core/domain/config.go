package domain

// ProgressMode selects how batch progress is reported.
type ProgressMode string

const (
	// ProgressConsole prints one styled line per processed entry.
	ProgressConsole ProgressMode = "console"
	// ProgressProgrock records entries as progrock vertexes.
	ProgressProgrock ProgressMode = "progrock"
	// ProgressOff suppresses progress output entirely.
	ProgressOff ProgressMode = "off"
)

// Config holds the user-tunable defaults loaded from binit.yaml.
type Config struct {
	// ShredRuns is the default number of overwrite passes for shred.
	ShredRuns int
	// Recursive skips the per-directory recursion prompt when true.
	Recursive bool
	// TrashDir overrides the trash bin location. Empty means the default
	// under the user's data directory.
	TrashDir string
	// Progress selects the progress sink.
	Progress ProgressMode
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ShredRuns: 1,
		Progress:  ProgressConsole,
	}
}
