package types

// ApplyConfig holds settings for the apply stage.
type ApplyConfig struct {
	// SourcePath is the backup dump holding raw Japanese lines. Read only.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// TargetPath is the structurally correct dump that receives converted
	// lines. It is read and then overwritten in full.
	TargetPath string `json:"target_path" yaml:"target_path"`

	// Range is the 1-based inclusive line range to graft.
	Range LineRange `json:"range" yaml:"range"`

	// DryRun computes the changes without writing the target file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Verbose prints a status line for every considered line.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// HistoryConfig holds settings for the optional run history database.
type HistoryConfig struct {
	// DBPath is the SQLite file that records apply runs. Empty disables
	// history.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Limit is the default number of runs listed by the history command
	// (default 20).
	Limit int `json:"limit" yaml:"limit"`
}

// Enabled reports whether a history database is configured.
func (c HistoryConfig) Enabled() bool {
	return c.DBPath != ""
}
