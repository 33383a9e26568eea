package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "err"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig   = "config"
	FieldJobs     = "jobs"
	FieldEncoding = "encoding"
	FieldSeason   = "season"
	FieldSession  = "session"

	// Decode statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesErrored    = "files_errored"
	FieldGames           = "games"
	FieldRecords         = "records"
	FieldPlayers         = "players"
	FieldTeams           = "teams"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
