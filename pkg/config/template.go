package config

// Template returns a commented configuration file with every option at its
// default.
func Template() []byte {
	return []byte(`# retrolog configuration

# Log level: debug, info, warn or error
log_level: warn

# Number of files decoded in parallel (0 = one per CPU)
jobs: 0

# Character encoding of event files: utf-8 or latin1
encoding: utf-8

# Event-file extensions, matched without regard to case
extensions:
  - .EVA
  - .EVN
  - .EVE
  - .EVR

# Only decode files whose name starts with this season, e.g. "2018"
# season: "2018"

# Glob patterns for files and directories to skip
# exclude:
#   - "scratch/**"

# Walk into symlinked directories
follow_symlinks: false

# Keep decoding other files when one is malformed
continue_on_error: false

# Keep commentary and adjustment lines as records
retain_ignored: false
`)
}
