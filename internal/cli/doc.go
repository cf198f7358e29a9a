// Package cli is responsible for parsing command-line arguments, prompting
// for any file names that were not given, validating user input, and handling
// process-level concerns like exit codes. It translates CLI flags into the
// application's internal configuration.
package cli
