package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/linesort/internal/app"
	"github.com/specialistvlad/linesort/internal/lineio"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. File names missing from args are
// asked for on input, with the questions written to output. Answers are read
// one line at a time, so input is left positioned at the first byte after the
// last answer and can still supply the data when the input file is "-".
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, input *bufio.Reader, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("linesort", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
linesort - sort the lines of a file case-insensitively with merge sort and
quicksort, timing each and writing each result to its own file.

Usage:
  linesort [options] [INPUT [MERGESORT_OUTPUT QUICKSORT_OUTPUT]]
  linesort -job PATH [-job-name NAME] [options]

Arguments:
  INPUT              File to read, one entry per line. "-" reads stdin.
  MERGESORT_OUTPUT   Where the merge sort result is written.
  QUICKSORT_OUTPUT   Where the quicksort result is written.

  Missing file names are asked for interactively. Names ending in .gz or .zst
  are read and written compressed.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the input file.")
	iFlag := flagSet.String("i", "", "Path to the input file (shorthand).")
	mergeOutFlag := flagSet.String("merge-out", "", "Path of the merge sort output file.")
	quickOutFlag := flagSet.String("quick-out", "", "Path of the quicksort output file.")
	maxLinesFlag := flagSet.Int("max-lines", lineio.DefaultMaxLines, "Maximum number of input lines to read; the rest are ignored. Also applies to jobs that do not set max_lines.")
	maxLineBytesFlag := flagSet.Int("max-line-bytes", lineio.DefaultMaxLineBytes, "Longest accepted input line, in bytes.")
	jobFlag := flagSet.String("job", "", "Path to an HCL job file or a directory of job files.")
	jobNameFlag := flagSet.String("job-name", "", "Run only the job with this name.")
	reportFlag := flagSet.String("report", "", "Write a JSON timing report to this path.")
	parallelFlag := flagSet.Bool("parallel", false, "Run both sorting engines at the same time.")
	verifyFlag := flagSet.Bool("verify", false, "Check every sorted result before writing it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *maxLinesFlag <= 0 {
		return nil, false, usageError("invalid max-lines: must be positive, got %d", *maxLinesFlag)
	}
	if *maxLineBytesFlag <= 0 {
		return nil, false, usageError("invalid max-line-bytes: must be positive, got %d", *maxLineBytesFlag)
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		JobPath:      *jobFlag,
		JobName:      *jobNameFlag,
		ReportPath:   *reportFlag,
		MaxLines:     *maxLinesFlag,
		MaxLineBytes: *maxLineBytesFlag,
		Parallel:     *parallelFlag,
		Verify:       *verifyFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}

	if cfg.JobPath != "" {
		if flagSet.NArg() > 0 || *inputFlag != "" || *iFlag != "" || *mergeOutFlag != "" || *quickOutFlag != "" {
			return nil, false, usageError("file names cannot be combined with -job")
		}
	} else {
		if flagSet.NArg() > 3 {
			return nil, false, usageError("too many arguments: expected at most 3, got %d", flagSet.NArg())
		}
		if cfg.JobName != "" {
			return nil, false, usageError("-job-name requires -job")
		}

		cfg.InputPath = firstNonEmpty(*inputFlag, *iFlag, flagSet.Arg(0))
		cfg.MergeOutputPath = firstNonEmpty(*mergeOutFlag, flagSet.Arg(1))
		cfg.QuickOutputPath = firstNonEmpty(*quickOutFlag, flagSet.Arg(2))

		if err := promptMissing(&cfg, input, output); err != nil {
			return nil, false, err
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// promptMissing asks for every file name still empty in cfg, one answer per
// line, in the order input, merge sort output, quicksort output.
func promptMissing(cfg *app.Config, input *bufio.Reader, output io.Writer) error {
	prompts := []struct {
		question string
		target   *string
	}{
		{"What is the name of your input file?", &cfg.InputPath},
		{"What is the name of your output file for the data obtained using mergesort?", &cfg.MergeOutputPath},
		{"What is the name of your output file for the data obtained using quicksort?", &cfg.QuickOutputPath},
	}

	for _, p := range prompts {
		if *p.target != "" {
			continue
		}
		if input == nil {
			return usageError("missing file name: %s", p.question)
		}
		fmt.Fprintln(output, p.question)

		answer, err := readAnswer(input)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return usageError("no answer given to: %s", p.question)
			}
			return usageError("failed to read file name: %v", err)
		}
		*p.target = answer
	}
	return nil
}

// readAnswer returns the next non-blank line of input, trimmed. It never
// reads past the newline ending that line.
func readAnswer(input *bufio.Reader) (string, error) {
	for {
		line, err := input.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
