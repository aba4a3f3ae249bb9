package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/products/internal/catalog"
	"github.com/dyluth/products/internal/printer"
	"github.com/spf13/cobra"
)

// Process exit codes
const (
	ExitOK         = 0
	ExitFailure    = 1 // I/O and anything unclassified
	ExitUsage      = 2 // missing or malformed arguments
	ExitParse      = 3 // ledger file is not valid JSON
	ExitValidation = 4 // record does not match the expected shape
)

// UsageError marks a missing or malformed command-line argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// failure pairs an error already printed for the user with its cause, so
// main does not print it twice and ExitCode can still classify it.
type failure struct {
	reported error
	cause    error
}

func (f *failure) Error() string { return f.reported.Error() }

func (f *failure) Unwrap() []error { return []error{f.reported, f.cause} }

func fail(reported, cause error) error {
	return &failure{reported: reported, cause: cause}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, catalog.ErrParse):
		return ExitParse
	case errors.Is(err, catalog.ErrValidation):
		return ExitValidation
	default:
		return ExitFailure
	}
}

func usageError(p *printer.Printer, cmd *cobra.Command, title, explanation string) error {
	return &UsageError{Err: p.Error(title, explanation, []string{
		fmt.Sprintf("Usage:\n  %s\n\nRun '%s --help' for details.", cmd.UseLine(), cmd.CommandPath()),
	})}
}

// requireFilename is the Args validator for commands taking a ledger file.
func requireFilename(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}

	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(args) == 0 {
		return usageError(p, cmd, "missing filename", "A products file must be given.")
	}
	return usageError(p, cmd, "too many arguments",
		fmt.Sprintf("Expected one products file, got %d arguments: %s", len(args), strings.Join(args, " ")))
}

// requireFlags reports the first of names that was not set on the command line.
func requireFlags(cmd *cobra.Command, p *printer.Printer, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return usageError(p, cmd, "missing required flag",
		fmt.Sprintf("Required flag(s) not set: %s", strings.Join(missing, ", ")))
}

// reportStoreError prints a load/save failure for path and returns it in
// a form ExitCode can classify.
func reportStoreError(p *printer.Printer, path string, err error) error {
	context := map[string]string{"File": path}

	switch {
	case errors.Is(err, catalog.ErrParse):
		return fail(p.ErrorWithContext(
			"products file is not valid JSON",
			err.Error(),
			context,
			[]string{"Fix the file so it contains a JSON array of products, or choose another file."},
		), err)
	case errors.Is(err, catalog.ErrValidation):
		return fail(p.ErrorWithContext(
			catalog.MessageInvalid,
			err.Error(),
			context,
			[]string{
				"Correct the record in the products file",
				"Load it anyway with defaults by setting in products.yml:\n     validation:\n       policy: warn",
			},
		), err)
	default:
		return fail(p.ErrorWithContext(
			"could not access products file",
			err.Error(),
			context,
			[]string{"Check the path exists and is readable and writable."},
		), err)
	}
}
