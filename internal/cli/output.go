package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"regalgebra/internal/automaton"
	"regalgebra/internal/regex"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a relation or assertion does not hold
	ExitCommandError = 2 // bad pattern, unreadable file, bad flags
)

// ExitError carries the exit code a command wants the process to end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics; defaults to Writer
	Verbose   bool
}

// CLIResponse is the envelope for json and yaml output.
type CLIResponse struct {
	Status string      `json:"status" yaml:"status"`
	Data   interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty" yaml:"error,omitempty"`
}

type CLIError struct {
	Code    string      `json:"code" yaml:"code"`
	Message string      `json:"message" yaml:"message"`
	Details interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Error codes reported in CLIError.Code.
const (
	ErrCodeSyntax  = "E001"
	ErrCodeBudget  = "E002"
	ErrCodeIO      = "E003"
	ErrCodeScript  = "E004"
	ErrCodeGeneric = "E999"
)

func (f *OutputFormatter) encode(resp CLIResponse) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", f.Format)
}

// Success outputs a result. Text output prints data with its String method.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "text" || f.Format == "" {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	return f.encode(CLIResponse{Status: "ok", Data: data})
}

func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "text" || f.Format == "" {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
		if f.Verbose && details != nil {
			fmt.Fprintf(f.Writer, "Details: %v\n", details)
		}
		return nil
	}
	return f.encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: message, Details: details},
	})
}

// VerboseLog writes to ErrWriter when verbose mode is on, so json and yaml
// output stay clean.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Fail reports err through the formatter and returns it as an ExitError.
func (f *OutputFormatter) Fail(err error) error {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = WrapExitError(ExitCommandError, "error", err)
	}
	_ = f.Error(errorCode(err), err.Error(), nil)
	return exitErr
}

func errorCode(err error) string {
	var syntax *regex.SyntaxError
	var path *fs.PathError
	switch {
	case errors.As(err, &syntax):
		return ErrCodeSyntax
	case errors.Is(err, automaton.ErrStateBudget):
		return ErrCodeBudget
	case errors.As(err, &path):
		return ErrCodeIO
	case errors.Is(err, errScript):
		return ErrCodeScript
	}
	return ErrCodeGeneric
}
