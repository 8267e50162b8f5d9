package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clickbotcheck/internal/config"
)

const (
	ExitSuccess           = 0
	ExitRunFailure        = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// ConfigFileName is the optional rule-configuration override file, read from
// the invocation base directory.
const ConfigFileName = "clickbotcheck.yaml"

// Invocation is the fully canonicalized, deterministic description of a run.
//
// All paths are absolute. InputPath and OutputPath may be left empty, in
// which case the executor resolves them against BaseDir using the file names
// from the loaded configuration.
//
// NOTE: BaseDir is required and must be absolute; this prevents any
// dependency on the process current working directory.
type Invocation struct {
	BaseDir    string
	ConfigPath string
	InputPath  string
	OutputPath string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation builds the canonical Invocation from the argument slice
// (excluding argv[0]).
//
// Determinism goals:
//   - Takes no flags and no positional arguments; file names come from the
//     configuration, never from the command line.
//   - Does not read env vars.
//   - Does not read/assume the process CWD: the base directory is the
//     directory containing the running executable, symlinks resolved.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) != 0 {
		return Invocation{}, invalidInvocationf("unexpected arguments: %q (file names are read from %s, not the command line)",
			strings.Join(args, " "), ConfigFileName)
	}

	exe, err := os.Executable()
	if err != nil {
		return Invocation{}, invalidInvocationf("resolve executable location: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return Invocation{}, invalidInvocationf("resolve executable location: %v", err)
	}
	return InvocationForDir(filepath.Dir(resolved)), nil
}

// InvocationForDir builds the canonical invocation rooted at dir, leaving the
// data file paths to be resolved from the configuration. Tests construct
// invocations against temp directories through this.
func InvocationForDir(dir string) Invocation {
	base := filepath.Clean(dir)
	return Invocation{
		BaseDir:    base,
		ConfigPath: filepath.Join(base, ConfigFileName),
	}
}

// resolveUnderBase resolves a configured file name against the base
// directory. Absolute names are accepted as-is; they are still deterministic.
func resolveUnderBase(base, name string) string {
	clean := filepath.Clean(name)
	if filepath.IsAbs(clean) {
		return clean
	}
	return filepath.Clean(filepath.Join(base, clean))
}

// ExitCode extracts a semantic exit code from an error. Invocation errors
// carry their own code, configuration errors map to ExitConfigError, and
// anything else unknown is an internal error.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if errors.Is(err, config.ErrInvalidConfig) {
		return ExitConfigError
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
