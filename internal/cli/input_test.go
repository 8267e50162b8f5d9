package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"clickbotcheck/internal/config"
)

func TestParseInvocation_RejectsArguments(t *testing.T) {
	for _, args := range [][]string{
		{"input.xlsx"},
		{"--help"},
		{"-v"},
		{"a", "b"},
	} {
		_, err := ParseInvocation(args)
		if err == nil {
			t.Fatalf("expected error for args %q", args)
		}
		if ExitCode(err) != ExitInvalidInvocation {
			t.Fatalf("args %q: expected exit code %d, got %d", args, ExitInvalidInvocation, ExitCode(err))
		}
	}
}

func TestParseInvocation_DeterministicStruct(t *testing.T) {
	inv1, err := ParseInvocation(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv2, err := ParseInvocation(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected identical invocations, got\n%#v\n%#v", inv1, inv2)
	}

	if !filepath.IsAbs(inv1.BaseDir) {
		t.Fatalf("base dir not absolute: %q", inv1.BaseDir)
	}
	if inv1.ConfigPath != filepath.Join(inv1.BaseDir, ConfigFileName) {
		t.Fatalf("config path not under base dir: %q", inv1.ConfigPath)
	}
	if inv1.InputPath != "" || inv1.OutputPath != "" {
		t.Fatalf("data paths are resolved from configuration, got %#v", inv1)
	}
}

func TestInvocationForDir_Canonicalizes(t *testing.T) {
	dir := t.TempDir()
	inv := InvocationForDir(dir + string(filepath.Separator) + "sub" + string(filepath.Separator) + "..")
	if inv.BaseDir != filepath.Clean(dir) {
		t.Fatalf("base dir not canonicalized: %q", inv.BaseDir)
	}
	if inv.ConfigPath != filepath.Join(dir, ConfigFileName) {
		t.Fatalf("config path: %q", inv.ConfigPath)
	}
}

func TestResolveUnderBase(t *testing.T) {
	base := t.TempDir()
	if got := resolveUnderBase(base, "data.xlsx"); got != filepath.Join(base, "data.xlsx") {
		t.Fatalf("relative name not resolved under base: %q", got)
	}
	abs := filepath.Join(t.TempDir(), "elsewhere.xlsx")
	if got := resolveUnderBase(base, abs); got != abs {
		t.Fatalf("absolute name should pass through: %q", got)
	}
	if got := resolveUnderBase(base, "sub/../data.xlsx"); got != filepath.Join(base, "data.xlsx") {
		t.Fatalf("name not cleaned: %q", got)
	}
}

func TestExitCode_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invocation", invalidInvocationf("bad"), ExitInvalidInvocation},
		{"wrapped invocation", fmt.Errorf("outer: %w", invalidInvocationf("bad")), ExitInvalidInvocation},
		{"config", config.ErrInvalidConfig, ExitConfigError},
		{"wrapped config", fmt.Errorf("outer: %w", config.ErrInvalidConfig), ExitConfigError},
		{"unknown", errors.New("boom"), ExitInternalError},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("%s: expected exit code %d, got %d", tc.name, tc.want, got)
		}
	}
}
