package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clickbotcheck/internal/config"
	"clickbotcheck/internal/eval"
	"clickbotcheck/internal/report"
	"clickbotcheck/internal/table"
)

// Engine is the minimal assessment interface the CLI wires into.
//
// This allows the CLI to prove exit-code mapping (including panic) in tests
// without depending on evaluator internals.
type Engine interface {
	Assess(cfg config.Config, src *table.Table) (*Assessment, error)
}

// Assessment bundles everything the renderer needs from one evaluated
// dataset.
type Assessment struct {
	Partition eval.Partition
	Summary   []eval.SummaryRow
}

type defaultEngine struct{}

// Assess runs the full evaluation chain: annotate, split, verify the valid
// half, summarize. Evaluation is serial here; worker counts are an evaluator
// property and the outcome is identical at any count.
func (defaultEngine) Assess(cfg config.Config, src *table.Table) (*Assessment, error) {
	ev := &eval.Evaluator{Config: cfg}
	res, err := ev.Evaluate(src)
	if err != nil {
		return nil, err
	}
	p := eval.Split(res)
	if err := eval.VerifyValidPartition(p); err != nil {
		return nil, err
	}
	summary, err := eval.Summarize(res.Annotated)
	if err != nil {
		return nil, err
	}
	return &Assessment{Partition: p, Summary: summary}, nil
}

// Result carries the semantic exit code plus the success summary line for
// stdout. Failures are reported through the returned error instead.
type Result struct {
	ExitCode int
	Stdout   string
}

// Execute is the default entrypoint for running a canonical invocation.
func Execute(inv Invocation) (Result, error) {
	return ExecuteWithEngine(inv, defaultEngine{})
}

// ExecuteWithEngine maps a canonical Invocation to one full assessment run.
//
// Responsibilities:
//   - Load the optional configuration override and validate it statically.
//   - Read the source workbook into the column-ordered table model.
//   - Run the engine: evaluate, partition, verify, summarize.
//   - Render the report workbook and write it atomically.
//   - Translate every failure to its semantic exit code.
func ExecuteWithEngine(inv Invocation, engine Engine) (res Result, execErr error) {
	res.ExitCode = ExitInternalError
	if engine == nil {
		return res, fmt.Errorf("nil engine")
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{ExitCode: ExitInternalError}
			execErr = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := config.LoadOrDefault(inv.ConfigPath)
	if err != nil {
		res.ExitCode = exitCodeForConfig(err)
		return res, err
	}

	inputPath := inv.InputPath
	if inputPath == "" {
		inputPath = resolveUnderBase(inv.BaseDir, cfg.InputFile)
	}
	outputPath := inv.OutputPath
	if outputPath == "" {
		outputPath = resolveUnderBase(inv.BaseDir, cfg.OutputFile)
	}

	src, err := table.ReadWorkbook(inputPath)
	if err != nil {
		res.ExitCode = ExitRunFailure
		return res, err
	}

	assessment, err := engine.Assess(cfg, src)
	if err != nil {
		res.ExitCode = exitCodeForAssess(err)
		return res, err
	}
	if assessment == nil {
		return res, fmt.Errorf("engine returned no assessment")
	}

	encoded, err := report.Render(assessment.Partition, assessment.Summary)
	if err != nil {
		// Rendering only fails on a malformed assessment, never on I/O.
		res.ExitCode = ExitInternalError
		return res, fmt.Errorf("render report: %w", err)
	}

	if err := prepareOutputDir(filepath.Dir(outputPath)); err != nil {
		res.ExitCode = ExitRunFailure
		return res, err
	}
	if err := writeFileAtomic(outputPath, encoded, 0o644); err != nil {
		res.ExitCode = ExitRunFailure
		return res, fmt.Errorf("write report: %w", err)
	}

	valid := len(assessment.Partition.Valid.Rows)
	invalid := len(assessment.Partition.Invalid.Rows)
	res.ExitCode = ExitSuccess
	res.Stdout = fmt.Sprintf("assessed %d rows: %d valid, %d invalid; report written to %s\n",
		valid+invalid, valid, invalid, outputPath)
	return res, nil
}

// exitCodeForConfig distinguishes a rejected configuration from a config file
// that could not be read at all.
func exitCodeForConfig(err error) int {
	if errors.Is(err, config.ErrInvalidConfig) {
		return ExitConfigError
	}
	return ExitRunFailure
}

// exitCodeForAssess maps engine failures: a header/configuration mismatch is
// a configuration error, anything else means the engine broke an internal
// invariant.
func exitCodeForAssess(err error) int {
	if errors.Is(err, config.ErrInvalidConfig) {
		return ExitConfigError
	}
	return ExitInternalError
}

// prepareOutputDir ensures the report's destination directory exists. Unlike
// a build tool's output directory it is never cleared: the destination is
// typically the base directory holding the source workbook.
func prepareOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output dir is empty")
	}
	clean := filepath.Clean(dir)
	info, err := os.Stat(clean)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(clean, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			return nil
		}
		return fmt.Errorf("stat output dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output dir is not a directory: %s", clean)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	_ = tmp.Sync() // best-effort durability
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
