package core

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/EmundoT/repro-verify/internal/types"
)

// CommandResult is the outcome of running an external tool.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner runs an external program. err is non-nil only when the
// program could not be started or was interrupted; a non-zero exit status
// is reported through CommandResult.ExitCode.
type CommandRunner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// ExecRunner implements CommandRunner with os/exec.
type ExecRunner struct{}

// LookPath implements CommandRunner.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// Compile-time interface satisfaction check.
var _ Comparator = (*DiffoscopeComparator)(nil)

// DiffoscopeComparator runs diffoscope as a comparison backend and reports
// which of its optional tools are missing.
type DiffoscopeComparator struct {
	path   string
	runner CommandRunner

	capsOnce sync.Once
	caps     types.EnvironmentCapabilities
}

// NewDiffoscopeComparator creates a comparator for the diffoscope executable
// at path (looked up on PATH when not absolute).
func NewDiffoscopeComparator(path string, runner CommandRunner) *DiffoscopeComparator {
	if runner == nil {
		runner = ExecRunner{}
	}
	if path == "" {
		path = DefaultDiffoscope
	}
	return &DiffoscopeComparator{path: path, runner: runner}
}

// Available reports whether the diffoscope executable can be found.
func (d *DiffoscopeComparator) Available() bool {
	_, err := d.runner.LookPath(d.path)
	return err == nil
}

// Compare implements Comparator. diffoscope exits 0 for identical inputs
// and 1 when it found differences; the JSON report becomes the details.
func (d *DiffoscopeComparator) Compare(ctx context.Context, fileA, fileB, workDir string) (bool, json.RawMessage, error) {
	bin, err := d.runner.LookPath(d.path)
	if err != nil {
		return false, nil, fmt.Errorf("%w: %s not found: %v", ErrComparatorUnavailable, d.path, err)
	}

	res, err := d.runner.Run(ctx, workDir, bin, "--json", "-", fileA, fileB)
	if err != nil {
		return false, nil, fmt.Errorf("run diffoscope: %w", err)
	}

	switch res.ExitCode {
	case 0:
		return true, nil, nil
	case 1:
		out := bytes.TrimSpace(res.Stdout)
		if json.Valid(out) {
			return false, json.RawMessage(out), nil
		}
		// Older releases may print text; keep it as a JSON string.
		quoted, err := json.Marshal(string(out))
		if err != nil {
			return false, nil, fmt.Errorf("encode diffoscope output: %w", err)
		}
		return false, quoted, nil
	default:
		return false, nil, fmt.Errorf("diffoscope exited with status %d: %s", res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
}

// Capabilities implements Comparator. The probe runs once per comparator;
// any failure leaves the affected fields empty.
func (d *DiffoscopeComparator) Capabilities(ctx context.Context) types.EnvironmentCapabilities {
	d.capsOnce.Do(func() {
		d.caps = d.probe(ctx)
	})
	return d.caps
}

func (d *DiffoscopeComparator) probe(ctx context.Context) types.EnvironmentCapabilities {
	var caps types.EnvironmentCapabilities

	bin, err := d.runner.LookPath(d.path)
	if err != nil {
		return caps
	}

	if res, err := d.runner.Run(ctx, "", bin, "--version"); err == nil && res.ExitCode == 0 {
		caps.ComparatorVersion = parseDiffoscopeVersion(string(res.Stdout))
	}

	if res, err := d.runner.Run(ctx, "", bin, "--list-missing-tools"); err == nil && res.ExitCode == 0 {
		parseMissingTools(string(res.Stdout), &caps)
	}

	return caps
}

// parseDiffoscopeVersion turns "diffoscope 251\n" into "251".
func parseDiffoscopeVersion(out string) string {
	out = strings.TrimSpace(out)
	return strings.TrimSpace(strings.TrimPrefix(out, "diffoscope"))
}

var availableInRegexp = regexp.MustCompile(`^Available-in-(.+)-packages$`)

// parseMissingTools reads the "Key: a, b, c" lines printed by
// diffoscope --list-missing-tools into caps. Lists are kept sorted.
func parseMissingTools(out string, caps *types.EnvironmentCapabilities) {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		items := splitToolList(value)

		switch {
		case key == "External-Tools-Required":
			caps.MissingExternalTools = items
		case key == "Missing-Python-Modules":
			caps.MissingOptionalModules = items
		case availableInRegexp.MatchString(key):
			platform := availableInRegexp.FindStringSubmatch(key)[1]
			if caps.ToolAvailability == nil {
				caps.ToolAvailability = make(map[string][]string)
			}
			caps.ToolAvailability[platform] = items
		}
	}
}

func splitToolList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	sort.Strings(items)
	return items
}
