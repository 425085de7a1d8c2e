/*
Copyright 2026 The Pkgship Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package test

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/acarl005/stripansi"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	"github.com/pkgship/pkgship/pkg/pkgship/output"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// Result is the outcome of a test run.
type Result struct {
	Passed bool

	// Lines is the captured output of the test runner, one entry per line.
	Lines []string
}

// Runner runs the project tests with an external test runner.
type Runner struct {
	testConfig config.TestConfig
	workingDir string
	env        []string
}

// NewRunner creates a new test.Runner. env is added to the environment of
// the test runner process.
func NewRunner(tc config.TestConfig, workingDir string, env []string) *Runner {
	return &Runner{
		testConfig: tc,
		workingDir: workingDir,
		env:        env,
	}
}

// Run runs the tests and captures their output. A test runner that starts
// and reports failures is a failed Result, not an error. Failing to start
// the test runner is an error.
func (r *Runner) Run(ctx context.Context, out io.Writer) (Result, error) {
	args, err := util.SplitCommand(r.testConfig.Command)
	if err != nil {
		return Result{}, fmt.Errorf("test command: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.workingDir
	cmd.Env = append(util.OSEnviron(), r.env...)

	stdout, runErr := util.RunCmdOut(ctx, cmd)
	if runErr != nil && util.ExitCodeFromError(runErr) == 0 {
		return Result{}, fmt.Errorf("running %s: %w", util.JoinCommand(args), runErr)
	}

	lines := SplitLines(stdout)
	summary := SummaryLine(lines)

	var passed bool
	switch r.testConfig.Detect {
	case constants.DetectSummary:
		passed = strings.Contains(summary, r.testConfig.PassMarker)
	default:
		passed = runErr == nil
	}

	log.Entry(ctx).Debugf("Test runner exited with status %d, summary %q", util.ExitCodeFromError(runErr), summary)
	if passed {
		output.Green.Fprintln(out, summary)
	}

	return Result{
		Passed: passed,
		Lines:  lines,
	}, nil
}

// SplitLines splits captured output into lines. `\r\n` and `\n` both end a
// line, ANSI color codes are removed and the final line terminator doesn't
// yield an empty line.
func SplitLines(captured []byte) []string {
	text := strings.ReplaceAll(string(captured), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripansi.Strip(line)
	}
	return lines
}

// SummaryLine returns the line a test runner ends its output with, where
// pytest prints its `N passed` summary.
func SummaryLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

// PrintFailures prints a failed test run: a single header followed by every
// captured line, in order.
func PrintFailures(out io.Writer, lines []string) error {
	if _, err := output.Red.Fprintln(out, constants.TestFailedHeader); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
