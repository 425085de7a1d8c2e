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

package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

type run struct {
	command    string
	output     []byte
	env        []string
	dir        *string
	err        error
	pipeOutput bool
}

// FakeCmd replays an ordered list of expected commands.
type FakeCmd struct {
	t           *testing.T
	runs        []run
	timesCalled int
}

func newFakeCmd() *FakeCmd {
	return &FakeCmd{}
}

func CmdRun(command string) *FakeCmd {
	return newFakeCmd().AndRun(command)
}

func CmdRunErr(command string, err error) *FakeCmd {
	return newFakeCmd().AndRunErr(command, err)
}

func CmdRunOut(command, output string) *FakeCmd {
	return newFakeCmd().AndRunOut(command, output)
}

func CmdRunOutErr(command, output string, err error) *FakeCmd {
	return newFakeCmd().AndRunOutErr(command, output, err)
}

func CmdRunEnv(command string, env []string) *FakeCmd {
	return newFakeCmd().AndRunEnv(command, env)
}

func CmdRunWithOutput(command, output string) *FakeCmd {
	return newFakeCmd().AndRunWithOutput(command, output)
}

func (c *FakeCmd) AndRun(command string) *FakeCmd {
	return c.addRun(run{command: command})
}

func (c *FakeCmd) AndRunErr(command string, err error) *FakeCmd {
	return c.addRun(run{command: command, err: err})
}

func (c *FakeCmd) AndRunOut(command, output string) *FakeCmd {
	return c.addRun(run{command: command, output: []byte(output)})
}

func (c *FakeCmd) AndRunOutErr(command, output string, err error) *FakeCmd {
	return c.addRun(run{command: command, output: []byte(output), err: err})
}

func (c *FakeCmd) AndRunEnv(command string, env []string) *FakeCmd {
	return c.addRun(run{command: command, env: env})
}

func (c *FakeCmd) AndRunDir(command, dir string) *FakeCmd {
	return c.addRun(run{command: command, dir: &dir})
}

// AndRunWithOutput expects RunCmd and writes output to the command's stdout.
func (c *FakeCmd) AndRunWithOutput(command, output string) *FakeCmd {
	return c.addRun(run{command: command, output: []byte(output), pipeOutput: true})
}

// ForTest makes the fake fail t when expected commands are never run.
func (c *FakeCmd) ForTest(t *testing.T) *FakeCmd {
	t.Helper()
	c.t = t
	t.Cleanup(func() {
		if remaining := len(c.runs); remaining > 0 {
			t.Errorf("%d expected command(s) were not run, next one: %s", remaining, c.runs[0].command)
		}
	})
	return c
}

// TimesCalled returns how many commands were run through the fake.
func (c *FakeCmd) TimesCalled() int {
	return c.timesCalled
}

func (c *FakeCmd) addRun(r run) *FakeCmd {
	c.runs = append(c.runs, r)
	return c
}

func (c *FakeCmd) popRun() (*run, error) {
	if len(c.runs) == 0 {
		return nil, fmt.Errorf("no more runs expected")
	}

	c.timesCalled++
	r := c.runs[0]
	c.runs = c.runs[1:]
	return &r, nil
}

func (c *FakeCmd) check(cmd *exec.Cmd) (*run, error) {
	r, err := c.popRun()
	if err != nil {
		return nil, c.fail(fmt.Errorf("unexpected command: %s", strings.Join(cmd.Args, " ")))
	}

	actual := strings.Join(cmd.Args, " ")
	if r.command != actual {
		return nil, c.fail(fmt.Errorf("expected: %s. Got: %s", r.command, actual))
	}

	for _, e := range r.env {
		if !contains(cmd.Env, e) {
			return nil, c.fail(fmt.Errorf("expected env %q for command %s, got %v", e, actual, cmd.Env))
		}
	}

	if r.dir != nil && *r.dir != cmd.Dir {
		return nil, c.fail(fmt.Errorf("expected dir %q for command %s, got %q", *r.dir, actual, cmd.Dir))
	}

	return r, nil
}

func (c *FakeCmd) fail(err error) error {
	if c.t != nil {
		c.t.Error(err)
	}
	return err
}

func (c *FakeCmd) RunCmdOut(_ context.Context, cmd *exec.Cmd) ([]byte, error) {
	r, err := c.check(cmd)
	if err != nil {
		return nil, err
	}

	if r.pipeOutput {
		return nil, c.fail(fmt.Errorf("expected RunCmd(%s) to be called, got RunCmdOut", r.command))
	}

	return r.output, r.err
}

func (c *FakeCmd) RunCmd(_ context.Context, cmd *exec.Cmd) error {
	r, err := c.check(cmd)
	if err != nil {
		return err
	}

	if r.output != nil {
		if !r.pipeOutput {
			return c.fail(fmt.Errorf("expected RunCmdOut(%s) to be called, got RunCmd", r.command))
		}
		if cmd.Stdout != nil {
			if _, err := cmd.Stdout.Write(r.output); err != nil {
				return err
			}
		}
	}

	return r.err
}

func contains(env []string, value string) bool {
	for _, e := range env {
		if e == value {
			return true
		}
	}
	return false
}
