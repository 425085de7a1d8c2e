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

package errors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// Exit codes returned by the pkgship CLI.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitConfigError = 2
	ExitEnvError    = 3
)

// ErrTestsFailed is returned when the test runner reports a failing run.
var ErrTestsFailed = errors.New("tests failed, package not published")

// PhaseError is an error which happened during a given pipeline phase.
type PhaseError struct {
	Phase constants.Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// NewError tags err with phase. A nil err stays nil.
func NewError(phase constants.Phase, err error) error {
	if err == nil {
		return nil
	}
	var pe *PhaseError
	if errors.As(err, &pe) {
		return err
	}
	return &PhaseError{Phase: phase, Err: err}
}

// PhaseOf returns the phase an error happened in, if known.
func PhaseOf(err error) (constants.Phase, bool) {
	var pe *PhaseError
	if errors.As(err, &pe) {
		return pe.Phase, true
	}
	return "", false
}

// ExitCode maps an error returned by a pipeline operation to a process exit code.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return ExitSuccess
	}
	if errors.Is(err, ErrTestsFailed) {
		return ExitFailure
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ExitEnvError
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return ExitEnvError
	}

	phase, _ := PhaseOf(err)
	switch phase {
	case constants.Config, constants.Version:
		return ExitConfigError
	case constants.Build, constants.Upload:
		if code := util.ExitCodeFromError(err); code > 0 {
			return code
		}
	}
	return ExitFailure
}
