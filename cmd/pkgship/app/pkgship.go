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

package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkgship/pkgship/cmd/pkgship/app/cmd"
	pErrors "github.com/pkgship/pkgship/pkg/pkgship/errors"
)

// Run executes the pkgship command line. An interrupt cancels the running step.
func Run(out, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cmd.NewPkgshipCommand(out, stderr)
	c.SetArgs(os.Args[1:])
	return c.ExecuteContext(ctx)
}

// ExitCode returns the exit code of the process for the error returned by Run.
func ExitCode(err error) int {
	return pErrors.ExitCode(err)
}
