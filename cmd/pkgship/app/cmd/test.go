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

package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	pErrors "github.com/pkgship/pkgship/pkg/pkgship/errors"
	"github.com/pkgship/pkgship/pkg/pkgship/runner"
)

// NewCmdTest describes the CLI command to run the tests.
func NewCmdTest() *cobra.Command {
	return NewCmd("test").
		WithDescription("Run the tests and report failures").
		WithExample("Run the tests", "test").
		NoArgs(doTest)
}

func doTest(ctx context.Context, out io.Writer) error {
	return withRunner(ctx, func(r runner.Runner) error {
		result, err := r.Test(ctx, out)
		if err != nil {
			return err
		}
		if result.Passed {
			return nil
		}
		if err := r.ReportFailures(ctx, out, result.Lines); err != nil {
			return err
		}
		return pErrors.NewError(constants.Test, pErrors.ErrTestsFailed)
	})
}
