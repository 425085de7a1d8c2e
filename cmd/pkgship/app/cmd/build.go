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

	"github.com/pkgship/pkgship/pkg/pkgship/runner"
)

// NewCmdBuild describes the CLI command to build the distributions.
func NewCmdBuild() *cobra.Command {
	return NewCmd("build").
		WithDescription("Build the source and wheel distributions").
		WithLongDescription("Run the packaging tool with the package metadata exported as PKGSHIP_* environment variables.").
		WithExample("Build the package", "build").
		WithExample("Print the build command without running it", "build --dry-run").
		NoArgs(doBuild)
}

func doBuild(ctx context.Context, out io.Writer) error {
	return withRunner(ctx, func(r runner.Runner) error {
		return r.Build(ctx, out)
	})
}
