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

// NewCmdBump describes the CLI command to increment the build version.
func NewCmdBump() *cobra.Command {
	return NewCmd("bump").
		WithDescription("Increment the build number of the package version").
		WithLongDescription("Increment the third component of package_version and save it to the deployment configuration, so 0.1.9 becomes 0.1.10.").
		WithExample("Bump the version in a given configuration file", "bump -f release/deploy_config.yaml").
		NoArgs(doBump)
}

func doBump(ctx context.Context, out io.Writer) error {
	return withRunner(ctx, func(r runner.Runner) error {
		_, err := r.IncrementVersion(ctx, out)
		return err
	})
}
