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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/output"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/version"
)

var (
	opts = config.PkgshipOptions{}
	v    string
)

// NewPkgshipCommand creates the root pkgship command. Without a subcommand,
// it runs the whole deployment pipeline.
func NewPkgshipCommand(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgship",
		Short: "Clean, version, test, build and upload a Python package in one go.",
		Long: `pkgship deploys a Python package: it removes previous build outputs,
increments the build number in deploy_config.yaml, runs the tests and, when
they pass, builds the distributions and uploads them to the package index.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	addPersistentFlags(rootCmd.PersistentFlags())
	envErr := setFlagsFromEnvVariables(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if envErr != nil {
			return envErr
		}
		opts.Command = cmd.Name()
		cmd.Root().SetOut(output.SetupColors(out, opts.ForceColors))

		if err := log.SetupLogs(errOut, v); err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		log.Entry(context.TODO()).Infof("pkgship %+v", version.Get())
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return doDeploy(cmd.Context(), cmd.OutOrStdout())
	}

	rootCmd.AddCommand(NewCmdClean())
	rootCmd.AddCommand(NewCmdBump())
	rootCmd.AddCommand(NewCmdTest())
	rootCmd.AddCommand(NewCmdBuild())
	rootCmd.AddCommand(NewCmdUpload())
	rootCmd.AddCommand(NewCmdMetadata())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
