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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pkgship/pkgship/pkg/pkgship/constants"
)

func addPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&v, "verbosity", "v", constants.DefaultLogLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	flags.BoolVar(&opts.ForceColors, "color", false, "Print colors even when the output is not a terminal")
	flags.StringVarP(&opts.ConfigurationFile, "filename", "f", constants.DefaultConfigurationFile, "Path to the deployment configuration file")
	flags.StringVar(&opts.ManifestFile, "manifest", constants.DefaultManifestFile, "Path to the Pipfile listing the package requirements")
	flags.StringVar(&opts.ReadmeFile, "readme", constants.DefaultReadmeFile, "Path to the README used as the long description")
	flags.StringVar(&opts.Repository, "repository", "", "Package index to upload to (overrides pipeline.upload.repository)")
	flags.StringVar(&opts.EnvFile, "env-file", "", "Dotenv file passed to the build and upload tools (overrides pipeline.upload.env_file)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Print the build and upload commands instead of running them")
	flags.StringVarP(&opts.WorkingDir, "workdir", "w", "", "Directory of the project to deploy (defaults to the current directory)")
}

// setFlagsFromEnvVariables sets every flag that wasn't given on the command
// line from its PKGSHIP_<FLAG> environment variable.
func setFlagsFromEnvVariables(rootCmd *cobra.Command) error {
	var errs []string
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		envVar := FlagToEnvVarName(f)
		if val, present := os.LookupEnv(envVar); present {
			if err := f.Value.Set(val); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", envVar, err))
				return
			}
			f.DefValue = val
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment variables: %s", strings.Join(errs, ", "))
	}
	return nil
}

// FlagToEnvVarName returns the environment variable setting a flag, like
// PKGSHIP_ENV_FILE for --env-file.
func FlagToEnvVarName(f *pflag.Flag) string {
	return fmt.Sprintf("%s_%s", constants.EnvPrefix, strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"))
}
