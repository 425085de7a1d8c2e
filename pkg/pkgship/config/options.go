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

package config

// PkgshipOptions are options that are set by command line arguments not included
// in the config file itself
type PkgshipOptions struct {
	ConfigurationFile string
	ManifestFile      string
	ReadmeFile        string
	WorkingDir        string
	Repository        string
	EnvFile           string

	// Command is the name of the pkgship command being run.
	Command string

	// RunID identifies the run. A random one is generated when empty.
	RunID string

	DryRun      bool
	ForceColors bool
}
