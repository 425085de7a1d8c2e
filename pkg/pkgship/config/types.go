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

// DeployConfig is the deployment configuration persisted in `deploy_config.yaml`.
type DeployConfig struct {
	// PackageVersion is the `major.minor.build` version of the package.
	PackageVersion string `yaml:"package_version"`

	// Project describes the package.
	Project ProjectConfig `yaml:"project"`

	// Pipeline overrides the external tools run by the pipeline.
	Pipeline PipelineConfig `yaml:"pipeline,omitempty"`
}

// ProjectConfig is the packaging metadata of the project.
type ProjectConfig struct {
	ProjectName string `yaml:"project_name"`
	Author      string `yaml:"author,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// PipelineConfig describes the external tools run by each step.
type PipelineConfig struct {
	// CleanDirs are the build output directories removed before a run.
	CleanDirs []string `yaml:"clean_dirs,omitempty"`

	// CleanPatterns are glob patterns of artifact directories removed before a run.
	CleanPatterns []string `yaml:"clean_patterns,omitempty"`

	Test   TestConfig   `yaml:"test,omitempty"`
	Build  BuildConfig  `yaml:"build,omitempty"`
	Upload UploadConfig `yaml:"upload,omitempty"`
}

// TestConfig describes how tests are run and how a passing run is detected.
type TestConfig struct {
	Command string `yaml:"command,omitempty"`

	// Detect is either `exit-code` or `summary`.
	Detect string `yaml:"detect,omitempty"`

	// PassMarker is the substring looked up in the summary line when Detect is `summary`.
	PassMarker string `yaml:"pass_marker,omitempty"`
}

type BuildConfig struct {
	Command string `yaml:"command,omitempty"`
}

// UploadConfig describes how built artifacts are published.
type UploadConfig struct {
	Command string `yaml:"command,omitempty"`

	// Repository is the package index to upload to.
	Repository string `yaml:"repository,omitempty"`

	// Artifacts are glob patterns of the files to upload.
	Artifacts []string `yaml:"artifacts,omitempty"`

	// SkipExisting skips artifacts already present in the repository.
	SkipExisting *bool `yaml:"skip_existing,omitempty"`

	// EnvFile is a dotenv file whose variables are passed to the build and upload tools.
	EnvFile string `yaml:"env_file,omitempty"`
}
