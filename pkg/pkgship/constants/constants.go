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

package constants

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the default global verbosity
	DefaultLogLevel = logrus.WarnLevel

	DefaultConfigurationFile = "deploy_config.yaml"
	DefaultManifestFile      = "Pipfile"
	DefaultReadmeFile        = "README.md"
	DefaultEnvFile           = ".env"

	DefaultTestCommand   = "pytest"
	DefaultBuildCommand  = "pipenv run python setup.py sdist bdist_wheel"
	DefaultUploadCommand = "pipenv run python -m twine upload"

	// DefaultRepository is the staging package index used before a real release.
	DefaultRepository = "testpypi"

	// DefaultPassMarker is looked up in the test runner summary line.
	DefaultPassMarker = "passed"

	// TestFailedHeader is printed before the captured output of a failed test run.
	TestFailedHeader = "Test Failed"

	LongDescriptionContentType = "text/markdown"
	License                    = "Apache License 2.0"
	PythonRequires             = ">=3.8"

	// EnvPrefix prefixes the environment variables read for flags and
	// exported to subprocesses.
	EnvPrefix = "PKGSHIP"
)

// Detection strategies for a passing test run.
const (
	DetectExitCode = "exit-code"
	DetectSummary  = "summary"
)

// Phase is a step of the deployment pipeline.
type Phase string

var (
	Deploy  = Phase("Deploy")
	Config  = Phase("Config")
	Clean   = Phase("Clean")
	Version = Phase("Version")
	Test    = Phase("Test")
	Report  = Phase("Report")
	Build   = Phase("Build")
	Upload  = Phase("Upload")

	SubtaskIDNone = "-1"
)

var (
	DefaultCleanDirs     = []string{"dist", "build"}
	DefaultCleanPatterns = []string{"*.egg-info"}
	DefaultArtifacts     = []string{"dist/*"}

	Classifiers = []string{
		"Programming Language :: Python :: 3.8",
		"License :: OSI Approved :: Apache Software License",
		"Operating System :: OS Independent",
	}
)
