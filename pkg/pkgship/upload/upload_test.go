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

package upload

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
	"github.com/pkgship/pkgship/testutil"
)

const uploadCommand = "pipenv run python -m twine upload"

func uploadConfig(skipExisting bool, artifacts ...string) config.UploadConfig {
	return config.UploadConfig{
		Command:      uploadCommand,
		Repository:   "testpypi",
		Artifacts:    artifacts,
		SkipExisting: &skipExisting,
	}
}

func TestArtifacts(t *testing.T) {
	tests := []struct {
		description string
		files       []string
		patterns    []string
		expected    []string
		shouldErr   bool
	}{
		{
			description: "dist directory",
			files:       []string{"dist/sample-0.1.10.tar.gz", "dist/sample-0.1.10-py3-none-any.whl", "setup.py"},
			patterns:    []string{"dist/*"},
			expected:    []string{"dist/sample-0.1.10-py3-none-any.whl", "dist/sample-0.1.10.tar.gz"},
		},
		{
			description: "recursive pattern",
			files:       []string{"dist/a/x.whl", "dist/b/y.whl", "dist/c.tar.gz"},
			patterns:    []string{"dist/**/*.whl"},
			expected:    []string{"dist/a/x.whl", "dist/b/y.whl"},
		},
		{
			description: "overlapping patterns are deduplicated",
			files:       []string{"dist/x.whl", "dist/x.tar.gz"},
			patterns:    []string{"dist/*.whl", "dist/*"},
			expected:    []string{"dist/x.whl", "dist/x.tar.gz"},
		},
		{
			description: "directories are skipped",
			files:       []string{"dist/sub/file.txt", "dist/x.whl"},
			patterns:    []string{"dist/*"},
			expected:    []string{"dist/x.whl"},
		},
		{
			description: "no artifacts",
			files:       []string{"setup.py"},
			patterns:    []string{"dist/*"},
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			tmpDir := t.NewTempDir().Touch(test.files...)

			uploader := NewUploader(uploadConfig(true, test.patterns...), tmpDir.Root(), nil)
			artifacts, err := uploader.Artifacts(context.Background())

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, artifacts)
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		description  string
		skipExisting bool
		repository   string
		expected     []string
	}{
		{
			description:  "skip existing to testpypi",
			skipExisting: true,
			repository:   "testpypi",
			expected:     []string{"pipenv", "run", "python", "-m", "twine", "upload", "--skip-existing", "--repository", "testpypi", "dist/a.whl"},
		},
		{
			description: "overwrite on pypi",
			repository:  "pypi",
			expected:    []string{"pipenv", "run", "python", "-m", "twine", "upload", "--repository", "pypi", "dist/a.whl"},
		},
		{
			description: "no repository",
			expected:    []string{"pipenv", "run", "python", "-m", "twine", "upload", "dist/a.whl"},
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			uc := uploadConfig(test.skipExisting)
			uc.Repository = test.repository

			args, err := NewUploader(uc, "", nil).Command([]string{"dist/a.whl"})

			t.CheckNoError(err)
			t.CheckDeepEqual(test.expected, args)
		})
	}
}

func TestUpload(t *testing.T) {
	tests := []struct {
		description string
		commands    util.Command
		expected    string
		shouldErr   bool
	}{
		{
			description: "upload succeeds",
			commands: testutil.CmdRunWithOutput(
				"pipenv run python -m twine upload --skip-existing --repository testpypi dist/sample-0.1.10.tar.gz",
				"Uploading sample-0.1.10.tar.gz\n",
			),
			expected: " - Uploading sample-0.1.10.tar.gz\n",
		},
		{
			description: "upload fails",
			commands: testutil.CmdRunErr(
				"pipenv run python -m twine upload --skip-existing --repository testpypi dist/sample-0.1.10.tar.gz",
				testutil.FakeExitError{Code: 1},
			),
			shouldErr: true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			tmpDir := t.NewTempDir().Write("dist/sample-0.1.10.tar.gz", "archive")
			t.Override(&util.DefaultExecCommand, test.commands)
			var out bytes.Buffer

			err := NewUploader(uploadConfig(true, "dist/*"), tmpDir.Root(), nil).Upload(context.Background(), &out)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, out.String())
		})
	}
}

func TestUploadEnv(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		tmpDir := t.NewTempDir().Write("dist/sample-0.1.10.tar.gz", "archive")
		t.Override(&util.OSEnviron, func() []string { return []string{"PATH=/usr/bin"} })
		t.Override(&util.DefaultExecCommand, testutil.CmdRunEnv(
			"pipenv run python -m twine upload --repository testpypi dist/sample-0.1.10.tar.gz",
			[]string{"PATH=/usr/bin", "TWINE_USERNAME=__token__", "TWINE_PASSWORD=secret"},
		))

		uploader := NewUploader(uploadConfig(false, "dist/*"), tmpDir.Root(), []string{"TWINE_USERNAME=__token__", "TWINE_PASSWORD=secret"})

		t.CheckNoError(uploader.Upload(context.Background(), &bytes.Buffer{}))
	})
}

func TestUploadNoArtifacts(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		tmpDir := t.NewTempDir()
		fake := testutil.CmdRun("pipenv run python -m twine upload")
		t.Override(&util.DefaultExecCommand, fake)

		err := NewUploader(uploadConfig(true, "dist/*"), tmpDir.Root(), nil).Upload(context.Background(), &bytes.Buffer{})

		t.CheckErrorContains("no artifacts", err)
		t.CheckDeepEqual(0, fake.TimesCalled())
	})
}
