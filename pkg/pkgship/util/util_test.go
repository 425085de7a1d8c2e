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

package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/pkgship/pkgship/testutil"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		description string
		command     string
		expected    []string
		shouldErr   bool
	}{
		{description: "simple", command: "pytest", expected: []string{"pytest"}},
		{description: "arguments", command: "pipenv run python -m twine upload", expected: []string{"pipenv", "run", "python", "-m", "twine", "upload"}},
		{description: "quotes", command: `pytest -k "not slow" 'tests dir'`, expected: []string{"pytest", "-k", "not slow", "tests dir"}},
		{description: "empty", command: "  ", shouldErr: true},
		{description: "unterminated quote", command: `pytest "tests`, shouldErr: true},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			args, err := SplitCommand(test.command)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, args)
		})
	}
}

func TestJoinCommand(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.CheckDeepEqual(`pytest -k 'not slow'`, JoinCommand([]string{"pytest", "-k", "not slow"}))
	})
}

func TestResolvePath(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		description string
		workingDir  string
		path        string
		expected    string
	}{
		{description: "relative", workingDir: "/project", path: "deploy_config.yaml", expected: filepath.Join("/project", "deploy_config.yaml")},
		{description: "absolute", workingDir: "/project", path: "/etc/pkgship.yaml", expected: "/etc/pkgship.yaml"},
		{description: "no working dir", path: "Pipfile", expected: "Pipfile"},
		{description: "home", workingDir: "/project", path: "~/.pypirc.env", expected: filepath.Join(home, ".pypirc.env")},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			path, err := ResolvePath(test.workingDir, test.path)

			t.CheckNoError(err)
			t.CheckDeepEqual(test.expected, path)
		})
	}
}

func TestEnvSlice(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.CheckDeepEqual([]string{"A=1", "B=two words", "C="}, EnvSlice(map[string]string{"C": "", "A": "1", "B": "two words"}))
		t.CheckEmpty(EnvSlice(nil))
	})
}

func TestToScreamingSnakeCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "Name", expected: "NAME"},
		{in: "AuthorEmail", expected: "AUTHOR_EMAIL"},
		{in: "LongDescriptionContentType", expected: "LONG_DESCRIPTION_CONTENT_TYPE"},
		{in: "URL", expected: "URL"},
		{in: "runID", expected: "RUN_ID"},
	}
	for _, test := range tests {
		testutil.Run(t, test.in, func(t *testutil.T) {
			t.CheckDeepEqual(test.expected, ToScreamingSnakeCase(test.in))
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	tests := []struct {
		description string
		content     string
		missing     bool
		expected    map[string]string
		shouldErr   bool
	}{
		{
			description: "credentials",
			content:     "# twine\nTWINE_USERNAME=__token__\nexport TWINE_PASSWORD=\"pypi-secret\"\n",
			expected:    map[string]string{"TWINE_USERNAME": "__token__", "TWINE_PASSWORD": "pypi-secret"},
		},
		{
			description: "missing file",
			missing:     true,
		},
		{
			description: "malformed",
			content:     "NOT A VALID LINE\n",
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			fs := afero.NewMemMapFs()
			t.Override(&Fs, fs)
			if !test.missing {
				t.CheckNoError(afero.WriteFile(fs, ".env", []byte(test.content), 0o600))
			}

			env, err := LoadEnvFile(context.Background(), ".env")

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, env)
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		fs := afero.NewMemMapFs()
		t.Override(&Fs, fs)
		t.CheckNoError(afero.WriteFile(fs, "deploy_config.yaml", []byte("a"), 0o600))

		t.CheckNoError(WriteFile("deploy_config.yaml", []byte("b")))
		content, err := ReadFile("deploy_config.yaml")
		t.CheckNoError(err)
		t.CheckDeepEqual("b", string(content))

		info, err := fs.Stat("deploy_config.yaml")
		t.CheckNoError(err)
		t.CheckDeepEqual(os.FileMode(0o600), info.Mode().Perm())

		_, err = ReadFile("")
		t.CheckError(true, err)
	})
}
