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

package manifest

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/pkgship/pkgship/pkg/pkgship/util"
	"github.com/pkgship/pkgship/testutil"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		description string
		pipfile     string
		missing     bool
		expected    Requirements
		shouldErr   bool
	}{
		{
			description: "version constraints in declaration order",
			pipfile: `[[source]]
url = "https://pypi.org/simple"
verify_ssl = true
name = "pypi"

[packages]
toml = "*"
pyyaml = ">=5.3"
requests = "==2.31.0"

[dev-packages]
pytest = "*"
`,
			expected: Requirements{"toml", "pyyaml>=5.3", "requests==2.31.0"},
		},
		{
			description: "table forms",
			pipfile: `[packages]
uvicorn = {version = ">=0.20", extras = ["standard", "h2"]}
django = {version = "*"}
mylib = {git = "https://github.com/example/mylib.git", ref = "main"}
local = {path = ".", editable = true}
`,
			expected: Requirements{"uvicorn[standard,h2]>=0.20", "django", "mylib", "local"},
		},
		{
			description: "no packages table",
			pipfile:     "[dev-packages]\npytest = \"*\"\n",
			expected:    Requirements{},
		},
		{
			description: "missing manifest",
			missing:     true,
			expected:    Requirements{},
		},
		{
			description: "malformed toml",
			pipfile:     "[packages\nrequests = \"*\"\n",
			shouldErr:   true,
		},
		{
			description: "unsupported value",
			pipfile:     "[packages]\nrequests = 2\n",
			shouldErr:   true,
		},
		{
			description: "malformed extras",
			pipfile:     "[packages]\nuvicorn = {version = \"*\", extras = \"standard\"}\n",
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			fs := afero.NewMemMapFs()
			t.Override(&util.Fs, fs)
			if !test.missing {
				t.CheckNoError(afero.WriteFile(fs, "Pipfile", []byte(test.pipfile), 0o644))
			}

			reqs, err := Load(context.Background(), "Pipfile")

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, reqs)
		})
	}
}
