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

package yamlutil

import (
	"testing"

	"github.com/pkgship/pkgship/testutil"
)

func TestSetTopLevelScalar(t *testing.T) {
	tests := []struct {
		description string
		in          string
		key         string
		value       string
		expected    string
		shouldErr   bool
	}{
		{
			description: "plain scalar",
			in:          "package_version: 0.1.9\nproject:\n  project_name: sample\n",
			key:         "package_version",
			value:       "0.1.10",
			expected:    "package_version: 0.1.10\nproject:\n  project_name: sample\n",
		},
		{
			description: "keeps comments and quoting",
			in:          "# release config\npackage_version: \"1.2.3\" # bumped by CI\n",
			key:         "package_version",
			value:       "1.2.4",
			expected:    "# release config\npackage_version: \"1.2.4\" # bumped by CI\n",
		},
		{
			description: "value that would resolve as a float is quoted",
			in:          "package_version: x\n",
			key:         "package_version",
			value:       "1.5",
			expected:    "package_version: \"1.5\"\n",
		},
		{
			description: "missing key",
			in:          "project:\n  project_name: sample\n",
			key:         "package_version",
			value:       "1.0.0",
			shouldErr:   true,
		},
		{
			description: "not a scalar",
			in:          "package_version:\n  major: 1\n",
			key:         "package_version",
			value:       "1.0.0",
			shouldErr:   true,
		},
		{
			description: "not a mapping",
			in:          "- a\n- b\n",
			key:         "package_version",
			value:       "1.0.0",
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			out, err := SetTopLevelScalar([]byte(test.in), test.key, test.value)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, string(out))
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	type target struct {
		Name string `yaml:"name"`
	}
	testutil.Run(t, "", func(t *testutil.T) {
		var out target
		t.CheckNoError(UnmarshalStrict([]byte("name: a\n"), &out))
		t.CheckDeepEqual("a", out.Name)

		t.CheckError(true, UnmarshalStrict([]byte("name: a\nother: b\n"), &out))
		t.CheckNoError(Unmarshal([]byte("name: a\nother: b\n"), &out))
		t.CheckNoError(Unmarshal([]byte(""), &out))
	})
}
