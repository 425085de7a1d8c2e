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

package version

import (
	"testing"

	"github.com/blang/semver"

	"github.com/pkgship/pkgship/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		in          string
		out         semver.Version
		shouldErr   bool
	}{
		{
			description: "three components",
			in:          "0.10.3",
			out:         semver.Version{Minor: 10, Patch: 3},
		},
		{
			description: "leading zeros",
			in:          "1.02.09",
			out:         semver.Version{Major: 1, Minor: 2, Patch: 9},
		},
		{
			description: "leading v is not a number",
			in:          "v0.10.0",
			shouldErr:   true,
		},
		{
			description: "parse error",
			in:          "notaversion",
			shouldErr:   true,
		},
		{
			description: "negative component",
			in:          "1.-2.3",
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			actual, err := Parse(test.in)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.out, actual)
		})
	}
}

func TestIncrementBuild(t *testing.T) {
	tests := []struct {
		description string
		in          string
		expected    string
		shouldErr   bool
	}{
		{
			description: "increments build component",
			in:          "1.2.3",
			expected:    "1.2.4",
		},
		{
			description: "carries into a new digit",
			in:          "0.1.9",
			expected:    "0.1.10",
		},
		{
			description: "zero build",
			in:          "3.0.0",
			expected:    "3.0.1",
		},
		{
			description: "large build number",
			in:          "2.14.199",
			expected:    "2.14.200",
		},
		{
			description: "leading zero in minor is kept",
			in:          "1.02.3",
			expected:    "1.02.4",
		},
		{
			description: "leading zero in build",
			in:          "1.2.09",
			expected:    "1.2.10",
		},
		{
			description: "largest build number that can be incremented",
			in:          "1.2.18446744073709551614",
			expected:    "1.2.18446744073709551615",
		},
		{
			description: "build number overflow",
			in:          "1.2.18446744073709551615",
			shouldErr:   true,
		},
		{
			description: "two components",
			in:          "1.2",
			shouldErr:   true,
		},
		{
			description: "four components",
			in:          "1.2.3.4",
			shouldErr:   true,
		},
		{
			description: "non-numeric build",
			in:          "1.2.x",
			shouldErr:   true,
		},
		{
			description: "pre-release suffix",
			in:          "1.2.3-rc1",
			shouldErr:   true,
		},
		{
			description: "empty",
			in:          "",
			shouldErr:   true,
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			actual, err := IncrementBuild(test.in)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, actual)
		})
	}
}

func TestIncrementBuildOnlyTouchesBuild(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		v := "4.7.0"
		for i := 0; i < 12; i++ {
			next, err := IncrementBuild(v)
			t.CheckNoError(err)
			v = next
		}

		parsed, err := Parse(v)
		t.CheckNoError(err)
		t.CheckDeepEqual(uint64(4), parsed.Major)
		t.CheckDeepEqual(uint64(7), parsed.Minor)
		t.CheckDeepEqual(uint64(12), parsed.Patch)
	})
}
