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
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/blang/semver"
)

var version, gitCommit, buildDate string
var platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

// Info holds the build information of the pkgship binary, set via ldflags.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Compiler  string
	Platform  string
}

// Get returns the version and buildtime information about the binary.
var Get = func() *Info {
	// These variables typically come from -ldflags settings to `go build`
	return &Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  platform,
	}
}

// Parse parses a `major.minor.build` package version. Each component
// must be a base-10 unsigned integer; leading zeros are accepted.
func Parse(s string) (semver.Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return semver.Version{}, fmt.Errorf("version %q must have exactly three dot-separated components", s)
	}
	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return semver.Version{}, fmt.Errorf("version %q has a non-numeric component %q", s, p)
		}
		nums[i] = n
	}
	return semver.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Validate checks that a package version has exactly three dot-separated
// numeric components.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// IncrementBuild increments the third (build) component of a `major.minor.build`
// version, leaving major and minor untouched: "0.1.9" becomes "0.1.10".
func IncrementBuild(s string) (string, error) {
	v, err := Parse(s)
	if err != nil {
		return "", err
	}
	if v.Patch == math.MaxUint64 {
		return "", fmt.Errorf("version %q: build number cannot be incremented without overflow", s)
	}
	parts := strings.SplitN(s, ".", 3)
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], v.Patch+1), nil
}
