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
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

const (
	packagesTable = "packages"
	anyVersion    = "*"
)

// Requirements are the `install_requires` entries of a package, such as
// `requests>=2.0` or `uvicorn[standard]`.
type Requirements []string

type pipfile struct {
	Packages map[string]interface{} `toml:"packages"`
}

// Load reads the `[packages]` table of a Pipfile into requirement strings,
// in the order the packages are declared. A missing Pipfile yields no
// requirements.
func Load(ctx context.Context, path string) (Requirements, error) {
	buf, err := util.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Entry(ctx).Debugf("No manifest at %q, assuming no requirements", path)
			return Requirements{}, nil
		}
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	var p pipfile
	md, err := toml.Decode(string(buf), &p)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}

	reqs := Requirements{}
	for _, name := range packageNames(md, p.Packages) {
		req, err := requirement(name, p.Packages[name])
		if err != nil {
			return nil, fmt.Errorf("manifest %q: %w", path, err)
		}
		reqs = append(reqs, req)
	}

	log.Entry(ctx).Debugf("Found %d requirement(s) in %q", len(reqs), path)
	return reqs, nil
}

// packageNames lists the keys of the packages table in declaration order.
func packageNames(md toml.MetaData, packages map[string]interface{}) []string {
	var names []string
	seen := map[string]bool{}
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != packagesTable {
			continue
		}
		if _, found := packages[key[1]]; found && !seen[key[1]] {
			seen[key[1]] = true
			names = append(names, key[1])
		}
	}

	// Keys not reported by the decoder metadata are kept, sorted, at the end.
	var rest []string
	for name := range packages {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func requirement(name string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return withConstraint(name, v), nil

	case map[string]interface{}:
		extras, err := stringList(v["extras"])
		if err != nil {
			return "", fmt.Errorf("package %q: extras: %w", name, err)
		}
		constraint, ok := v["version"].(string)
		if !ok {
			// git, path and file sources pin nothing the index understands.
			return name, nil
		}
		if len(extras) > 0 {
			name = fmt.Sprintf("%s[%s]", name, strings.Join(extras, ","))
		}
		return withConstraint(name, constraint), nil

	default:
		return "", fmt.Errorf("package %q: unsupported value %v", name, value)
	}
}

func withConstraint(name, constraint string) string {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || constraint == anyVersion {
		return name
	}
	return name + constraint
}

func stringList(value interface{}) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list, got %v", value)
	}
	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %v", item)
		}
		out = append(out, s)
	}
	return out, nil
}
