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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mitchellh/go-homedir"
)

// OSEnviron is os.Environ, swappable for tests.
var OSEnviron = os.Environ

// SplitCommand splits a command line into its arguments using shell quoting rules.
func SplitCommand(command string) ([]string, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return args, nil
}

// JoinCommand is the inverse of SplitCommand.
func JoinCommand(args []string) string {
	return shellquote.Join(args...)
}

// ResolvePath expands a leading `~` and makes path relative to workingDir
// when it isn't absolute.
func ResolvePath(workingDir, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	if filepath.IsAbs(expanded) || workingDir == "" {
		return expanded, nil
	}
	return filepath.Join(workingDir, expanded), nil
}

// EnvSlice converts a map to a sorted `key=value` slice.
func EnvSlice(env map[string]string) []string {
	var keys []string
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, env[k]))
	}
	return out
}

// ToScreamingSnakeCase converts CamelCase to SCREAMING_SNAKE_CASE, like
// `AuthorEmail` to `AUTHOR_EMAIL`.
func ToScreamingSnakeCase(s string) string {
	var b strings.Builder
	isPrevUpper := false
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if !isPrevUpper && i > 0 {
				b.WriteRune('_')
			}
			isPrevUpper = true
			b.WriteRune(c)
		} else {
			isPrevUpper = false
			b.WriteString(strings.ToUpper(string(c)))
		}
	}
	return b.String()
}
