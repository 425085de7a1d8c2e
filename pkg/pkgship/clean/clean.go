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

package clean

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// Clean removes the build output directories and every path matching one of
// the glob patterns, relative to workingDir. Paths that don't exist are
// skipped, so cleaning twice is the same as cleaning once. It returns the
// removed paths.
func Clean(ctx context.Context, workingDir string, dirs, patterns []string) ([]string, error) {
	var removed []string

	for _, dir := range dirs {
		path := filepath.Join(workingDir, dir)
		ok, err := remove(path)
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := afero.Glob(util.Fs, filepath.Join(workingDir, pattern))
		if err != nil {
			return removed, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, match := range matches {
			ok, err := remove(match)
			if err != nil {
				return removed, err
			}
			if ok {
				removed = append(removed, match)
			}
		}
	}

	for _, path := range removed {
		log.Entry(ctx).Debugf("Removed %s", path)
	}
	log.Entry(ctx).Infof("Cleaned %d path(s)", len(removed))
	return removed, nil
}

func remove(path string) (bool, error) {
	if _, err := util.Fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := util.Fs.RemoveAll(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	return true, nil
}
