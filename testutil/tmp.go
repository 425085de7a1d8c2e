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

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir offers actions on a temp directory.
type TempDir struct {
	t    *testing.T
	root string
}

// NewTempDir creates a temporary directory removed at the end of the test.
func (t *T) NewTempDir() *TempDir {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return &TempDir{
		t:    t.T,
		root: root,
	}
}

// Root returns the temp directory.
func (h *TempDir) Root() string {
	return h.root
}

// Path returns the path to a file in the temp directory.
func (h *TempDir) Path(file string) string {
	return filepath.Join(h.root, filepath.FromSlash(file))
}

// Mkdir makes a sub-directory, creating parents as needed.
func (h *TempDir) Mkdir(dir string) *TempDir {
	h.failIfErr(os.MkdirAll(h.Path(dir), 0o750))
	return h
}

// Write writes a file to the temp directory, creating parent directories.
func (h *TempDir) Write(file, content string) *TempDir {
	path := h.Path(file)
	h.failIfErr(os.MkdirAll(filepath.Dir(path), 0o750))
	h.failIfErr(os.WriteFile(path, []byte(content), 0o640))
	return h
}

// Touch creates a list of empty files.
func (h *TempDir) Touch(files ...string) *TempDir {
	for _, file := range files {
		h.Write(file, "")
	}
	return h
}

// Exists returns whether a path exists in the temp directory.
func (h *TempDir) Exists(file string) bool {
	_, err := os.Stat(h.Path(file))
	return err == nil
}

// Chdir changes the current directory to the temp directory for the
// duration of the test.
func (h *TempDir) Chdir() *TempDir {
	(&T{T: h.t}).Chdir(h.root)
	return h
}

func (h *TempDir) failIfErr(err error) {
	if err != nil {
		h.t.Fatal(err)
	}
}
