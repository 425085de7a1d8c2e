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
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
)

// Fs is the underlying filesystem to use for reading and writing project
// files. OS FS by default.
var Fs = afero.NewOsFs()

// ReadFile reads a project file through Fs.
func ReadFile(filename string) ([]byte, error) {
	if filename == "" {
		return nil, errors.New("filename not specified")
	}
	return afero.ReadFile(Fs, filename)
}

// WriteFile writes a project file through Fs, keeping its permissions
// when it already exists.
func WriteFile(filename string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := Fs.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}
	return afero.WriteFile(Fs, filename, data, perm)
}

// LoadEnvFile parses a dotenv file. A missing file yields an empty map.
func LoadEnvFile(ctx context.Context, filename string) (map[string]string, error) {
	if filename == "" {
		return nil, nil
	}
	f, err := Fs.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Entry(ctx).Debugf("No env file at %q", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file: %w", err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %q: %w", filename, err)
	}
	log.Entry(ctx).Debugf("Loaded %d variable(s) from %q", len(env), filename)
	return env, nil
}
