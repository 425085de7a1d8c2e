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

package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
	"github.com/dustin/go-humanize"
	"github.com/segmentio/textio"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

const (
	skipExistingFlag = "--skip-existing"
	repositoryFlag   = "--repository"
)

// Uploader publishes the built distributions to a package index.
type Uploader struct {
	uploadConfig config.UploadConfig
	workingDir   string
	env          []string
}

// NewUploader creates a new upload.Uploader. env is added to the
// environment of the upload tool.
func NewUploader(uc config.UploadConfig, workingDir string, env []string) *Uploader {
	return &Uploader{
		uploadConfig: uc,
		workingDir:   workingDir,
		env:          env,
	}
}

// Artifacts expands the artifact patterns into the list of files to upload.
// Relative patterns are matched in the working directory and the matches are
// returned relative to it. Matching no file is an error.
func (u *Uploader) Artifacts(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var artifacts []string

	for _, pattern := range u.uploadConfig.Artifacts {
		expanded, err := util.ResolvePath(u.workingDir, pattern)
		if err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(expanded)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", match, err)
			}
			if info.IsDir() {
				continue
			}

			artifact := match
			if !filepath.IsAbs(pattern) && u.workingDir != "" {
				if rel, err := filepath.Rel(u.workingDir, match); err == nil {
					artifact = rel
				}
			}
			if seen[artifact] {
				continue
			}
			seen[artifact] = true

			log.Entry(ctx).Infof("Found artifact %s (%s)", artifact, humanize.Bytes(uint64(info.Size())))
			artifacts = append(artifacts, artifact)
		}
	}

	if len(artifacts) == 0 {
		return nil, fmt.Errorf("no artifacts matching %v in %q, was the package built?", u.uploadConfig.Artifacts, u.workingDir)
	}
	return artifacts, nil
}

// Command returns the arguments of the upload tool for the given files.
func (u *Uploader) Command(files []string) ([]string, error) {
	args, err := util.SplitCommand(u.uploadConfig.Command)
	if err != nil {
		return nil, fmt.Errorf("upload command: %w", err)
	}

	if u.uploadConfig.SkipExisting != nil && *u.uploadConfig.SkipExisting {
		args = append(args, skipExistingFlag)
	}
	if u.uploadConfig.Repository != "" {
		args = append(args, repositoryFlag, u.uploadConfig.Repository)
	}
	return append(args, files...), nil
}

// Upload uploads every artifact to the configured repository. The output of
// the upload tool is streamed to out. A non-zero exit is an error.
func (u *Uploader) Upload(ctx context.Context, out io.Writer) error {
	artifacts, err := u.Artifacts(ctx)
	if err != nil {
		return err
	}

	args, err := u.Command(artifacts)
	if err != nil {
		return err
	}

	log.Entry(ctx).Infof("Uploading %d artifact(s) to %s", len(artifacts), u.uploadConfig.Repository)

	w := textio.NewPrefixWriter(out, " - ")
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = u.workingDir
	cmd.Env = append(util.OSEnviron(), u.env...)
	cmd.Stdout = w
	cmd.Stderr = w

	err = util.RunCmd(ctx, cmd)
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return fmt.Errorf("uploading to %s: %w", u.uploadConfig.Repository, err)
	}
	return nil
}
