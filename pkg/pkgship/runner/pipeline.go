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

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pkgship/pkgship/pkg/pkgship/clean"
	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	pErrors "github.com/pkgship/pkgship/pkg/pkgship/errors"
	"github.com/pkgship/pkgship/pkg/pkgship/manifest"
	"github.com/pkgship/pkgship/pkg/pkgship/metadata"
	"github.com/pkgship/pkgship/pkg/pkgship/output"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/test"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
	"github.com/pkgship/pkgship/pkg/pkgship/version"
)

// Deploy runs the whole pipeline: clean, increment the build version, run
// the tests, then build and upload when they pass or report the failures
// when they don't.
func (r *PipelineRunner) Deploy(ctx context.Context, out io.Writer) error {
	if err := r.Clean(ctx, out); err != nil {
		return err
	}

	if _, err := r.IncrementVersion(ctx, out); err != nil {
		return err
	}

	result, err := r.Test(ctx, out)
	if err != nil {
		return err
	}
	if !result.Passed {
		if err := r.ReportFailures(ctx, out, result.Lines); err != nil {
			return err
		}
		return pErrors.NewError(constants.Test, pErrors.ErrTestsFailed)
	}

	if err := r.Build(ctx, out); err != nil {
		return err
	}

	return r.Upload(ctx, out)
}

// Clean removes the outputs of previous builds.
func (r *PipelineRunner) Clean(ctx context.Context, out io.Writer) error {
	return withTimings(ctx, out, constants.Clean, func(ctx context.Context) error {
		removed, err := clean.Clean(ctx, r.opts.WorkingDir, r.cfg.Pipeline.CleanDirs, r.cfg.Pipeline.CleanPatterns)
		for _, path := range removed {
			fmt.Fprintf(out, " - removed %s\n", path)
		}
		return err
	})
}

// IncrementVersion increments the build number of the package version and
// saves it right away. It returns the new version.
func (r *PipelineRunner) IncrementVersion(ctx context.Context, out io.Writer) (string, error) {
	previous := r.cfg.PackageVersion

	err := withTimings(ctx, out, constants.Version, func(ctx context.Context) error {
		next, err := version.IncrementBuild(previous)
		if err != nil {
			return err
		}
		if err := config.SaveVersion(ctx, r.configFile, next); err != nil {
			return err
		}
		r.cfg.PackageVersion = next
		output.Default.Fprintf(out, " - %s -> %s\n", previous, output.Cyan.Sprint(next))
		return nil
	})
	if err != nil {
		return "", err
	}
	return r.cfg.PackageVersion, nil
}

// Test runs the project tests. A failed run is reported through the
// Result, not as an error.
func (r *PipelineRunner) Test(ctx context.Context, out io.Writer) (test.Result, error) {
	var result test.Result
	err := withTimings(ctx, out, constants.Test, func(ctx context.Context) error {
		var err error
		result, err = r.tester.Run(ctx, out)
		return err
	})
	return result, err
}

// ReportFailures prints the output of a failed test run.
func (r *PipelineRunner) ReportFailures(ctx context.Context, out io.Writer, lines []string) error {
	log.Entry(log.WithPhase(ctx, constants.Report)).Debugf("Reporting %d line(s) of test output", len(lines))
	return pErrors.NewError(constants.Report, test.PrintFailures(out, lines))
}

// Build builds the package distributions.
func (r *PipelineRunner) Build(ctx context.Context, out io.Writer) error {
	return withTimings(ctx, out, constants.Build, func(ctx context.Context) error {
		if r.opts.DryRun {
			args, err := r.builder.Command()
			if err != nil {
				return err
			}
			output.Yellow.Fprintf(out, "Dry run, skipping: %s\n", util.JoinCommand(args))
			return nil
		}

		md, err := r.Metadata(ctx)
		if err != nil {
			return err
		}
		return r.builder.Build(ctx, out, md)
	})
}

// Upload uploads the built distributions.
func (r *PipelineRunner) Upload(ctx context.Context, out io.Writer) error {
	return withTimings(ctx, out, constants.Upload, func(ctx context.Context) error {
		if r.opts.DryRun {
			args, err := r.uploader.Command(r.cfg.Pipeline.Upload.Artifacts)
			if err != nil {
				return err
			}
			output.Yellow.Fprintf(out, "Dry run, skipping: %s\n", util.JoinCommand(args))
			return nil
		}

		return r.uploader.Upload(ctx, out)
	})
}

// Metadata assembles the package metadata from the configuration, the
// manifest and the README. A missing README yields an empty long description.
func (r *PipelineRunner) Metadata(ctx context.Context) (metadata.Metadata, error) {
	manifestFile, err := util.ResolvePath(r.opts.WorkingDir, r.opts.ManifestFile)
	if err != nil {
		return metadata.Metadata{}, err
	}
	reqs, err := manifest.Load(ctx, manifestFile)
	if err != nil {
		return metadata.Metadata{}, err
	}

	readmeFile, err := util.ResolvePath(r.opts.WorkingDir, r.opts.ReadmeFile)
	if err != nil {
		return metadata.Metadata{}, err
	}
	readme, err := util.ReadFile(readmeFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return metadata.Metadata{}, fmt.Errorf("reading %q: %w", readmeFile, err)
		}
		log.Entry(ctx).Warnf("No README at %q, the long description will be empty", readmeFile)
	}

	return metadata.Assemble(r.cfg, reqs, string(readme)), nil
}
