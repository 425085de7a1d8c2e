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

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/imdario/mergo"

	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
	"github.com/pkgship/pkgship/pkg/pkgship/version"
	yamlutil "github.com/pkgship/pkgship/pkg/pkgship/yaml"
)

const packageVersionKey = "package_version"

// Load reads and validates the deployment configuration.
func Load(ctx context.Context, filename string) (*DeployConfig, error) {
	buf, err := util.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %q: %w", filename, err)
	}

	cfg := &DeployConfig{}
	if err := yamlutil.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %q: %w", filename, err)
	}
	if err := yamlutil.UnmarshalStrict(buf, &DeployConfig{}); err != nil {
		log.Entry(ctx).Debugf("Ignoring unknown keys in %q: %v", filename, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", filename, err)
	}

	log.Entry(ctx).Infof("Loaded configuration for %s %s from %q", cfg.Project.ProjectName, cfg.PackageVersion, filename)
	return cfg, nil
}

// Validate checks the fields the pipeline relies on.
func Validate(cfg *DeployConfig) error {
	if cfg.PackageVersion == "" {
		return fmt.Errorf("%s is required", packageVersionKey)
	}
	if err := version.Validate(cfg.PackageVersion); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Project.ProjectName) == "" {
		return fmt.Errorf("project.project_name is required")
	}
	switch cfg.Pipeline.Test.Detect {
	case "", constants.DetectExitCode, constants.DetectSummary:
	default:
		return fmt.Errorf("unknown test detection %q, expected %q or %q", cfg.Pipeline.Test.Detect, constants.DetectExitCode, constants.DetectSummary)
	}
	return nil
}

// ApplyDefaults fills the unset pipeline fields. Defaults are never persisted.
func ApplyDefaults(cfg *DeployConfig) error {
	if err := mergo.Merge(&cfg.Pipeline, defaultPipeline()); err != nil {
		return fmt.Errorf("applying pipeline defaults: %w", err)
	}
	return nil
}

func defaultPipeline() PipelineConfig {
	skipExisting := true
	return PipelineConfig{
		CleanDirs:     append([]string(nil), constants.DefaultCleanDirs...),
		CleanPatterns: append([]string(nil), constants.DefaultCleanPatterns...),
		Test: TestConfig{
			Command:    constants.DefaultTestCommand,
			Detect:     constants.DetectExitCode,
			PassMarker: constants.DefaultPassMarker,
		},
		Build: BuildConfig{
			Command: constants.DefaultBuildCommand,
		},
		Upload: UploadConfig{
			Command:      constants.DefaultUploadCommand,
			Repository:   constants.DefaultRepository,
			Artifacts:    append([]string(nil), constants.DefaultArtifacts...),
			SkipExisting: &skipExisting,
			EnvFile:      constants.DefaultEnvFile,
		},
	}
}

// SaveVersion persists a new package version, leaving the rest of the
// document untouched.
func SaveVersion(ctx context.Context, filename, newVersion string) error {
	buf, err := util.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading configuration %q: %w", filename, err)
	}

	updated, err := yamlutil.SetTopLevelScalar(buf, packageVersionKey, newVersion)
	if err != nil {
		return fmt.Errorf("updating %s in %q: %w", packageVersionKey, filename, err)
	}

	if err := util.WriteFile(filename, updated); err != nil {
		return fmt.Errorf("writing configuration %q: %w", filename, err)
	}

	log.Entry(ctx).Debugf("Saved %s %s to %q", packageVersionKey, newVersion, filename)
	return nil
}
