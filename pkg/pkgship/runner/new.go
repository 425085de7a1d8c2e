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
	"fmt"

	"github.com/google/uuid"

	"github.com/pkgship/pkgship/pkg/pkgship/build"
	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	pErrors "github.com/pkgship/pkgship/pkg/pkgship/errors"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/test"
	"github.com/pkgship/pkgship/pkg/pkgship/upload"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// PipelineRunner runs the deployment pipeline of one package. It owns the
// loaded configuration for the lifetime of the run.
type PipelineRunner struct {
	opts       config.PkgshipOptions
	cfg        *config.DeployConfig
	configFile string
	runID      string

	tester   *test.Runner
	builder  *build.Builder
	uploader *upload.Uploader
}

// NewForConfig loads the deployment configuration once and returns a
// PipelineRunner for it.
func NewForConfig(ctx context.Context, opts config.PkgshipOptions) (*PipelineRunner, error) {
	ctx = log.WithPhase(ctx, constants.Config)
	opts = withDefaultFiles(opts)

	configFile, err := util.ResolvePath(opts.WorkingDir, opts.ConfigurationFile)
	if err != nil {
		return nil, pErrors.NewError(constants.Config, err)
	}

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, pErrors.NewError(constants.Config, err)
	}
	if err := config.ApplyDefaults(cfg); err != nil {
		return nil, pErrors.NewError(constants.Config, err)
	}
	if opts.Repository != "" {
		cfg.Pipeline.Upload.Repository = opts.Repository
	}
	if opts.EnvFile != "" {
		cfg.Pipeline.Upload.EnvFile = opts.EnvFile
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	envFile, err := util.ResolvePath(opts.WorkingDir, cfg.Pipeline.Upload.EnvFile)
	if err != nil {
		return nil, pErrors.NewError(constants.Config, err)
	}
	dotEnv, err := util.LoadEnvFile(ctx, envFile)
	if err != nil {
		return nil, pErrors.NewError(constants.Config, err)
	}

	r := &PipelineRunner{
		opts:       opts,
		cfg:        cfg,
		configFile: configFile,
		runID:      runID,
	}

	secrets := util.EnvSlice(dotEnv)
	r.tester = test.NewRunner(cfg.Pipeline.Test, opts.WorkingDir, r.phaseEnv(constants.Test, nil))
	r.builder = build.NewBuilder(cfg.Pipeline.Build, opts.WorkingDir, r.phaseEnv(constants.Build, secrets))
	r.uploader = upload.NewUploader(cfg.Pipeline.Upload, opts.WorkingDir, r.phaseEnv(constants.Upload, secrets))

	log.Entry(ctx).Infof("Run %s of %q for %s %s", runID, opts.Command, cfg.Project.ProjectName, cfg.PackageVersion)
	return r, nil
}

func withDefaultFiles(opts config.PkgshipOptions) config.PkgshipOptions {
	if opts.ConfigurationFile == "" {
		opts.ConfigurationFile = constants.DefaultConfigurationFile
	}
	if opts.ManifestFile == "" {
		opts.ManifestFile = constants.DefaultManifestFile
	}
	if opts.ReadmeFile == "" {
		opts.ReadmeFile = constants.DefaultReadmeFile
	}
	return opts
}

// phaseEnv is the environment added to the tool run by a phase.
func (r *PipelineRunner) phaseEnv(phase constants.Phase, extra []string) []string {
	env := append([]string{}, extra...)
	return append(env,
		fmt.Sprintf("%s_RUN_ID=%s", constants.EnvPrefix, r.runID),
		fmt.Sprintf("%s_PHASE=%s", constants.EnvPrefix, phase),
	)
}

// Config returns the loaded configuration, with defaults applied.
func (r *PipelineRunner) Config() *config.DeployConfig {
	return r.cfg
}

// RunID identifies this run in the environment of every tool it starts.
func (r *PipelineRunner) RunID() string {
	return r.runID
}
