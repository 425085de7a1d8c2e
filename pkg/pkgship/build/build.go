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

package build

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/segmentio/textio"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/metadata"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// Builder builds the source and wheel distributions of the package.
type Builder struct {
	buildConfig config.BuildConfig
	workingDir  string
	env         []string
}

// NewBuilder creates a new build.Builder. env is added to the environment
// of the packaging tool, before the package metadata.
func NewBuilder(bc config.BuildConfig, workingDir string, env []string) *Builder {
	return &Builder{
		buildConfig: bc,
		workingDir:  workingDir,
		env:         env,
	}
}

// Command returns the arguments of the packaging tool.
func (b *Builder) Command() ([]string, error) {
	args, err := util.SplitCommand(b.buildConfig.Command)
	if err != nil {
		return nil, fmt.Errorf("build command: %w", err)
	}
	return args, nil
}

// Env returns the environment of the packaging tool for the given metadata.
func (b *Builder) Env(md metadata.Metadata) []string {
	env := append(util.OSEnviron(), b.env...)
	return append(env, md.Env()...)
}

// Build runs the packaging tool. Its output is streamed to out.
// A non-zero exit is an error.
func (b *Builder) Build(ctx context.Context, out io.Writer, md metadata.Metadata) error {
	args, err := b.Command()
	if err != nil {
		return err
	}

	log.Entry(ctx).Infof("Building %s %s", md.Name, md.Version)

	w := textio.NewPrefixWriter(out, " - ")
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = b.workingDir
	cmd.Env = b.Env(md)
	cmd.Stdout = w
	cmd.Stderr = w

	err = util.RunCmd(ctx, cmd)
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return fmt.Errorf("building %s %s with %s: %w", md.Name, md.Version, util.JoinCommand(args), err)
	}
	return nil
}
