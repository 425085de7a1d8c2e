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

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pkgship/pkgship/cmd/pkgship/app/flags"
	"github.com/pkgship/pkgship/pkg/pkgship/metadata"
	"github.com/pkgship/pkgship/pkg/pkgship/runner"
)

var metadataFormatFlag = flags.NewTemplateFlag("{{json .}}\n", metadata.Metadata{})

// NewCmdMetadata describes the CLI command to print the package metadata.
func NewCmdMetadata() *cobra.Command {
	return NewCmd("metadata").
		WithDescription("Print the package metadata handed to the packaging tool").
		WithExample("Print the metadata as json", "metadata").
		WithExample("Print the requirements, one per line", `metadata -o '{{join .InstallRequires "\n"}}'`).
		WithFlags(func(f *pflag.FlagSet) {
			f.VarP(metadataFormatFlag, "output", "o", metadataFormatFlag.Usage())
		}).
		NoArgs(doMetadata)
}

func doMetadata(ctx context.Context, out io.Writer) error {
	return withRunner(ctx, func(r runner.Runner) error {
		md, err := r.Metadata(ctx)
		if err != nil {
			return err
		}
		if err := metadataFormatFlag.Template().Execute(out, md); err != nil {
			return fmt.Errorf("executing template: %w", err)
		}
		return nil
	})
}
