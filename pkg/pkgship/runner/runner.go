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
	"io"

	"github.com/pkgship/pkgship/pkg/pkgship/metadata"
	"github.com/pkgship/pkgship/pkg/pkgship/test"
)

// Runner is responsible for running the deployment pipeline, one step at a
// time or as a whole.
type Runner interface {
	Clean(context.Context, io.Writer) error
	IncrementVersion(context.Context, io.Writer) (string, error)
	Test(context.Context, io.Writer) (test.Result, error)
	ReportFailures(context.Context, io.Writer, []string) error
	Build(context.Context, io.Writer) error
	Upload(context.Context, io.Writer) error
	Deploy(context.Context, io.Writer) error
	Metadata(context.Context) (metadata.Metadata, error)
}
