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
	"io"
	"strings"
	"time"

	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	pErrors "github.com/pkgship/pkgship/pkg/pkgship/errors"
	"github.com/pkgship/pkgship/pkg/pkgship/output"
	"github.com/pkgship/pkgship/pkg/pkgship/output/log"
)

// withTimings runs a pipeline phase between a start line and a completion
// line carrying its duration. Errors are tagged with the phase.
func withTimings(ctx context.Context, out io.Writer, phase constants.Phase, action func(context.Context) error) error {
	start := time.Now()
	output.Default.Fprintf(out, "Starting %s...\n", strings.ToLower(string(phase)))

	ctx = log.WithPhase(ctx, phase)
	if err := action(ctx); err != nil {
		log.Entry(ctx).Debugf("%s failed after %s", phase, time.Since(start))
		return pErrors.NewError(phase, err)
	}

	fmt.Fprintln(out, string(phase), "complete in", time.Since(start).Round(time.Millisecond))
	return nil
}
