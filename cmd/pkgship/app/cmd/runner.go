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
	"errors"
	"fmt"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/runner"
)

// For tests
var createRunner = createNewRunner

func withRunner(ctx context.Context, action func(runner.Runner) error) error {
	r, err := createRunner(ctx, opts)
	if err != nil {
		return err
	}

	err = action(r)

	return alwaysSucceedWhenCancelled(ctx, err)
}

// createNewRunner loads the deployment configuration and creates a Runner for it.
func createNewRunner(ctx context.Context, opts config.PkgshipOptions) (runner.Runner, error) {
	r, err := runner.NewForConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("creating runner: %w", err)
	}
	return r, nil
}

func alwaysSucceedWhenCancelled(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	// if the context was cancelled act as if all is well
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return err
}
