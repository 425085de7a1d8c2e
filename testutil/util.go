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

package testutil

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type T struct {
	*testing.T
}

type BadReader struct{}

func (BadReader) Read([]byte) (int, error) { return 0, fmt.Errorf("bad read") }

type BadWriter struct{}

func (BadWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("bad write") }

// FakeExitError is an error carrying a process exit status, as returned
// by a command that started but exited non-zero.
type FakeExitError struct {
	Code int
}

func (e FakeExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func (e FakeExitError) ExitCode() int { return e.Code }

// Run runs f as a subtest of t called name.
func Run(t *testing.T, name string, f func(t *T)) {
	if name == "" {
		name = t.Name()
	}
	t.Run(name, func(tt *testing.T) {
		tt.Helper()
		f(&T{T: tt})
	})
}

// Override sets a dest variable to a temp value for the duration of the test.
// The previous value is restored when the test ends.
func (t *T) Override(dest, tmp interface{}) {
	t.Helper()

	destValue := reflect.ValueOf(dest).Elem()
	if !destValue.CanSet() {
		t.Fatalf("cannot override %v", dest)
	}

	tmpV := reflect.ValueOf(tmp)
	if !tmpV.IsValid() {
		tmpV = reflect.Zero(destValue.Type())
	}
	if !tmpV.Type().AssignableTo(destValue.Type()) {
		t.Fatalf("cannot assign a %s to a %s", tmpV.Type(), destValue.Type())
	}

	saved := reflect.New(destValue.Type()).Elem()
	saved.Set(destValue)
	destValue.Set(tmpV)
	t.Cleanup(func() {
		destValue.Set(saved)
	})
}

// SetEnvs takes a map of key values to set using t.Setenv and restore
// the environment variable to its previous value after the test.
func (t *T) SetEnvs(envs map[string]string) {
	for key, value := range envs {
		t.Setenv(key, value)
	}
}

func (t *T) UnsetEnv(key string) {
	prevValue, ok := os.LookupEnv(key)
	if ok {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("cannot unset environment variable: %v", err)
		}
		t.Cleanup(func() {
			os.Setenv(key, prevValue)
		})
	}
}

func (t *T) CheckDeepEqual(expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckDeepEqual(t.T, expected, actual, opts...)
}

func (t *T) CheckErrorAndDeepEqual(shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckErrorAndDeepEqual(t.T, shouldErr, err, expected, actual, opts...)
}

func (t *T) CheckError(shouldErr bool, err error) {
	t.Helper()
	CheckError(t.T, shouldErr, err)
}

func (t *T) CheckNoError(err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func (t *T) CheckErrorContains(message string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error containing %q, but returned none", message)
		return
	}
	if !strings.Contains(err.Error(), message) {
		t.Errorf("expected message [%s] not found in error: %s", message, err.Error())
	}
}

func (t *T) CheckContains(expected, actual string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("[%s] does not contain [%s]", actual, expected)
	}
}

func (t *T) CheckNotContains(unexpected, actual string) {
	t.Helper()
	if strings.Contains(actual, unexpected) {
		t.Errorf("[%s] contains [%s]", actual, unexpected)
	}
}

func (t *T) CheckEmpty(v interface{}) {
	t.Helper()
	if rv := reflect.ValueOf(v); rv.IsValid() && rv.Len() != 0 {
		t.Errorf("expected empty, got %+v", v)
	}
}

func (t *T) CheckTrue(b bool) {
	t.Helper()
	if !b {
		t.Error("expected true, got false")
	}
}

func (t *T) CheckFalse(b bool) {
	t.Helper()
	if b {
		t.Error("expected false, got true")
	}
}

// Chdir changes the current directory for the duration of the test.
func (t *T) Chdir(dir string) {
	pwd, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to get current directory")
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal("unable to change current directory")
	}
	t.Cleanup(func() {
		if err := os.Chdir(pwd); err != nil {
			t.Fatal("unable to reset working direcrory")
		}
	})
}

func CheckDeepEqual(t *testing.T, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("%T differ (-got, +want): %s", expected, diff)
	}
}

func CheckErrorAndDeepEqual(t *testing.T, shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
		return
	}
	if !shouldErr {
		CheckDeepEqual(t, expected, actual, opts...)
	}
}

func CheckError(t *testing.T, shouldErr bool, err error) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
	}
}

func checkErr(shouldErr bool, err error) error {
	if err == nil && shouldErr {
		return fmt.Errorf("expected error, but returned none")
	}
	if err != nil && !shouldErr {
		return fmt.Errorf("unexpected error: %s", err)
	}
	return nil
}
