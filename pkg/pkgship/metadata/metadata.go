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

package metadata

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkgship/pkgship/pkg/pkgship/config"
	"github.com/pkgship/pkgship/pkg/pkgship/constants"
	"github.com/pkgship/pkgship/pkg/pkgship/manifest"
	"github.com/pkgship/pkgship/pkg/pkgship/util"
)

// Metadata holds the arguments handed to the packaging tool.
type Metadata struct {
	Name                       string   `json:"name"`
	Version                    string   `json:"version"`
	Author                     string   `json:"author"`
	AuthorEmail                string   `json:"author_email"`
	Description                string   `json:"description"`
	LongDescription            string   `json:"long_description"`
	LongDescriptionContentType string   `json:"long_description_content_type"`
	InstallRequires            []string `json:"install_requires"`
	URL                        string   `json:"url"`
	License                    string   `json:"license"`
	Classifiers                []string `json:"classifiers"`
	PythonRequires             string   `json:"python_requires"`
}

// Assemble builds the package metadata from the configuration, the
// manifest requirements and the README content.
func Assemble(cfg *config.DeployConfig, reqs manifest.Requirements, readme string) Metadata {
	return Metadata{
		Name:                       cfg.Project.ProjectName,
		Version:                    cfg.PackageVersion,
		Author:                     cfg.Project.Author,
		AuthorEmail:                cfg.Project.AuthorEmail,
		Description:                cfg.Project.Description,
		LongDescription:            readme,
		LongDescriptionContentType: constants.LongDescriptionContentType,
		InstallRequires:            append([]string{}, reqs...),
		URL:                        cfg.Project.URL,
		License:                    constants.License,
		Classifiers:                append([]string{}, constants.Classifiers...),
		PythonRequires:             constants.PythonRequires,
	}
}

// Env converts the metadata fields to a `key=value` environment variables slice.
// Each field name is converted from CamelCase to SCREAMING_SNAKE_CASE and
// prefixed, like `AuthorEmail` to `PKGSHIP_AUTHOR_EMAIL`. Lists are newline separated.
func (m Metadata) Env() []string {
	var env []string
	structVal := reflect.ValueOf(m)
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		v := structVal.Field(i)

		var value string
		if list, ok := v.Interface().([]string); ok {
			value = strings.Join(list, "\n")
		} else {
			value = fmt.Sprintf("%v", v.Interface())
		}
		env = append(env, fmt.Sprintf("%s_%s=%s", constants.EnvPrefix, util.ToScreamingSnakeCase(f.Name), value))
	}
	return env
}
