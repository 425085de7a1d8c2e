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

package yamlutil

import (
	"bytes"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

func UnmarshalStrict(in []byte, out interface{}) error {
	return unmarshal(in, out, true)
}

func Unmarshal(in []byte, out interface{}) error {
	return unmarshal(in, out, false)
}

func Marshal(in interface{}) (out []byte, err error) {
	var b bytes.Buffer
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(2)
	if err := encoder.Encode(in); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// SetTopLevelScalar rewrites the value of a top-level mapping key in a yaml
// document, keeping comments, key order and every other key untouched.
func SetTopLevelScalar(in []byte, key, value string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a yaml mapping document")
	}

	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		node := mapping.Content[i+1]
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("key %q is not a scalar", key)
		}
		node.Value = value
		node.Tag = "!!str"
		return Marshal(&doc)
	}

	return nil, fmt.Errorf("key %q not found", key)
}

func unmarshal(in []byte, out interface{}, strict bool) error {
	b := bytes.NewReader(in)
	decoder := yaml.NewDecoder(b)
	decoder.KnownFields(strict)
	if err := decoder.Decode(out); err != nil {
		// yamlv3.Unmarshal swallows EOF to return empty object for empty string.
		if err != io.EOF {
			return err
		}
	}
	return nil
}
