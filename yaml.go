/*
   Copyright 2025 The DIRPX Authors

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

package dstatus

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dstatus/code"
)

// The YAML form uses exactly the keys of the JSON form, so documents can be
// converted between the two without renaming anything.

var (
	_ yaml.Marshaler   = Status{}
	_ yaml.Unmarshaler = (*Status)(nil)
	_ yaml.Marshaler   = ErrorDetails{}
	_ yaml.Unmarshaler = (*ErrorDetails)(nil)
	_ yaml.Marshaler   = ValidationError{}
	_ yaml.Unmarshaler = (*ValidationError)(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (s Status) MarshalYAML() (any, error) {
	return s.wire()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	var w statusWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	if w.Code == code.Empty {
		return fmt.Errorf("%w: status has no %q", ErrMissingDiscriminant, "code")
	}
	if err := requireKeys(node, "message"); err != nil {
		return err
	}
	return s.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (d ErrorDetails) MarshalYAML() (any, error) {
	return d.wire()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *ErrorDetails) UnmarshalYAML(node *yaml.Node) error {
	var head detailHead
	if err := node.Decode(&head); err != nil {
		return err
	}
	switch head.Type {
	case DetailErrorInfo:
		if err := requireKeys(node, "reason", "domain"); err != nil {
			return err
		}
		var info ErrorInfo
		if err := node.Decode(&info); err != nil {
			return err
		}
		*d = ErrorInfoDetail(info)
		return nil
	case "":
		return fmt.Errorf("%w: error detail has no %q", ErrMissingDiscriminant, "type")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDetailType, string(head.Type))
	}
}

// MarshalYAML implements yaml.Marshaler.
func (e ValidationError) MarshalYAML() (any, error) {
	if err := checkValidationType(e.Type); err != nil {
		return nil, err
	}
	return validationWire(e), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *ValidationError) UnmarshalYAML(node *yaml.Node) error {
	var w validationWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	if err := checkValidationType(w.Type); err != nil {
		return err
	}
	if err := requireKeys(node, "message"); err != nil {
		return err
	}
	*e = ValidationError(w)
	return nil
}

// requireKeys fails with ErrMissingField unless every key is present in the
// mapping node with a non-null value.
func requireKeys(node *yaml.Node, keys ...string) error {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	present := make(map[string]bool, len(node.Content)/2)
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			v := node.Content[i+1]
			if v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null" {
				continue
			}
			present[node.Content[i].Value] = true
		}
	}
	for _, k := range keys {
		if !present[k] {
			return fmt.Errorf("%w: %q", ErrMissingField, k)
		}
	}
	return nil
}
