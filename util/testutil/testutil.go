/* Copyright 2024 The whens Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package testutil

import (
	"encoding/json"
	"fmt"
)

// JS renders its argument as JSON, falling back to Go syntax when the
// argument can't be marshaled.
func JS(x interface{}) string {
	js, err := json.Marshal(&x)
	if err != nil {
		return fmt.Sprintf("%#v", x)
	}
	return string(js)
}

// Dwimjs, when given a string or bytes, parses that data as JSON.
// Anything else comes back unchanged.
//
// See https://en.wikipedia.org/wiki/DWIM.
func Dwimjs(x interface{}) (interface{}, error) {
	switch vv := x.(type) {
	case []byte:
		return Dwimjs(string(vv))
	case string:
		var v interface{}
		if err := json.Unmarshal([]byte(vv), &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return x, nil
	}
}
