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

package core

import (
	"encoding/json"
	"math/rand"
	"time"
)

// alphabet is used by Gensym.
var alphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Gensym makes a random string of the given length.
func Gensym(n int) string {
	bs := make([]byte, n)
	for i := 0; i < len(bs); i++ {
		bs[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(bs)
}

// Canonicalize round-trips the given value through JSON so that
// interpreters always see maps of strings and float64s.
func Canonicalize(x interface{}) (interface{}, error) {
	js, err := json.Marshal(&x)
	if err != nil {
		return nil, err
	}
	var y interface{}
	if err = json.Unmarshal(js, &y); err != nil {
		return nil, err
	}

	return y, nil
}

// Timestamp returns a string representing the current time in
// RFC3339Nano.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
