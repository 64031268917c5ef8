// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gensupport

import (
	"fmt"
	"strings"
)

// MissingParameterError reports required request parameters that were left
// empty. It is returned before any request is built or sent, so callers can
// rely on the absence of network side effects when they see it.
type MissingParameterError struct {
	// Method is the fully qualified RPC name, e.g. "bigquery.datasets.delete".
	Method string
	// Missing holds every absent parameter name, in the order the method
	// declares them.
	Missing []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("googleapi: %s: missing required parameters: %s",
		e.Method, strings.Join(e.Missing, ", "))
}

// CheckRequired validates the required parameters of a method before a
// request is constructed. pairs alternates parameter names and their values;
// a parameter whose value is empty counts as missing. All missing names are
// reported together rather than one at a time.
func CheckRequired(method string, pairs ...string) error {
	if len(pairs)%2 != 0 {
		panic("gensupport: CheckRequired called with odd number of arguments")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingParameterError{Method: method, Missing: missing}
}
