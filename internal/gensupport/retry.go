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
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/googleapis/gax-go/v2"
)

// Backoff defaults for chunked media uploads. They match the upload guidance
// published for Google APIs.
const (
	backoffInitial  = 1 * time.Second
	backoffMax      = 30 * time.Second
	backoffMultiply = 2
)

func defaultBackoff() *gax.Backoff {
	return &gax.Backoff{
		Initial:    backoffInitial,
		Max:        backoffMax,
		Multiplier: backoffMultiply,
	}
}

// backoff is a hook so tests can substitute a faster schedule.
var backoff = defaultBackoff

// shouldRetry reports whether a request can be retried given the status code
// of the previous response and the error it produced, if any. It implements
// the documented upload retry guidance: 429 and 5xx responses, unexpected
// EOFs and transient network failures retry; everything else does not.
func shouldRetry(status int, err error) bool {
	if 500 <= status && status <= 599 {
		return true
	}
	if status == http.StatusTooManyRequests {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && strings.Contains(opErr.Error(), "connection reset") {
		return true
	}
	var temp interface{ Temporary() bool }
	if errors.As(err, &temp) {
		return temp.Temporary()
	}
	return false
}
