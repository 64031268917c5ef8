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
	"encoding/json"
	"reflect"
	"testing"
)

type testSchema struct {
	B   bool    `json:"b,omitempty"`
	I   int64   `json:"i,omitempty"`
	S   string  `json:"s,omitempty"`
	U   uint64  `json:"u,omitempty,string"`
	Str []string `json:"str,omitempty"`
	M   map[string]string `json:"m,omitempty"`
	P   *testSchema `json:"p,omitempty"`
}

func marshalToMap(t *testing.T, s testSchema, force, null []string) map[string]interface{} {
	t.Helper()
	b, err := MarshalJSON(s, force, null)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return m
}

func TestMarshalJSONOmitsEmpty(t *testing.T) {
	m := marshalToMap(t, testSchema{S: "x"}, nil, nil)
	want := map[string]interface{}{"s": "x"}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("got %v, want %v", m, want)
	}
}

func TestMarshalJSONForceSendFields(t *testing.T) {
	m := marshalToMap(t, testSchema{}, []string{"B", "I"}, nil)
	want := map[string]interface{}{"b": false, "i": float64(0)}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("got %v, want %v", m, want)
	}
}

func TestMarshalJSONNullFields(t *testing.T) {
	m := marshalToMap(t, testSchema{S: "x"}, nil, []string{"I"})
	want := map[string]interface{}{"s": "x", "i": nil}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("got %v, want %v", m, want)
	}
}

func TestMarshalJSONNullFieldNonEmpty(t *testing.T) {
	if _, err := MarshalJSON(testSchema{I: 3}, nil, []string{"I"}); err == nil {
		t.Error("non-empty value in NullFields: got nil error")
	}
}

func TestMarshalJSONStringFormat(t *testing.T) {
	m := marshalToMap(t, testSchema{U: 18446744073709551615}, nil, nil)
	if got := m["u"]; got != "18446744073709551615" {
		t.Errorf("u = %v (%T), want decimal string", got, got)
	}
}

func TestMarshalJSONForceSendNilPointerIgnored(t *testing.T) {
	m := marshalToMap(t, testSchema{S: "x"}, []string{"P"}, nil)
	if _, ok := m["p"]; ok {
		t.Errorf("nil pointer sent despite being nil: %v", m)
	}
}

func TestMarshalJSONNullMapKeys(t *testing.T) {
	m := marshalToMap(t, testSchema{M: map[string]string{"a": "1"}}, nil, []string{"M.b"})
	got, ok := m["m"].(map[string]interface{})
	if !ok {
		t.Fatalf("m = %v", m["m"])
	}
	if got["a"] != "1" || got["b"] != nil {
		t.Errorf("m = %v, want a=1 and b=null", got)
	}
	if _, present := got["b"]; !present {
		t.Errorf("m = %v, missing explicit null key", got)
	}
}
