/*
   Copyright 2025 The DIRPX Authors.

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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	uref "dirpx.dev/pry/utils/reflect"
)

// Local test types.
type A struct{ n int }

func TestIndirect_Unwraps(t *testing.T) {
	a := A{n: 1}
	pa := &a
	ppa := &pa
	var iface any = pa

	cases := []struct {
		name string
		val  reflect.Value
	}{
		{"plain", reflect.ValueOf(a)},
		{"ptr", reflect.ValueOf(pa)},
		{"ptr ptr", reflect.ValueOf(ppa)},
		{"iface", reflect.ValueOf(&iface).Elem()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Indirect(tc.val, 8)
			if err != nil {
				t.Fatalf("Indirect returned error: %v", err)
			}
			if got.Type() != reflect.TypeOf(A{}) {
				t.Fatalf("Indirect type = %v, want A", got.Type())
			}
		})
	}
}

func TestIndirect_Nil(t *testing.T) {
	var p *A
	if _, err := uref.Indirect(reflect.ValueOf(p), 8); !errors.Is(err, uref.ErrReflectNilValue) {
		t.Fatalf("nil ptr: err = %v, want ErrReflectNilValue", err)
	}
	if _, err := uref.Indirect(reflect.Value{}, 8); !errors.Is(err, uref.ErrReflectNilValue) {
		t.Fatalf("invalid: err = %v, want ErrReflectNilValue", err)
	}
}

func TestIndirect_TooDeep(t *testing.T) {
	a := A{}
	pa := &a
	ppa := &pa
	if _, err := uref.Indirect(reflect.ValueOf(ppa), 1); !errors.Is(err, uref.ErrReflectTooDeep) {
		t.Fatalf("MaxUnwrap=1: err = %v, want ErrReflectTooDeep", err)
	}
}

func TestInterface_ReadsUnexported(t *testing.T) {
	a := &A{n: 42}
	v := reflect.ValueOf(a).Elem()
	got := uref.Interface(v.Field(0))
	if n, ok := got.(int); !ok || n != 42 {
		t.Fatalf("Interface(n) = %v, want 42", got)
	}
}

func TestAddressable_CopyIsSnapshot(t *testing.T) {
	a := A{n: 1}
	c := uref.Addressable(reflect.ValueOf(a))
	if !c.CanAddr() {
		t.Fatal("Addressable returned a non-addressable value")
	}
	a.n = 2
	if n := uref.Interface(c.Field(0)).(int); n != 1 {
		t.Fatalf("snapshot n = %d, want 1", n)
	}
}
