// Copyright 2026 Unto Labs, Inc.
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

// Package dbg includes lazily-evaluated fmt.Formatter helpers used for
// %v-style printing of generator-internal values (plans, offsets, registry
// entries) without paying for string building when nothing prints them.
package dbg

import "fmt"

// Formatter is a fmt.Formatter implementation that just calls a function.
type Formatter func(s fmt.State)

// Format implements fmt.Formatter.
func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%%c(%T)", verb, f)
		return
	}
	f(s)
}

func (f Formatter) String() string { return fmt.Sprint(f) }

// Fprintf is like fmt.Sprintf, but the printing is delayed until the
// returned value is formatted with %v.
func Fprintf(format string, args ...any) Formatter {
	return Formatter(func(s fmt.State) { fmt.Fprintf(s, format, args...) })
}

// Dict formats a header value followed by a sequence of key/value pairs,
// e.g. dbg.Dict(header, "a", 1, "b", 2) -> "header{a: 1, b: 2}".
func Dict(header any, kv ...any) Formatter {
	return Formatter(func(s fmt.State) {
		fmt.Fprintf(s, "%v{", header)
		for i := 0; i+1 < len(kv); i += 2 {
			if i > 0 {
				fmt.Fprint(s, ", ")
			}
			fmt.Fprintf(s, "%v: %v", kv[i], kv[i+1])
		}
		fmt.Fprint(s, "}")
	})
}

// Value holds a value that is only meaningful for debugging: reading it
// anywhere outside of a Format call or a test is a sign that production
// logic has started depending on debug-only information.
type Value[T any] struct {
	x T
}

// Set stores x.
func (v *Value[T]) Set(x T) { v.x = x }

// Get returns a pointer to the stored value.
func (v *Value[T]) Get() *T { return &v.x }

// Format implements fmt.Formatter.
func (v Value[T]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), v.x)
}
