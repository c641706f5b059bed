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

//go:build debug

// Package debug includes debugging helpers that only compile in when built
// with the "debug" tag.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Enabled is true when the generator is built with the debug tag.
const Enabled = true

// Log prints debugging information to stderr. context is optional leading
// fmt.Printf args printed before operation, useful for tagging a group of
// related log lines (e.g. the type currently being laid out).
func Log(context []any, operation string, format string, args ...any) {
	pc, file, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	pkg := name
	if idx := strings.LastIndex(pkg, "/"); idx >= 0 {
		pkg = pkg[idx+1:]
	}
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}
	file = filepath.Base(file)

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%s/%s:%d [", pkg, file, line)
	if len(context) >= 1 {
		fmt.Fprintf(buf, context[0].(string), context[1:]...)
	}
	fmt.Fprintf(buf, "] %s: ", operation)
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')

	_, _ = os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. Only compiled in with the debug tag, so
// call sites must never rely on its side effects for correctness.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("abigen: internal assertion failed: "+format, args...))
	}
}
