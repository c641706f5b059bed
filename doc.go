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

// Package abigen generates zero-copy accessor and structural-validator
// source text for binary record schemas, targeting two dialects: a
// manual-memory (C-like) dialect and an ownership-checked (Rust-like)
// dialect. Both dialects are derived from the same offset layout plan, so
// they agree on every observable offset and value; they differ only in
// surface syntax and error-reporting convention.
//
// Generate is the single entry point: it takes an already-resolved type
// registry (internal/resolved.Registry) and returns one source string per
// requested Dialect.
package abigen
