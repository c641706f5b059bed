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

// Package instr documents, but does not implement, the instruction-building
// layer spec.md §1 names as an explicit out-of-scope collaborator: the
// component that packs a resolved schema's accessor-level field values into
// a wire instruction payload for submission to some external program.
//
// This repository's core is strictly a registry-to-source-text transform
// (internal/resolved -> internal/emit); it has no opinion on how a caller
// sequences field writes into an outbound instruction, nor on account
// metadata, signer ordering, or program addressing. A downstream consumer
// is expected to implement something shaped like:
//
//	type AccountMeta struct {
//		Address  [32]byte
//		Signer   bool
//		Writable bool
//	}
//
//	// BuildInstruction packs args (already laid out per the field order a
//	// generated `new` constructor expects) into a wire instruction payload
//	// addressed to programID, with accounts serialized as sorted indices
//	// into accounts rather than inline addresses.
//	func BuildInstruction(programID string, accounts []AccountMeta, args []byte) []byte
//
// using the field-by-field little-endian packing this repository's
// generated `new` constructors already perform, with accounts sorted by
// index the way the instruction format requires. None of this is
// implemented here; this file exists purely as the documented boundary so a
// caller integrating this generator's output knows where their own code
// plugs in.
package instr
