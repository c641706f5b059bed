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

package resolved

import "errors"

// These are generator-level errors raised while validating a Registry, as
// distinct from the structural error taxonomy the generated validator
// itself reports (spec.md §7). See DESIGN.md "Open Questions" /
// SPEC_FULL.md §7.
var (
	ErrUnresolvedType = errors.New("resolved: unresolved TypeRef target")
	ErrCyclicTypeRef  = errors.New("resolved: cyclic TypeRef chain")
	ErrNameCollision  = errors.New("resolved: flattened name collision")
)
