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

package abigen

import (
	"errors"
	"fmt"
)

// Generator-level errors: preconditions this package itself enforces while
// resolving, laying out, or emitting a registry. These are distinct from
// the structural error taxonomy the *emitted* validator reports in its own
// target language (spec.md §7); see DESIGN.md.
const (
	errCodeOK errCode = iota
	errCodeReferenceNotEarlier
	errCodeDuplicateSDU
	errCodeUnsupportedKind
)

type errCode int

var errs = [...]error{
	errCodeOK: nil,
	errCodeReferenceNotEarlier: errors.New(
		"field reference is not to an earlier field"),
	errCodeDuplicateSDU: errors.New(
		"struct has more than one size-discriminated-union field"),
	errCodeUnsupportedKind: errors.New(
		"accessor synthesis is not supported for this kind"),
}

// ErrReferenceNotEarlier, ErrDuplicateSDU, and ErrUnsupportedKind are the
// sentinels callers compare against with errors.Is. They are the Unwrap
// target of every *genError this package returns; use errors.Is(err,
// abigen.ErrDuplicateSDU) rather than comparing *genError directly.
var (
	ErrReferenceNotEarlier = errs[errCodeReferenceNotEarlier]
	ErrDuplicateSDU        = errs[errCodeDuplicateSDU]
	ErrUnsupportedKind     = errs[errCodeUnsupportedKind]
)

// genError carries the type/field context a bare sentinel can't.
type genError struct {
	code     errCode
	typeName string
	field    string
}

func (e *genError) Unwrap() error { return errs[e.code] }

func (e *genError) Error() string {
	if e.field == "" {
		return fmt.Sprintf("abigen: %v: %s", e.Unwrap(), e.typeName)
	}
	return fmt.Sprintf("abigen: %v: %s.%s", e.Unwrap(), e.typeName, e.field)
}

func errReferenceNotEarlier(typeName, field string) error {
	return &genError{code: errCodeReferenceNotEarlier, typeName: typeName, field: field}
}

func errDuplicateSDU(typeName string) error {
	return &genError{code: errCodeDuplicateSDU, typeName: typeName}
}

func errUnsupportedKind(typeName string) error {
	return &genError{code: errCodeUnsupportedKind, typeName: typeName}
}
