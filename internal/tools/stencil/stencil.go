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

// Stencil derives internal/resolved/primitive_table.gen.go from the
// Primitive const block in internal/resolved/kind.go, so Size/Signed/Float
// need not each hand-maintain their own copy of the same eleven-way
// kind switch.
//
// A constant's identifier is parsed directly: a leading 'I' or 'F' marks
// signed or floating-point respectively, and the trailing digits give the
// bit width. "Char" is treated as an alias for "U8".
//
//go:generate go run . -type Primitive -out ../../resolved/primitive_table.gen.go
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

var bitWidth = regexp.MustCompile(`\d+$`)

func main() {
	typeName := flag.String("type", "Primitive", "name of the const-block type to stencil")
	out := flag.String("out", "primitive_table.gen.go", "output file path")
	flag.Parse()

	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}, "github.com/unto-labs/abigen/internal/resolved")
	if err != nil {
		log.Fatalf("stencil: load: %v", err)
	}
	if len(pkgs) != 1 {
		log.Fatalf("stencil: expected exactly one package, got %d", len(pkgs))
	}
	pkg := pkgs[0]

	names := collectConstNames(pkg, *typeName)
	if len(names) == 0 {
		log.Fatalf("stencil: no constants of type %s found", *typeName)
	}

	src := render(*typeName, names)
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatalf("stencil: gofmt: %v\n%s", err, src)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("stencil: write %s: %v", *out, err)
	}
}

// collectConstNames returns every constant identifier declared with the
// given type name, in declaration order.
func collectConstNames(pkg *packages.Package, typeName string) []string {
	var names []string
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			decl, ok := n.(*ast.GenDecl)
			if !ok || decl.Tok != token.CONST {
				return true
			}
			lastType := ""
			for _, spec := range decl.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				if vs.Type != nil {
					if ident, ok := vs.Type.(*ast.Ident); ok {
						lastType = ident.Name
					}
				}
				if lastType != typeName {
					continue
				}
				for _, id := range vs.Names {
					if id.Name != "_" {
						names = append(names, id.Name)
					}
				}
			}
			return true
		})
	}
	return names
}

// render builds the generated Go source for the primitiveInfo table.
func render(typeName string, names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by internal/tools/stencil; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//go:generate go run ../tools/stencil -type %s -out primitive_table.gen.go\n\n", typeName)
	b.WriteString("package resolved\n\n")
	b.WriteString("type primitiveInfo struct {\n\tbits   int\n\tsigned bool\n\tfloat  bool\n}\n\n")
	fmt.Fprintf(&b, "var primitiveTable = [...]primitiveInfo{\n")
	for _, name := range names {
		info := deriveInfo(name)
		fmt.Fprintf(&b, "\t%s: {bits: %d, signed: %t, float: %t},\n", name, info.bits, info.signed, info.float)
	}
	b.WriteString("}\n")
	return b.String()
}

func deriveInfo(name string) primitiveInfoLiteral {
	if name == "Char" {
		return primitiveInfoLiteral{bits: 8}
	}
	width, _ := strconv.Atoi(bitWidth.FindString(name))
	return primitiveInfoLiteral{
		bits:   width,
		signed: strings.HasPrefix(name, "I"),
		float:  strings.HasPrefix(name, "F"),
	}
}

type primitiveInfoLiteral struct {
	bits   int
	signed bool
	float  bool
}
