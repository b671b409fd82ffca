// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package jsast

import (
	"iter"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/yieldcheck/internal/report"
)

// Node is a syntax tree node of a [File].
type Node struct {
	ts   sitter.Node
	file *File
}

// IsNull reports whether the node is absent, e.g. a missing field.
func (n Node) IsNull() bool {
	return n.file == nil || n.ts.IsNull()
}

// Kind returns the grammar type of the node, like "generator_function_declaration".
func (n Node) Kind() string {
	if n.IsNull() {
		return ""
	}

	return n.ts.Type()
}

// IsNamed reports whether the node is a named grammar rule rather than an anonymous token.
func (n Node) IsNamed() bool {
	return !n.IsNull() && n.ts.IsNamed()
}

// File returns the file containing the node.
func (n Node) File() *File {
	return n.file
}

// Text returns the source text of the node.
func (n Node) Text() string {
	if n.IsNull() {
		return ""
	}

	return n.ts.Content(n.file.Source)
}

// Range returns the source span of the node.
func (n Node) Range() report.Range {
	if n.IsNull() {
		return report.Range{}
	}

	return report.Range{
		Start: n.file.Position(int(n.ts.StartByte())),
		End:   n.file.Position(int(n.ts.EndByte())),
	}
}

// Field returns the child stored in the named grammar field, or a null node.
func (n Node) Field(name string) Node {
	if n.IsNull() {
		return Node{}
	}

	child := n.ts.ChildByFieldName(name)
	if child.IsNull() {
		return Node{}
	}

	return Node{ts: child, file: n.file}
}

// Parent returns the syntactic parent of the node, or a null node for the root.
func (n Node) Parent() Node {
	if n.IsNull() {
		return Node{}
	}

	parent := n.ts.Parent()
	if parent.IsNull() {
		return Node{}
	}

	return Node{ts: parent, file: n.file}
}

// EnclosingFunction returns the innermost function containing the node, or a null node.
func (n Node) EnclosingFunction() Node {
	for p := n.Parent(); !p.IsNull(); p = p.Parent() {
		if p.FunctionKind() != NotFunction {
			return p
		}
	}

	return Node{}
}

// NamedChildren yields the named children of the node.
func (n Node) NamedChildren() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n.IsNull() {
			return
		}

		for i := range n.ts.NamedChildCount() {
			child := n.ts.NamedChild(i)
			if child.IsNull() {
				continue
			}

			if !yield(Node{ts: child, file: n.file}) {
				return
			}
		}
	}
}

// Children yields all children of the node, including anonymous tokens.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n.IsNull() {
			return
		}

		for i := range n.ts.ChildCount() {
			child := n.ts.Child(i)
			if child.IsNull() {
				continue
			}

			if !yield(Node{ts: child, file: n.file}) {
				return
			}
		}
	}
}

// token returns the first anonymous child with the given text, or a null node.
func (n Node) token(value string) Node {
	for c := range n.Children() {
		if !c.IsNamed() && c.Kind() == value {
			return c
		}
	}

	return Node{}
}

// firstNamedChild returns the first named child, or a null node.
func (n Node) firstNamedChild() Node {
	for c := range n.NamedChildren() {
		return c
	}

	return Node{}
}

// FunctionKind classifies function-like nodes.
type FunctionKind uint8

const (
	// NotFunction is any node that does not introduce a function.
	NotFunction FunctionKind = iota

	// Declaration is a function declaration statement.
	Declaration

	// Expression is a function expression.
	Expression

	// Method is a class or object method definition.
	Method

	// Arrow is an arrow function.
	Arrow
)

// FunctionKind returns the syntactic kind of a function node.
func (n Node) FunctionKind() FunctionKind {
	switch n.Kind() {
	case "function_declaration", "generator_function_declaration":
		return Declaration

	case "function_expression", "function", "generator_function":
		return Expression

	case "method_definition":
		return Method

	case "arrow_function":
		return Arrow

	default:
		return NotFunction
	}
}

// IsGeneratorFunction reports whether the node is a generator function:
// a generator declaration or expression, or a method defined with `*`.
// Arrow functions can't be generators.
func (n Node) IsGeneratorFunction() bool {
	switch n.Kind() {
	case "generator_function_declaration", "generator_function":
		return true

	case "method_definition":
		return !n.token("*").IsNull()

	default:
		return false
	}
}

// Body returns the function body, or a null node for expression-bodied arrows and signatures.
func (n Node) Body() Node {
	body := n.Field("body")
	if body.Kind() != "statement_block" {
		return Node{}
	}

	return body
}

// BodyLen returns the number of statements in the function body. Comments are not counted.
func (n Node) BodyLen() int {
	count := 0

	for stmt := range n.Body().NamedChildren() {
		if strings.HasSuffix(stmt.Kind(), "comment") {
			continue
		}

		count++
	}

	return count
}
