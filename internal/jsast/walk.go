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

// Visitor receives depth-first traversal events. Exit is called in post-order,
// so for every node Enter and Exit form a well-nested pair.
type Visitor interface {
	Enter(n, parent Node)
	Exit(n, parent Node)
}

// VisitorFuncs adapts optional functions to the [Visitor] interface.
type VisitorFuncs struct {
	EnterFunc func(n, parent Node)
	ExitFunc  func(n, parent Node)
}

// Enter implements [Visitor].
func (v VisitorFuncs) Enter(n, parent Node) {
	if v.EnterFunc != nil {
		v.EnterFunc(n, parent)
	}
}

// Exit implements [Visitor].
func (v VisitorFuncs) Exit(n, parent Node) {
	if v.ExitFunc != nil {
		v.ExitFunc(n, parent)
	}
}

// Walk traverses the named nodes below and including root.
// The parent of root is a null [Node].
func Walk(root Node, v Visitor) {
	if root.IsNull() {
		return
	}

	walk(root, Node{}, v)
}

func walk(n, parent Node, v Visitor) {
	v.Enter(n, parent)

	for child := range n.NamedChildren() {
		walk(child, n, v)
	}

	v.Exit(n, parent)
}
