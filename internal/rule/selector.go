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

package rule

import (
	"errors"
	"fmt"

	"fillmore-labs.com/yieldcheck/internal/jsast"
)

// Selectors understood by the rule host.
const (
	Program               = "Program"
	ProgramExit           = "Program:exit"
	Function              = ":function"
	FunctionExit          = ":function:exit"
	GeneratorFunction     = ":function[generator=true]"
	GeneratorFunctionExit = ":function[generator=true]:exit"
	YieldExpression       = "YieldExpression"
	YieldExpressionExit   = "YieldExpression:exit"
)

// ErrUnknownSelector is returned when a rule registers a selector the host can't match.
var ErrUnknownSelector = errors.New("unknown selector")

type selector struct {
	match func(n jsast.Node) bool
	exit  bool
}

func isProgram(n jsast.Node) bool { return n.Kind() == "program" }

func isFunction(n jsast.Node) bool { return n.FunctionKind() != jsast.NotFunction }

func isGeneratorFunction(n jsast.Node) bool { return n.IsGeneratorFunction() }

func isYieldExpression(n jsast.Node) bool { return n.Kind() == "yield_expression" }

var selectors = map[string]selector{
	Program:               {isProgram, false},
	ProgramExit:           {isProgram, true},
	Function:              {isFunction, false},
	FunctionExit:          {isFunction, true},
	GeneratorFunction:     {isGeneratorFunction, false},
	GeneratorFunctionExit: {isGeneratorFunction, true},
	YieldExpression:       {isYieldExpression, false},
	YieldExpressionExit:   {isYieldExpression, true},
}

func lookup(name string) (selector, error) {
	s, ok := selectors[name]
	if !ok {
		return selector{}, fmt.Errorf("%w %q", ErrUnknownSelector, name)
	}

	return s, nil
}
