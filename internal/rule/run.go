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
	"fmt"
	"slices"

	"fillmore-labs.com/yieldcheck/internal/jsast"
	"fillmore-labs.com/yieldcheck/internal/report"
)

// listener is a registered handler together with its owning context.
type listener struct {
	selector
	ctx     *Context
	handler Handler
}

// Run walks the file once and dispatches traversal events to the listeners
// of all rules. Every rule is instantiated afresh, so independent runs never share state.
func Run(file *jsast.File, reporter report.Reporter, rules ...Rule) error {
	var enter, exit []listener

	for _, r := range rules {
		ctx := &Context{rule: r.Name(), file: file, reporter: reporter}
		ls := r.Create(ctx)

		// deterministic dispatch order within a rule
		names := make([]string, 0, len(ls))
		for name := range ls {
			names = append(names, name)
		}

		slices.Sort(names)

		for _, name := range names {
			s, err := lookup(name)
			if err != nil {
				return fmt.Errorf("rule %s: %w", r.Name(), err)
			}

			l := listener{selector: s, ctx: ctx, handler: ls[name]}
			if s.exit {
				exit = append(exit, l)
			} else {
				enter = append(enter, l)
			}
		}
	}

	if len(enter) == 0 && len(exit) == 0 {
		return nil
	}

	jsast.Walk(file.Root(), dispatcher{enter: enter, exit: exit})

	return nil
}

type dispatcher struct {
	enter, exit []listener
}

func (d dispatcher) Enter(n, parent jsast.Node) { dispatch(d.enter, n, parent) }

func (d dispatcher) Exit(n, parent jsast.Node) { dispatch(d.exit, n, parent) }

func dispatch(ls []listener, n, parent jsast.Node) {
	for _, l := range ls {
		if !l.match(n) {
			continue
		}

		l.ctx.parent = parent
		l.handler(n)
	}
}
