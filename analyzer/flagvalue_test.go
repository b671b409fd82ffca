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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/yieldcheck/analyzer"
	"fillmore-labs.com/yieldcheck/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Flag
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.HonorNoLint,
			args:    []string{"-typescript"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.TypeScript,
			args:    []string{"-typescript=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.TypeScript,
			args:    []string{"-typescript=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var behavior config.Behavior
			behavior.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.TypeScript
			fv := NewBehaviorValue(&behavior, value)
			fs.Var(fv, "typescript", "check TypeScript files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if behavior.Enabled(value) != tt.want {
				t.Errorf("TypeScript enabled = %v, want %v", behavior.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var behavior config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.TypeScript), "typescript", "check TypeScript files")

	if err := fs.Parse([]string{"-typescript=maybe"}); err == nil {
		t.Error("Expected parse error for invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	behavior := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&behavior, config.TypeScript)
	fs.Var(fv, "typescript", "check TypeScript files")

	const expectedUsage = `
  -typescript
    	check TypeScript files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
