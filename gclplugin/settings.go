// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import "fillmore-labs.com/yieldcheck/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// TypeScript enables checks of embedded TypeScript sources.
	TypeScript *bool `json:"typescript,omitzero"`
	// NoLint honors nolint:yieldcheck comments in embedded sources.
	NoLint *bool `json:"nolint,omitzero"`
	// MaxFileSize sets the size in bytes above which embedded files are skipped.
	MaxFileSize *int `json:"max-file-size,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the yieldcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.TypeScript, analyzer.WithTypeScript)
	opts = appendOption(opts, s.NoLint, analyzer.WithNoLint)
	opts = appendOption(opts, s.MaxFileSize, analyzer.WithMaxFileSize)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
