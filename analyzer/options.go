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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/run"
)

// Option configures specific behavior of a [New] yieldcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
// It applies to generated Go files and to generated embedded sources alike.
func WithGenerated(generated bool) Option { return behaviorOption{"generated", config.IncludeGenerated, generated} }

// WithTypeScript is an [Option] to configure whether embedded TypeScript sources are checked.
func WithTypeScript(typeScript bool) Option {
	return behaviorOption{"typescript", config.TypeScript, typeScript}
}

// WithNoLint is an [Option] to configure whether nolint:yieldcheck comments are honored.
func WithNoLint(noLint bool) Option { return behaviorOption{"nolint", config.HonorNoLint, noLint} }

type behaviorOption struct {
	name    string
	flag    config.Flag
	enabled bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.enabled)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithMaxFileSize is an [Option] to configure the size in bytes above which embedded files are skipped.
func WithMaxFileSize(maxFileSize int) Option { return maxFileSizeOption{maxFileSize: maxFileSize} }

type maxFileSizeOption struct{ maxFileSize int }

func (o maxFileSizeOption) apply(r *run.Options) {
	r.MaxFileSize = o.maxFileSize
}

func (o maxFileSizeOption) LogAttr() slog.Attr {
	return slog.Int("maxFileSize", o.maxFileSize)
}
