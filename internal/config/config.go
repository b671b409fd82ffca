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

// Package config holds the settings shared by the analyzer, plugin and command line.
package config

// Flag is a behavioral switch.
type Flag uint8

const (
	// IncludeGenerated enables checks of files marked as generated.
	IncludeGenerated Flag = 1 << iota

	// TypeScript enables checks of TypeScript sources.
	TypeScript

	// HonorNoLint suppresses diagnostics on lines with a nolint:yieldcheck comment.
	HonorNoLint
)

// Behavior is the set of enabled [Flag]s.
type Behavior = BitMask[Flag]

// DefaultBehavior returns the default set of enabled flags.
func DefaultBehavior() Behavior {
	return NewBitMask(TypeScript, HonorNoLint)
}

// DefaultMaxFileSize is the size above which files are skipped, in bytes.
// Larger files are usually bundles or minified output.
const DefaultMaxFileSize = 1 << 20

// Options represent the configuration of a yieldcheck run.
type Options struct {
	// Behavior holds the behavioral switches.
	Behavior Behavior

	// MaxFileSize is the size in bytes above which files are skipped. Zero or less disables the limit.
	MaxFileSize int

	// Concurrency bounds the number of files checked in parallel. Zero or less uses GOMAXPROCS.
	Concurrency int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:    DefaultBehavior(),
		MaxFileSize: DefaultMaxFileSize,
	}
}
