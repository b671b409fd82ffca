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
	"context"
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

var (
	// ErrUnsupported is returned for files without a known [Dialect].
	ErrUnsupported = errors.New("unsupported source file")

	// ErrLanguage is returned when a tree-sitter grammar can't be loaded.
	ErrLanguage = errors.New("tree-sitter language not available")

	// ErrNoRootNode is returned when parsing produced an empty tree.
	ErrNoRootNode = errors.New("no root node")

	// ErrSyntax is returned for sources containing syntax errors.
	ErrSyntax = errors.New("syntax error")

	errPoolType = errors.New("unexpected parser pool entry")
)

var languageFuncs = map[Dialect]func() unsafe.Pointer{
	JavaScript: javascript.GetLanguage,
	TypeScript: typescript.GetLanguage,
	TSX:        tsx.GetLanguage,
}

var languageCache sync.Map

// language returns the tree-sitter grammar for a dialect, or nil.
func language(d Dialect) *sitter.Language {
	if cached, ok := languageCache.Load(d); ok {
		if lang, ok := cached.(*sitter.Language); ok {
			return lang
		}
	}

	fn, ok := languageFuncs[d]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(d, lang)

	return lang
}

// Parser parses JavaScript and TypeScript sources into syntax trees.
// It is safe for concurrent use; tree-sitter parsers are pooled per dialect.
type Parser struct {
	pools map[Dialect]*sync.Pool
}

// NewParser creates a [Parser] for all supported dialects.
func NewParser() *Parser {
	p := &Parser{pools: make(map[Dialect]*sync.Pool, len(languageFuncs))}

	for d := range languageFuncs {
		p.pools[d] = &sync.Pool{
			New: func() any {
				lang := language(d)
				if lang == nil {
					return nil
				}

				tsParser := sitter.NewParser()
				tsParser.SetLanguage(lang)

				return tsParser
			},
		}
	}

	return p
}

// Parse parses src with the [Dialect] derived from the file name.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	d := DialectFor(filename)
	if d == Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filename)
	}

	return p.ParseDialect(ctx, d, filename, src)
}

// ParseDialect parses src with an explicit [Dialect].
// The returned [File] must be closed to release the tree.
func (p *Parser) ParseDialect(ctx context.Context, d Dialect, filename string, src []byte) (*File, error) {
	pool, ok := p.pools[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupported, filename, d)
	}

	entry := pool.Get()
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrLanguage, d)
	}

	tsParser, ok := entry.(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	root := tree.RootNode()
	if root.IsNull() {
		tree.Close()

		return nil, fmt.Errorf("%s: %w", filename, ErrNoRootNode)
	}

	f := newFile(filename, d, src, tree)

	if root.HasError() {
		pos := f.Position(int(firstSyntaxError(root).StartByte()))
		f.Close()

		return nil, fmt.Errorf("%s:%s: %w", filename, pos, ErrSyntax)
	}

	return f, nil
}

// firstSyntaxError returns the first ERROR or MISSING node below n in source order.
// n must contain an error.
func firstSyntaxError(n sitter.Node) sitter.Node {
	for !n.IsError() && !n.IsMissing() {
		found := false

		for i := range n.ChildCount() {
			if child := n.Child(i); !child.IsNull() && (child.HasError() || child.IsMissing()) {
				n, found = child, true

				break
			}
		}

		if !found {
			break
		}
	}

	return n
}
