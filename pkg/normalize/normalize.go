// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize provides Unicode-correct string normalization for
// catalog names.
//
// # Usage
//
// Names are stored lowercase so lookups are case-insensitive (e.g. "Pikachu"
// and "PIKACHU" resolve to the same record). Plain strings.ToLower mishandles
// a handful of scripts (Turkish dotted I, Greek final sigma), so the x/text
// case folder is used instead.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower is the language-neutral lowercase transformer.
//
// cases.Caser is stateful and not safe for concurrent use, so a fresh Caser
// is taken per call rather than shared.
func lower() cases.Caser {
	return cases.Lower(language.Und)
}

// Name lowercases a catalog name without trimming.
func Name(s string) string {
	return lower().String(s)
}

// Term lowercases and trims a lookup term before name resolution.
func Term(s string) string {
	return lower().String(strings.TrimSpace(s))
}
