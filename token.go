// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

import (
	"strings"
	"unicode/utf8"
)

// TokenKind - Syntactic shape of a command line token.
type TokenKind int

// Token kinds
const (
	PlainArgument      TokenKind = iota // No leading dash, or the lonesome dash '-'
	EndOfOptionsMarker                  // '--' exactly
	LongOption                          // '--' prefix followed by at least one character
	ShortOption                         // '-' followed by exactly one character
	ShortCluster                        // '-' followed by more than one character
)

func (k TokenKind) String() string {
	switch k {
	case EndOfOptionsMarker:
		return "end-of-options"
	case LongOption:
		return "long"
	case ShortOption:
		return "short"
	case ShortCluster:
		return "cluster"
	}
	return "plain"
}

// Classify - Returns the syntactic kind of a token.
// Lengths are counted in characters, not bytes, so `-ñ` is a short option.
func Classify(token string) TokenKind {
	switch {
	case token == EndOfOptions:
		return EndOfOptionsMarker
	case strings.HasPrefix(token, "--"):
		return LongOption
	case strings.HasPrefix(token, "-") && token != "-":
		if utf8.RuneCountInString(token) == 2 {
			return ShortOption
		}
		return ShortCluster
	}
	return PlainArgument
}

// isOptionShaped - Indicates whether the token looks like an option: `-x`, `-xyz` or `--xyz`.
func isOptionShaped(token string) bool {
	switch Classify(token) {
	case LongOption, ShortOption, ShortCluster:
		return true
	}
	return false
}
