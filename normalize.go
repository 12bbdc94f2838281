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

	"github.com/DavidGamba/go-optopus/internal/sliceiterator"
	"github.com/sirupsen/logrus"
)

// token - Normalized token.
type token struct {
	value string

	// bound tokens are the argument of the option emitted right before them:
	// a cluster remainder, the value of `--name=value` or the token that
	// follows an option that requires an argument.
	bound bool

	// unknown marks a character inside a cluster that can never be an option.
	unknown bool
}

func tokenValues(tokens []token) []string {
	values := make([]string, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t.value)
	}
	return values
}

// normalize - Expands clusters and splits inline arguments.
// When the help is requested it stops and returns the request, the returned
// tokens end with the token that triggered it.
func (o *Options) normalize(args []string) ([]token, *HelpRequest) {
	tokens := []token{}
	endOfOptions := false
	pending := false // last emitted option requires an argument that it doesn't have yet

	it := sliceiterator.New(args)
	for it.Next() {
		raw := it.Value()
		if endOfOptions {
			tokens = append(tokens, token{value: raw})
			continue
		}
		if pending {
			Logger.WithFields(logrus.Fields{"token": raw, "option": tokens[len(tokens)-1].value}).Debug("mandatory argument")
			tokens = append(tokens, token{value: raw, bound: true})
			pending = false
			continue
		}

		var out []token
		switch Classify(raw) {
		case EndOfOptionsMarker:
			endOfOptions = true
			out = []token{{value: raw}}
		case ShortCluster:
			if o.IsOption(raw) {
				out = []token{{value: raw}}
			} else {
				out = o.decluster(raw)
			}
		case LongOption:
			out = o.splitInline(raw)
		default:
			out = []token{{value: raw}}
		}

		for i, t := range out {
			if !o.isHelp(t) {
				continue
			}
			tokens = append(tokens, out[:i+1]...)
			req := &HelpRequest{}
			if i+1 < len(out) {
				if out[i+1].bound {
					req.Topic, req.HasTopic = out[i+1].value, true
				}
			} else if next, ok := it.PeekNextValue(); ok {
				req.Topic, req.HasTopic = next, true
			}
			return tokens, req
		}

		tokens = append(tokens, out...)
		last := out[len(out)-1]
		pending = !last.bound && !last.unknown && o.RequiresArgument(last.value)
	}
	return tokens, nil
}

// decluster - Expands `-abc` into `-a -b -c`.
// The first option that requires an argument takes the rest of the cluster,
// an option that only accepts one takes it unless the next character is a
// declared option. A leading '=' in the taken rest is dropped.
func (o *Options) decluster(cluster string) []token {
	runes := []rune(strings.TrimPrefix(cluster, "-"))
	out := []token{}
	for i, c := range runes {
		name := "-" + string(c)
		if c == '-' {
			out = append(out, token{value: name, unknown: true})
			continue
		}
		opt := o.lookup(name)
		if opt == nil {
			out = append(out, token{value: name})
			continue
		}
		out = append(out, token{value: name})
		if i+1 == len(runes) || !opt.AcceptsArg {
			continue
		}
		next := runes[i+1]
		if opt.RequiresArg || next == '-' || !o.IsOption("-"+string(next)) {
			arg := strings.TrimPrefix(string(runes[i+1:]), "=")
			out = append(out, token{value: arg, bound: true})
			break
		}
	}
	Logger.WithFields(logrus.Fields{"cluster": cluster, "tokens": tokenValues(out)}).Debug("declustered")
	return out
}

// splitInline - Splits `--name=value` at the first '=' into `--name value`.
// The value is bound to `--name` only when `--name` is declared, otherwise
// both halves go to the binder as ordinary tokens.
func (o *Options) splitInline(raw string) []token {
	i := strings.Index(raw, "=")
	if i <= 2 {
		return []token{{value: raw}}
	}
	name, arg := raw[:i], raw[i+1:]
	declared := o.IsOption(name)
	Logger.WithFields(logrus.Fields{"option": name, "argument": arg, "declared": declared}).Debug("inline argument")
	return []token{{value: name}, {value: arg, bound: declared}}
}

func (o *Options) isHelp(t token) bool {
	if o.helpFn == nil || t.bound || t.unknown {
		return false
	}
	name, ok := o.Resolve(t.value)
	return ok && name == HelpOption
}
