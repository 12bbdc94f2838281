// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

import (
	"github.com/DavidGamba/go-optopus/internal/option"
	"github.com/DavidGamba/go-optopus/internal/sliceiterator"
	"github.com/DavidGamba/go-optopus/internal/suggest"
	"github.com/sirupsen/logrus"
)

// bind - Marks options as selected and attaches arguments to their options.
//
// owner is the option emitted right before the current token. It only lives
// for one token: once something is bound to it, or a plain argument shows up,
// it is cleared.
func (o *Options) bind(tokens []token, r *Result, report *Report) {
	var owner *option.Option
	endOfOptions := false

	it := sliceiterator.New(tokens)
	for it.Next() {
		t := it.Value()
		switch {
		case endOfOptions:
			r.remaining = append(r.remaining, t.value)
			continue

		case owner != nil && owner.RequiresArg:
			o.bindTo(r, owner, t.value)

		case t.bound:
			if owner != nil && owner.AcceptsArg {
				o.bindTo(r, owner, t.value)
			} else {
				r.remaining = append(r.remaining, t.value)
			}

		case t.unknown:
			o.unknown(r, report, t.value)

		case t.value == EndOfOptions:
			Logger.Debug("end of options")
			endOfOptions = true
			r.selectOption(o.lookup(EndOfOptions), EndOfOptions)

		default:
			if opt := o.lookup(t.value); opt != nil {
				Logger.WithFields(logrus.Fields{"option": opt.Name, "as": t.value}).Debug("selected")
				r.selectOption(opt, t.value)
				owner = opt
				continue
			}
			switch {
			case owner != nil && owner.AcceptsArg:
				o.bindTo(r, owner, t.value)
			case isOptionShaped(t.value):
				o.unknown(r, report, t.value)
			default:
				r.remaining = append(r.remaining, t.value)
			}
		}
		owner = nil
	}
}

func (o *Options) bindTo(r *Result, opt *option.Option, arg string) {
	Logger.WithFields(logrus.Fields{"option": opt.Name, "argument": arg}).Debug("bound")
	r.bind(opt, arg)
}

func (o *Options) unknown(r *Result, report *Report, tok string) {
	Logger.WithFields(logrus.Fields{"token": tok, "mode": o.unknownMode}).Debug("unknown option")
	switch o.unknownMode {
	case Pass:
		r.remaining = append(r.remaining, tok)
	case Warn:
		o.warnUnknown(tok)
		r.remaining = append(r.remaining, tok)
	default:
		e := &ParseError{Err: ErrorUnknownOption, Token: tok}
		if guess, ok := suggest.Suggest(tok, o.suggestions()); ok {
			e.Suggestion = guess
		}
		report.add(e)
	}
}

// suggestions - Names that can be offered for a mistyped option, `--` is never one of them.
func (o *Options) suggestions() []string {
	names := []string{}
	for _, name := range o.All(AllNames) {
		if name != EndOfOptions {
			names = append(names, name)
		}
	}
	return names
}
