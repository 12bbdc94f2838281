// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

// validate - Adds the constraint violations of the bound state to the report.
// Missing required options are reported first, then incompatible pairs and
// then missing mandatory arguments, each in declaration order.
func (o *Options) validate(r *Result, report *Report) {
	list := o.list()

	for _, opt := range list {
		if opt.IsRequired && !r.Called(opt.Name) {
			report.add(&ParseError{Err: ErrorMissingRequiredOption, Option: opt.Name})
		}
	}

	type pair struct{ a, b string }
	seen := map[pair]bool{}
	for _, opt := range list {
		if !r.Called(opt.Name) {
			continue
		}
		for _, ref := range opt.IncompatibleWith {
			other, ok := o.Resolve(ref)
			if !ok || other == opt.Name || !r.Called(other) {
				continue
			}
			if seen[pair{opt.Name, other}] || seen[pair{other, opt.Name}] {
				continue
			}
			seen[pair{opt.Name, other}] = true
			report.add(&ParseError{Err: ErrorIncompatibleOptions, Option: opt.Name, Other: other})
		}
	}

	for _, opt := range list {
		if !opt.RequiresArg || !r.Called(opt.Name) {
			continue
		}
		if _, ok := r.Argument(opt.Name); !ok {
			report.add(&ParseError{Err: ErrorMissingRequiredArgument, Option: opt.Name})
		}
	}
}
