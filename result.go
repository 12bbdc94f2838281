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
)

// Result - Option state produced by a single call to Parse.
//
// Every query accepts the canonical name or any of its aliases.
type Result struct {
	opts       *Options
	script     string
	states     map[string]*option.State // map[canonical name]state
	order      []string                 // Canonical names in the order they were first selected
	remaining  []string
	normalized []string
	help       *HelpRequest
}

func newResult(o *Options) *Result {
	return &Result{
		opts:       o,
		states:     map[string]*option.State{},
		order:      []string{},
		remaining:  []string{},
		normalized: []string{},
	}
}

func (r *Result) state(name string) *option.State {
	canonical, ok := r.opts.Resolve(name)
	if !ok {
		return nil
	}
	return r.states[canonical]
}

func (r *Result) selectOption(opt *option.Option, usedAlias string) {
	s, ok := r.states[opt.Name]
	if !ok {
		s = &option.State{}
		r.states[opt.Name] = s
		r.order = append(r.order, opt.Name)
	}
	s.Select(usedAlias, opt.IsRepeatable)
}

func (r *Result) bind(opt *option.Option, arg string) {
	r.states[opt.Name].Bind(arg)
}

// Called - Indicates if the option was passed on the command line.
func (r *Result) Called(name string) bool {
	s := r.state(name)
	return s != nil && s.Selected
}

// CalledAs - Returns the name or alias used the last time the option was passed.
// Returns an empty string if the option wasn't called.
func (r *Result) CalledAs(name string) string {
	if s := r.state(name); s != nil {
		return s.UsedAlias
	}
	return ""
}

// Count - Number of times a repeatable option was passed.
// Options that are not repeatable are never counted.
func (r *Result) Count(name string) int {
	if s := r.state(name); s != nil {
		return s.Count
	}
	return 0
}

// Argument - Returns the argument bound to the option and whether there is one.
// When the option was passed more than once the last argument wins.
func (r *Result) Argument(name string) (string, bool) {
	if s := r.state(name); s != nil && s.HasArgument {
		return s.Argument, true
	}
	return "", false
}

// Selected - Canonical names of the options that were passed, in the order
// they were first seen.
func (r *Result) Selected() []string {
	list := make([]string, len(r.order))
	copy(list, r.order)
	return list
}

// Arguments - Map of canonical name to bound argument, for every option that has one.
func (r *Result) Arguments() map[string]string {
	m := map[string]string{}
	for name, s := range r.states {
		if s.HasArgument {
			m[name] = s.Argument
		}
	}
	return m
}

// Remaining - Script arguments: tokens that are neither options nor option
// arguments, including every token after the end of options marker.
func (r *Result) Remaining() []string {
	list := make([]string, len(r.remaining))
	copy(list, r.remaining)
	return list
}

// Script - Program name, the first element of the argv given to Parse.
func (r *Result) Script() string {
	return r.script
}

// Normalized - Arguments after expanding clusters and splitting inline arguments.
func (r *Result) Normalized() []string {
	list := make([]string, len(r.normalized))
	copy(list, r.normalized)
	return list
}

// HelpRequested - Indicates if the help was triggered.
func (r *Result) HelpRequested() bool {
	return r.help != nil
}

// HelpTopic - Returns the token that followed the help option, if any.
func (r *Result) HelpTopic() (string, bool) {
	if r.help == nil {
		return "", false
	}
	return r.help.Topic, r.help.HasTopic
}
