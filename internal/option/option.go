// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option struct and methods.
package option

import (
	"sort"
	"strings"

	"github.com/DavidGamba/go-optopus/text"
)

// Option - declared option.
//
// Names are stored verbatim, including their leading dashes, for example
// "--verbose" or "-v".
type Option struct {
	Name    string
	Aliases []string // Alternate spellings, Name not included

	IsRequired   bool // Indicates if the option must be selected
	AcceptsArg   bool // Indicates if the option may take an argument
	RequiresArg  bool // Indicates if the option must take an argument, implies AcceptsArg
	IsRepeatable bool // Indicates if occurrences are counted

	// Canonical names or aliases of the options that can't be selected together with this one.
	IncompatibleWith []string

	// Help
	Description string // Optional description used for help
	HelpArgName string // Optional arg name used for help

	IsBuiltin bool // '--' and '--help'
	Index     int  // Declaration order
}

// New - Returns a new option object.
func New(name string) *Option {
	return &Option{Name: name}
}

// Prohibited - Indicates whether the name can't be used as an option name or alias.
// An empty name, a name containing '=' and the lonesome dash '-' are reserved.
func Prohibited(name string) bool {
	return name == "" || name == "-" || strings.Contains(name, "=")
}

// SetAlias - Adds aliases to an option.
func (opt *Option) SetAlias(alias ...string) *Option {
	opt.Aliases = append(opt.Aliases, alias...)
	return opt
}

// SetRequired - Marks an option as required.
func (opt *Option) SetRequired() *Option {
	opt.IsRequired = true
	return opt
}

// SetAcceptsArg - Marks an option as taking an optional argument.
func (opt *Option) SetAcceptsArg() *Option {
	opt.AcceptsArg = true
	return opt
}

// SetRequiresArg - Marks an option as taking a mandatory argument.
func (opt *Option) SetRequiresArg() *Option {
	opt.AcceptsArg = true
	opt.RequiresArg = true
	return opt
}

// SetRepeatable - Marks an option as counting its occurrences.
func (opt *Option) SetRepeatable() *Option {
	opt.IsRepeatable = true
	return opt
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.Description = s
	return opt
}

// SetHelpArgName - Updates the HelpArgName.
func (opt *Option) SetHelpArgName(s string) *Option {
	opt.HelpArgName = s
	return opt
}

// SetIncompatibleWith - Adds names of options that can't be selected together with this one.
func (opt *Option) SetIncompatibleWith(names ...string) *Option {
	opt.IncompatibleWith = append(opt.IncompatibleWith, names...)
	return opt
}

// Names - Returns the canonical name followed by the aliases.
func (opt *Option) Names() []string {
	return append([]string{opt.Name}, opt.Aliases...)
}

// Usage - Returns the names joined by '|' followed by the argument description.
//
//	--file|-f <file>
//	--color [<when>]
func (opt *Option) Usage() string {
	out := strings.Join(opt.Names(), "|")
	argName := opt.HelpArgName
	if argName == "" {
		argName = text.HelpArgName
	}
	switch {
	case opt.RequiresArg:
		out += " <" + argName + ">"
	case opt.AcceptsArg:
		out += " [<" + argName + ">]"
	}
	return out
}

// Synopsis - Usage followed by '...' for repeatable options.
//
//	--verbose|-v...
func (opt *Option) Synopsis() string {
	if opt.IsRepeatable {
		return opt.Usage() + "..."
	}
	return opt.Usage()
}

// Sort - Sorts options by declaration order.
func Sort(list []*Option) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Index < list[j].Index
	})
}

// State - Runtime state of an option during and after a parse.
type State struct {
	Selected    bool   // Indicates if the option was passed on the command line
	Count       int    // Number of occurrences, only tracked for repeatable options
	Argument    string // Last bound argument
	HasArgument bool   // Indicates if Argument was bound, it can be bound to an empty string
	UsedAlias   string // Name or alias used the last time the option was passed
}

// Select - Marks the option as selected and records the alias used to select it.
func (s *State) Select(usedAlias string, repeatable bool) {
	s.Selected = true
	s.UsedAlias = usedAlias
	if repeatable {
		s.Count++
	}
}

// Bind - Binds an argument, replacing any previously bound one.
func (s *State) Bind(arg string) {
	s.Argument = arg
	s.HasArgument = true
}
