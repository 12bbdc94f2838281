// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DavidGamba/go-optopus/internal/option"
	"github.com/DavidGamba/go-optopus/text"
	"github.com/sirupsen/logrus"
)

// Declaration - Handle to a declared option.
// Every builder method applies to the option the handle was returned for.
type Declaration struct {
	parent *Options
	opt    *option.Option
}

// Declare - Declares an option and its aliases.
//
// Names are used verbatim, include the dashes: "--verbose", "-v".
// It returns an error wrapping ErrorProhibitedName if a name is empty, is the
// lonesome dash '-' or contains '=', or wrapping ErrorDuplicateName if a name
// is already in use. On error nothing is declared.
func (o *Options) Declare(name string, aliases ...string) (*Declaration, error) {
	if err := o.checkNames(append([]string{name}, aliases...)...); err != nil {
		return nil, err
	}
	opt := option.New(name)
	opt.Index = len(o.options)
	o.options = append(o.options, opt)
	o.names[name] = opt
	for _, a := range aliases {
		opt.SetAlias(a)
		o.names[a] = opt
	}
	Logger.WithFields(logrus.Fields{"option": name, "aliases": aliases}).Debug("declared")
	return &Declaration{parent: o, opt: opt}, nil
}

// Add - Declares an option and its aliases.
// Same as Declare but it panics on error. The program has to fix its option table.
func (o *Options) Add(name string, aliases ...string) *Declaration {
	d, err := o.Declare(name, aliases...)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Lookup - Returns the handle of an already declared option, by name or alias.
// It can be used to add aliases or a description to `--help`.
// The end of options marker `--` can't be modified.
func (o *Options) Lookup(name string) (*Declaration, bool) {
	opt, ok := o.names[name]
	if !ok || opt.Name == EndOfOptions {
		return nil, false
	}
	return &Declaration{parent: o, opt: opt}, true
}

func (o *Options) builtin(name, description string) {
	opt := option.New(name).SetDescription(description)
	opt.IsBuiltin = true
	opt.Index = len(o.options)
	o.options = append(o.options, opt)
	o.names[name] = opt
}

func (o *Options) checkNames(names ...string) error {
	seen := map[string]bool{}
	for _, name := range names {
		if option.Prohibited(name) {
			return fmt.Errorf("%w"+text.ErrorProhibitedName, ErrorProhibitedName, name)
		}
		if v, ok := o.names[name]; ok {
			return fmt.Errorf("%w"+text.ErrorDuplicateName, ErrorDuplicateName, name, v.Name)
		}
		if seen[name] {
			return fmt.Errorf("%w"+text.ErrorDuplicateName, ErrorDuplicateName, name, names[0])
		}
		seen[name] = true
	}
	return nil
}

// Name - Canonical name of the option.
func (d *Declaration) Name() string {
	return d.opt.Name
}

// Alias - Adds aliases to the option.
// It panics if an alias is prohibited or already in use.
func (d *Declaration) Alias(alias ...string) *Declaration {
	if err := d.parent.checkNames(alias...); err != nil {
		panic(err.Error())
	}
	for _, a := range alias {
		d.opt.SetAlias(a)
		d.parent.names[a] = d.opt
	}
	return d
}

// Required - Report ErrorMissingRequiredOption if the option is not selected.
func (d *Declaration) Required() *Declaration {
	d.opt.SetRequired()
	return d
}

// AcceptsArgument - The option takes the next token as its argument unless it is a declared option.
func (d *Declaration) AcceptsArgument() *Declaration {
	d.opt.SetAcceptsArg()
	return d
}

// RequiresArgument - The option always takes the next token as its argument.
// Report ErrorMissingRequiredArgument if there is none.
func (d *Declaration) RequiresArgument() *Declaration {
	d.opt.SetRequiresArg()
	return d
}

// Repeatable - Count the occurrences of the option.
func (d *Declaration) Repeatable() *Declaration {
	d.opt.SetRepeatable()
	return d
}

// Description - Add a description to the option for use in automated help.
func (d *Declaration) Description(msg string) *Declaration {
	d.opt.SetDescription(msg)
	return d
}

// ArgName - Name of the argument used in the automated help.
func (d *Declaration) ArgName(name string) *Declaration {
	d.opt.SetHelpArgName(name)
	return d
}

// IncompatibleWith - Report ErrorIncompatibleOptions if the option is selected
// together with any of the given options.
// Names can be canonical names or aliases, and can be declared later.
func (d *Declaration) IncompatibleWith(names ...string) *Declaration {
	d.opt.SetIncompatibleWith(names...)
	return d
}

// Validate - Checks that every option declared incompatible with another one
// refers to a declared option.
func (o *Options) Validate() error {
	for _, opt := range o.options {
		for _, name := range opt.IncompatibleWith {
			if _, ok := o.names[name]; !ok {
				return fmt.Errorf(text.ErrorIncompatibleUndeclared, opt.Name, name)
			}
		}
	}
	return nil
}

// Resolve - Returns the canonical name for the given canonical name or alias.
func (o *Options) Resolve(name string) (string, bool) {
	if opt, ok := o.names[name]; ok {
		return opt.Name, true
	}
	return "", false
}

func (o *Options) lookup(name string) *option.Option {
	return o.names[name]
}

// IsOption - Indicates whether the name or alias is declared.
func (o *Options) IsOption(name string) bool {
	_, ok := o.names[name]
	return ok
}

// AcceptsArgument - Indicates whether the option can take an argument, mandatory or optional.
func (o *Options) AcceptsArgument(name string) bool {
	opt, ok := o.names[name]
	return ok && opt.AcceptsArg
}

// RequiresArgument - Indicates whether the option must take an argument.
func (o *Options) RequiresArgument(name string) bool {
	opt, ok := o.names[name]
	return ok && opt.RequiresArg
}

// IsRepeatable - Indicates whether the option occurrences are counted.
func (o *Options) IsRepeatable(name string) bool {
	opt, ok := o.names[name]
	return ok && opt.IsRepeatable
}

// NameKind - Selects which names All returns.
type NameKind int

// Name kinds
const (
	AllNames       NameKind = iota // Canonical names and aliases
	CanonicalNames                 // Canonical names only
	AliasNames                     // Aliases only
)

// All - Returns the declared names in declaration order, each canonical name
// followed by its aliases.
func (o *Options) All(kind NameKind) []string {
	names := []string{}
	for _, opt := range o.options {
		if kind != AliasNames {
			names = append(names, opt.Name)
		}
		if kind != CanonicalNames {
			names = append(names, opt.Aliases...)
		}
	}
	return names
}

// Complete - Returns the sorted names and aliases that start with prefix.
func (o *Options) Complete(prefix string) []string {
	completions := []string{}
	for name := range o.names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)
	return completions
}

// list - Returns a copy of the canonical options in declaration order.
func (o *Options) list() []*option.Option {
	list := make([]*option.Option, len(o.options))
	copy(list, o.options)
	option.Sort(list)
	return list
}
