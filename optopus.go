// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optopus - GNU style command line option parser.

Options are declared up front, with their names spelled as they are typed on
the command line, and a single call to Parse turns the raw arguments into a
Result.

	opt := optopus.New()
	opt.Title("copy files around")
	opt.Add("--verbose", "-v").Repeatable().Description("Increase verbosity.")
	opt.Add("--file", "-f").RequiresArgument().Required()
	opt.Add("--color").AcceptsArgument().ArgName("when")
	opt.Add("--quiet", "-q").IncompatibleWith("--verbose")

	result, err := opt.Parse(os.Args)
	if errors.Is(err, optopus.ErrorHelpCalled) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	file, _ := result.Argument("-f")
	level := result.Count("--verbose")
	files := result.Remaining()

# Features

  - Short options can be clustered: `-abc` is the same as `-a -b -c`.
    The first option in a cluster that takes an argument consumes the rest of the
    cluster: `-abfvalue` and `-abf=value`.

  - Long options accept an inline argument: `--file=value`.

  - Options with a mandatory argument always consume the next token, even when
    it is `--` or looks like another option.

  - Options with an optional argument take the next token unless it is a
    declared option.

  - `--` ends option parsing, everything after it is left in Remaining.

  - `--help` renders the help and makes Parse return ErrorHelpCalled.

  - Every parse problem is collected in a single *Report.

# Panic

Declaring a prohibited name (empty, `-` or containing `=`) or the same
name/alias twice panics when using Add and Alias, Declare returns the error
instead.
*/
package optopus

import (
	"fmt"
	"io"
	"os"

	"github.com/DavidGamba/go-optopus/internal/option"
	"github.com/DavidGamba/go-optopus/text"
	"github.com/sirupsen/logrus"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: &logrus.TextFormatter{DisableTimestamp: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.DebugLevel,
}

var Writer io.Writer = os.Stderr // io.Writer to write warnings and the default help to. Defaults to os.Stderr.

// Built-in option names.
const (
	EndOfOptions = "--"
	HelpOption   = "--help"
)

// UnknownMode - Unknown option mode
type UnknownMode int

// Unknown option modes - Action taken when an unknown option is encountered.
const (
	Fail UnknownMode = iota // Add an ErrorUnknownOption to the Report
	Warn                    // Print a warning to Writer and leave the token in Remaining
	Pass                    // Leave the token in Remaining
)

// Options - option registry.
//
// The registry is only read while parsing, every call to Parse returns its own Result.
type Options struct {
	options []*option.Option          // Canonical options in declaration order
	names   map[string]*option.Option // map[name/alias]option

	title       string
	helpText    string
	helpFn      HelpFn
	unknownMode UnknownMode
	useColor    bool
	width       int
}

// New returns a registry holding only the built-in `--` and `--help` options.
// This is the starting point when using go-optopus.
// For example:
//
//	opt := optopus.New()
func New() *Options {
	o := &Options{
		names:  map[string]*option.Option{},
		helpFn: DefaultHelpFn,
	}
	o.builtin(EndOfOptions, text.HelpEndOfOptionsDescription)
	o.builtin(HelpOption, text.HelpHelpDescription)
	return o
}

// Title - Set the one line description shown next to the program name in the
// automated help.
func (o *Options) Title(title string) *Options {
	o.title = title
	return o
}

// HelpText - Replace the body of the automated help with the given text.
func (o *Options) HelpText(s string) *Options {
	o.helpText = s
	return o
}

// SetHelpFn - Override what happens when help is requested.
//
// A nil fn disables the help request altogether, `--help` is then parsed as a
// plain option.
func (o *Options) SetHelpFn(fn HelpFn) *Options {
	o.helpFn = fn
	return o
}

// SetUnknownMode - Determines how to behave when encountering an unknown option.
//
//   - 'Fail' (default) will add the unknown option to the Report returned by Parse.
//     Parsing continues so all problems can be reported together.
//
//   - 'Warn' will print a user warning indicating there was an unknown option.
//     The unknown option will be left in the remaining array.
//
//   - 'Pass' will ignore any unknown options and they will be passed onto the remaining array.
func (o *Options) SetUnknownMode(mode UnknownMode) *Options {
	o.unknownMode = mode
	return o
}

// SetColor - Use color in the automated help.
func (o *Options) SetColor(b bool) *Options {
	o.useColor = b
	return o
}

// SetWidth - Wrap the automated help at the given width.
func (o *Options) SetWidth(width int) *Options {
	o.width = width
	return o
}

// Parse - Call the parse method when done describing.
//
// argv is the full invocation, for example os.Args. The first element is the
// program name, it is only used for the help.
//
// The returned Result is always usable. The error is either nil, ErrorHelpCalled
// (or the error returned by the HelpFn) or a *Report with every parse and
// validation problem found.
//
// Parse panics if the registry declares an option incompatible with an
// undeclared one.
func (o *Options) Parse(argv []string) (*Result, error) {
	if err := o.Validate(); err != nil {
		panic(err.Error())
	}
	r := newResult(o)
	if len(argv) > 0 {
		r.script = argv[0]
		argv = argv[1:]
	}
	Logger.WithFields(logrus.Fields{"args": argv}).Debug("parse")

	tokens, help := o.normalize(argv)
	r.normalized = tokenValues(tokens)
	if help != nil {
		help.Script = r.script
		r.help = help
		Logger.WithFields(logrus.Fields{"topic": help.Topic}).Debug("help requested")
		if err := o.helpFn(o, *help); err != nil {
			return r, err
		}
		return r, ErrorHelpCalled
	}

	report := &Report{}
	o.bind(tokens, r, report)
	o.validate(r, report)
	return r, report.orNil()
}

// Normalize - Returns the arguments with clusters expanded and inline
// arguments split, without the program name.
// It returns ErrorHelpCalled, without calling the HelpFn, if the arguments request the help.
func (o *Options) Normalize(args []string) ([]string, error) {
	tokens, help := o.normalize(args)
	if help != nil {
		return tokenValues(tokens), ErrorHelpCalled
	}
	return tokenValues(tokens), nil
}

func (o *Options) warnUnknown(token string) {
	fmt.Fprintf(Writer, text.MessageOnUnknown, token)
}
