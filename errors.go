// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-optopus/text"
)

// ErrorHelpCalled - Indicates the help has been handled.
var ErrorHelpCalled = fmt.Errorf("help called")

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every *Report matches it with errors.Is.
var ErrorParsing = errors.New("")

// Declaration errors. The message comes from the text package templates.
var (
	ErrorProhibitedName = errors.New("")
	ErrorDuplicateName  = errors.New("")
)

// Parse and validation errors.
var (
	ErrorUnknownOption           = errors.New("unknown option")
	ErrorMissingRequiredOption   = errors.New("missing required option")
	ErrorIncompatibleOptions     = errors.New("incompatible options selected")
	ErrorMissingRequiredArgument = errors.New("missing required argument")
)

// ParseError - A single problem found while parsing or validating.
// Use errors.Is against the Error* sentinels to tell them apart.
type ParseError struct {
	Err        error  // One of the parse or validation sentinels
	Option     string // Canonical name of the offending option
	Other      string // Canonical name of the other option of an incompatible pair
	Token      string // Token as given on the command line, for unknown options
	Suggestion string // Closest declared name, for unknown options
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrorUnknownOption):
		msg := fmt.Sprintf(text.ErrorUnknownOption, e.Token)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(text.ErrorUnknownOptionSuggestion, e.Suggestion)
		}
		return msg
	case errors.Is(e.Err, ErrorMissingRequiredOption):
		return fmt.Sprintf(text.ErrorMissingRequiredOption, e.Option)
	case errors.Is(e.Err, ErrorIncompatibleOptions):
		return fmt.Sprintf(text.ErrorIncompatibleOptions, e.Option, e.Other)
	case errors.Is(e.Err, ErrorMissingRequiredArgument):
		return fmt.Sprintf(text.ErrorMissingRequiredArgument, e.Option)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Report - Aggregate of every problem found in a single parse, in the order they were found.
type Report struct {
	Errors []*ParseError
}

func (r *Report) add(e *ParseError) {
	r.Errors = append(r.Errors, e)
}

func (r *Report) Error() string {
	lines := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap - Exposes the individual errors to errors.Is and errors.As.
func (r *Report) Unwrap() []error {
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errs
}

// Is - A Report is always an ErrorParsing.
func (r *Report) Is(target error) bool {
	return target == ErrorParsing
}

// orNil - Returns nil for an empty report so callers can use err != nil.
func (r *Report) orNil() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	return r
}
