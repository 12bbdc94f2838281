// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// The variables are exported so programs can replace them, for example to
// provide a translation.
package text

// ErrorProhibitedName holds the text for a declaration that uses a reserved name.
// It has a string placeholder '%s' for the name.
var ErrorProhibitedName = "prohibited option name '%s'"

// ErrorDuplicateName holds the text for a name already in use.
// It has string placeholders '%s' for the name and for the option that owns it.
var ErrorDuplicateName = "option/alias '%s' is already defined in option '%s'"

// ErrorUnknownOption holds the text for an unknown option.
// It has a string placeholder '%s' for the token that was passed.
var ErrorUnknownOption = "Unknown option '%s'"

// ErrorUnknownOptionSuggestion is appended to ErrorUnknownOption when there is a close match.
// It has a string placeholder '%s' for the suggested option.
var ErrorUnknownOptionSuggestion = ", did you mean '%s'?"

// ErrorMissingRequiredOption holds the text for a missing required option.
// It has a string placeholder '%s' for the name of the option.
var ErrorMissingRequiredOption = "Missing required option '%s'!"

// ErrorIncompatibleOptions holds the text for two options selected together.
// It has string placeholders '%s' for the name of each option.
var ErrorIncompatibleOptions = "Option '%s' can't be used together with option '%s'!"

// ErrorMissingRequiredArgument holds the text for an option called without its argument.
// It has a string placeholder '%s' for the name of the option.
var ErrorMissingRequiredArgument = "Missing argument for option '%s'!"

// MessageOnUnknown holds the warning printed in Warn mode.
// It has a string placeholder '%s' for the token that was passed.
var MessageOnUnknown = "WARNING: " + ErrorUnknownOption + "\n"

// HelpNameHeader - name header
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - synopsis header
var HelpSynopsisHeader = "SYNOPSIS"

// HelpRequiredOptionsHeader - required options header
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpOptionsHeader - options header
var HelpOptionsHeader = "OPTIONS"

// HelpNoDescription is shown for options declared without a description.
var HelpNoDescription = "No description available."

// HelpEndOfOptionsDescription is the description of the built-in '--' option.
var HelpEndOfOptionsDescription = "End of Options. If this is used, no options after it will be parsed unless the preceding option requires an argument."

// HelpHelpDescription is the description of the built-in '--help' option.
var HelpHelpDescription = "This help page."

// HelpUnknownTopic holds the text shown when help is requested for an unknown option.
// It has string placeholders '%s' for the topic and for the closest option.
var HelpUnknownTopic = "Unknown option %s. Did you mean %s? Try --help by itself to see a full help page."

// HelpArgName is the default argument name used in the help.
var HelpArgName = "arg"

// ErrorIncompatibleUndeclared holds the text for an incompatible option reference that doesn't resolve.
// It has string placeholders '%s' for the declaring option and for the reference.
var ErrorIncompatibleUndeclared = "option '%s' is declared incompatible with undeclared option '%s'"
