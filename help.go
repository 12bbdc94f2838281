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
	"path/filepath"

	"github.com/DavidGamba/go-optopus/internal/help"
	"github.com/DavidGamba/go-optopus/internal/suggest"
)

// HelpRequest - Describes a triggered help.
type HelpRequest struct {
	Script   string // Program name as given in argv[0]
	Topic    string // Token that followed the help option
	HasTopic bool
}

// HelpFn - Called by Parse when the help option is found.
// Parse returns ErrorHelpCalled when it returns nil, its error otherwise.
type HelpFn func(opt *Options, req HelpRequest) error

// DefaultHelpFn - Writes the help page for the request to Writer.
func DefaultHelpFn(opt *Options, req HelpRequest) error {
	fmt.Fprint(Writer, opt.Help(req))
	return nil
}

// Help - Returns the help page for the request.
//
// An option shaped topic shows the help for that option only. If it isn't
// declared, a notice with the closest declared option is shown instead.
// Any other topic, or no topic, shows the full page.
func (o *Options) Help(req HelpRequest) string {
	page := o.page(req.Script)
	if req.HasTopic && isOptionShaped(req.Topic) {
		if opt := o.lookup(req.Topic); opt != nil {
			return page.Single(opt)
		}
		guess, _ := suggest.Closest(req.Topic, o.suggestions())
		return page.Unknown(req.Topic, o.lookup(guess))
	}
	return page.Render()
}

func (o *Options) page(script string) *help.Page {
	name := ""
	if script != "" {
		name = filepath.Base(script)
	}
	return &help.Page{
		Script:   name,
		Title:    o.title,
		Options:  o.list(),
		Text:     o.helpText,
		UseColor: o.useColor,
		Width:    o.width,
	}
}
