// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help handling code.
package help

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-optopus/internal/option"
	"github.com/DavidGamba/go-optopus/text"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Padding - Indentation of every entry.
var Padding = 4

// DefaultWidth - Width used when the terminal size is unknown.
var DefaultWidth = 80

// minDescriptionWidth - Descriptions are not wrapped in columns narrower than this.
const minDescriptionWidth = 20

// Page - Help page for a registry.
type Page struct {
	Script   string           // Program name
	Title    string           // Optional one line description shown next to the program name
	Options  []*option.Option // Sorted in declaration order
	Text     string           // Replaces the generated synopsis and option list
	UseColor bool
	Width    int // Wrap width, DefaultWidth when 0
}

func (p *Page) width() int {
	if p.Width <= 0 {
		return DefaultWidth
	}
	return p.Width
}

func (p *Page) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if p.UseColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (p *Page) header(s string) string {
	return p.paint(color.Bold, s) + ":\n"
}

// Render - Full help page: name, synopsis and option list.
func (p *Page) Render() string {
	if p.Text != "" {
		return p.Name() + "\n" + p.Text
	}
	return p.Name() + "\n" + p.Synopsis() + "\n" + p.OptionList(p.Options)
}

// Single - Help page for a single option.
func (p *Page) Single(opt *option.Option) string {
	if p.Text != "" {
		return p.Name() + "\n" + p.Text
	}
	return p.Name() + "\n" + p.OptionList([]*option.Option{opt})
}

// Name - NAME section.
func (p *Page) Name() string {
	out := strings.Repeat(" ", Padding) + p.Script
	if p.Title != "" {
		title := strings.ReplaceAll(p.Title, "\n", "\n"+strings.Repeat(" ", Padding*2))
		out += " - " + title
	}
	return p.header(text.HelpNameHeader) + out + "\n"
}

// Synopsis - SYNOPSIS section.
// Required options go first, each group in declaration order. Built-in options
// are not listed.
func (p *Page) Synopsis() string {
	prefix := strings.Repeat(" ", Padding) + p.Script
	required := []*option.Option{}
	normal := []*option.Option{}
	for _, opt := range p.Options {
		if opt.IsBuiltin {
			continue
		}
		if opt.IsRequired {
			required = append(required, opt)
		} else {
			normal = append(normal, opt)
		}
	}
	option.Sort(required)
	option.Sort(normal)

	entries := []string{}
	for _, opt := range required {
		entries = append(entries, synopsisEntry(opt))
	}
	for _, opt := range normal {
		entries = append(entries, synopsisEntry(opt))
	}
	entries = append(entries, "[<args>]")

	out := ""
	line := prefix
	for _, syn := range entries {
		if len(line)+len(syn) > p.width() && line != prefix {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(prefix)), syn)
			continue
		}
		line += " " + syn
	}
	out += line
	return p.header(text.HelpSynopsisHeader) + out + "\n"
}

func synopsisEntry(opt *option.Option) string {
	txt := opt.Usage()
	if !opt.IsRequired {
		txt = "[" + txt + "]"
	}
	if opt.IsRepeatable {
		txt += "..."
	}
	return txt
}

// OptionList - REQUIRED PARAMETERS and OPTIONS sections for the given options.
func (p *Page) OptionList(options []*option.Option) string {
	if len(options) == 0 {
		return ""
	}
	factor := 0
	required := []*option.Option{}
	normal := []*option.Option{}
	for _, opt := range options {
		if l := len(opt.Synopsis()); l > factor {
			factor = l
		}
		if opt.IsRequired {
			required = append(required, opt)
		} else {
			normal = append(normal, opt)
		}
	}
	factor += Padding
	option.Sort(required)
	option.Sort(normal)

	out := ""
	if len(required) > 0 {
		out += p.header(text.HelpRequiredOptionsHeader)
		for _, opt := range required {
			out += p.entry(opt, factor)
		}
	}
	if len(normal) > 0 {
		out += p.header(text.HelpOptionsHeader)
		for _, opt := range normal {
			out += p.entry(opt, factor)
		}
	}
	return out
}

func (p *Page) entry(opt *option.Option, factor int) string {
	syn := opt.Synopsis()
	description := opt.Description
	if description == "" {
		description = text.HelpNoDescription
	}
	indent := strings.Repeat(" ", Padding+factor)
	lines := wrap(description, p.width()-Padding-factor)
	return strings.Repeat(" ", Padding) +
		p.paint(color.FgCyan, syn) + strings.Repeat(" ", factor-len(syn)) +
		strings.Join(lines, "\n"+indent) + "\n\n"
}

// Unknown - Notice shown when the help is requested for an option that isn't
// declared, followed by the help of the closest option.
func (p *Page) Unknown(topic string, guess *option.Option) string {
	out := p.Name() + "\n" + strings.Repeat(" ", Padding) + fmt.Sprintf(text.HelpUnknownTopic, topic, guess.Name) + "\n\n"
	if p.Text != "" {
		return out + p.Text
	}
	return out + p.OptionList([]*option.Option{guess})
}

// wrap - Splits s into lines of at most width characters, breaking at spaces.
// Existing new lines are kept. Words longer than width get a line of their own.
func wrap(s string, width int) []string {
	if width < minDescriptionWidth {
		return strings.Split(s, "\n")
	}
	lines := []string{}
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// TerminalWidth - Width of the terminal behind fd, DefaultWidth when fd isn't a
// terminal or its size can't be read.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
