// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// optopus - Parses command line arguments for shell scripts.
//
// The options are described in a YAML or TOML table, the arguments after `--`
// are parsed against it and printed back normalized so a script can `eval` or
// `set --` them, or as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/DavidGamba/go-optopus"
	"github.com/DavidGamba/go-optopus/internal/help"
	"github.com/DavidGamba/go-optopus/table"
	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes
const (
	exitOK    = 0
	exitParse = 1
	exitUsage = 2
)

var isTerminalFn = term.IsTerminal

var usage = heredoc.Doc(`
	Parses the arguments after '--' against an option table and prints them
	back normalized.

	    optopus [--table <file>] [--format getopt|json] [--name <name>]
	            [--color] [--debug] -- <args>...

	    eval set -- "$(optopus -t opts.yaml -- "$@")"

	OPTIONS:
	    --table|-t <file>    YAML (.yaml, .yml) or TOML (.toml) option table.

	    --format|-f <fmt>    Output format: getopt (default) or json.

	    --name|-n <name>     Program name used in the help and errors.

	    --color              Use color even when stderr isn't a terminal.

	    --debug              Log parser decisions to stderr.
`)

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	optopus.Writer = stderr

	opt := optopus.New().Title("parse command line arguments for shell scripts").HelpText(usage)
	opt.Add("--table", "-t").RequiresArgument().ArgName("file")
	opt.Add("--format", "-f").RequiresArgument().ArgName("fmt")
	opt.Add("--name", "-n").RequiresArgument()
	opt.Add("--color")
	opt.Add("--debug")
	own, err := opt.Parse(args)
	if errors.Is(err, optopus.ErrorHelpCalled) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return exitUsage
	}
	if own.Called("--debug") {
		optopus.Logger.SetOutput(stderr)
	}
	useColor := own.Called("--color") || isTerminalWriter(stderr)

	format, _ := own.Argument("--format")
	switch format {
	case "", "getopt", "json":
	default:
		fmt.Fprintf(stderr, "ERROR: unknown format '%s'\n", format)
		return exitUsage
	}

	user := optopus.New()
	if path, ok := own.Argument("--table"); ok {
		t, err := table.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return exitUsage
		}
		user, err = t.Registry()
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return exitUsage
		}
	}
	user.SetColor(useColor).SetWidth(terminalWidth(stderr))

	name, ok := own.Argument("--name")
	if !ok {
		name = "optopus"
	}
	r, err := user.Parse(append([]string{name}, own.Remaining()...))
	if errors.Is(err, optopus.ErrorHelpCalled) {
		return exitOK
	}
	if err != nil {
		red := color.New(color.FgRed)
		if useColor {
			red.EnableColor()
		} else {
			red.DisableColor()
		}
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintln(stderr, red.Sprintf("%s: %s", name, line))
		}
		return exitParse
	}

	if format == "json" {
		if err := writeJSON(stdout, user, r); err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return exitUsage
		}
		return exitOK
	}
	fmt.Fprintln(stdout, getoptLine(user, r))
	return exitOK
}

// getoptLine - Selected options in order followed by `--` and the remaining
// arguments. Repeatable options are printed once per occurrence, except when
// they got an argument: only the last argument is kept, so they are printed
// once with it. Use the json format for the counts.
func getoptLine(o *optopus.Options, r *optopus.Result) string {
	words := []string{}
	for _, name := range r.Selected() {
		if name == optopus.EndOfOptions {
			continue
		}
		if arg, ok := r.Argument(name); ok {
			words = append(words, quote(name), quote(arg))
			continue
		}
		n := 1
		if o.IsRepeatable(name) {
			n = r.Count(name)
		}
		for i := 0; i < n; i++ {
			words = append(words, quote(name))
		}
	}
	words = append(words, optopus.EndOfOptions)
	for _, arg := range r.Remaining() {
		words = append(words, quote(arg))
	}
	return strings.Join(words, " ")
}

type jsonResult struct {
	Selected  []string          `json:"selected"`
	Counts    map[string]int    `json:"counts"`
	Arguments map[string]string `json:"arguments"`
	Remaining []string          `json:"remaining"`
}

func writeJSON(w io.Writer, o *optopus.Options, r *optopus.Result) error {
	out := jsonResult{
		Selected:  r.Selected(),
		Counts:    map[string]int{},
		Arguments: r.Arguments(),
		Remaining: r.Remaining(),
	}
	for _, name := range out.Selected {
		if o.IsRepeatable(name) {
			out.Counts[name] = r.Count(name)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

var safeWord = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// quote - Quotes s for a POSIX shell.
func quote(s string) string {
	if safeWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isTerminalFn(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return help.DefaultWidth
	}
	return help.TerminalWidth(int(f.Fd()))
}
