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
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sorted(s []string) []string {
	sort.Strings(s)
	return s
}

func TestClusterEquivalence(t *testing.T) {
	logTestOutput := setupTestLogging(t)
	defer logTestOutput()

	for _, order := range [][]string{{"-a", "-b", "-c"}, {"-c", "-a", "-b"}} {
		build := func() *Options {
			opt := New()
			for _, name := range order {
				opt.Add(name)
			}
			return opt
		}
		for _, args := range [][]string{{"-abc"}, {"-cab"}, {"-ab", "-c"}} {
			clustered, err := build().Parse(append([]string{"prog"}, args...))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			separate, err := build().Parse([]string{"prog", "-a", "-b", "-c"})
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(sorted(separate.Selected()), sorted(clustered.Selected())); diff != "" {
				t.Errorf("%v: selection mismatch (-want +got):\n%s", args, diff)
			}
		}
	}
}

func TestMandatoryArgument(t *testing.T) {
	for _, next := range []string{"value", "--", "-y", "--y", "-x", "--help", "-abc", "--y=3", "-", "", "--unknown"} {
		t.Run(next, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("-x").RequiresArgument()
			opt.Add("-y", "--y")
			opt.Add("-a")
			r, err := opt.Parse([]string{"prog", "-x", next, "rest"})
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if arg, ok := r.Argument("-x"); !ok || arg != next {
				t.Errorf("got argument %q, %v, want %q", arg, ok, next)
			}
			if diff := cmp.Diff([]string{"-x"}, r.Selected()); diff != "" {
				t.Errorf("Selected mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"rest"}, r.Remaining()); diff != "" {
				t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMandatoryArgumentInCluster(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		argument  string
		remaining []string
	}{
		{"end of cluster takes next", []string{"-ax", "--", "rest"}, "--", []string{"rest"}},
		{"rest of cluster", []string{"-axvalue", "rest"}, "value", []string{"rest"}},
		{"rest of cluster with equals", []string{"-ax=value"}, "value", []string{}},
		{"wins over declared options", []string{"-xab"}, "ab", []string{}},
		{"inline long", []string{"--ex=value"}, "value", []string{}},
		{"inline long empty", []string{"--ex="}, "", []string{}},
		{"inline short", []string{"-x=value"}, "value", []string{}},
		{"repeated", []string{"-x", "-x", "foo"}, "-x", []string{"foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("-a")
			opt.Add("-b")
			opt.Add("-x", "--ex").RequiresArgument()
			r, err := opt.Parse(append([]string{"prog"}, tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if arg, ok := r.Argument("-x"); !ok || arg != tt.argument {
				t.Errorf("got argument %q, %v, want %q", arg, ok, tt.argument)
			}
			if diff := cmp.Diff(tt.remaining, r.Remaining()); diff != "" {
				t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionalArgument(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		argument  string
		bound     bool
		selected  []string
		remaining []string
	}{
		{"no argument", []string{"-o"}, "", false, []string{"-o"}, []string{}},
		{"plain argument", []string{"-o", "value"}, "value", true, []string{"-o"}, []string{}},
		{"declared option", []string{"-o", "-y"}, "", false, []string{"-o", "-y"}, []string{}},
		{"declared alias", []string{"-o", "--yes", "value"}, "", false, []string{"-o", "-y"}, []string{"value"}},
		{"undeclared option", []string{"-o", "--unknown"}, "--unknown", true, []string{"-o"}, []string{}},
		{"lonesome dash", []string{"-o", "-"}, "-", true, []string{"-o"}, []string{}},
		{"end of options", []string{"-o", "--", "value"}, "", false, []string{"-o", "--"}, []string{"value"}},
		{"only one", []string{"-o", "a", "b"}, "a", true, []string{"-o"}, []string{"b"}},
		{"cluster declared next", []string{"-oy"}, "", false, []string{"-o", "-y"}, []string{}},
		{"cluster undeclared next", []string{"-ovalue"}, "value", true, []string{"-o"}, []string{}},
		{"cluster dash next", []string{"-o-y"}, "-y", true, []string{"-o"}, []string{}},
		{"inline", []string{"--opt=-y"}, "-y", true, []string{"-o"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("-o", "--opt").AcceptsArgument()
			opt.Add("-y", "--yes")
			r, err := opt.Parse(append([]string{"prog"}, tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			arg, ok := r.Argument("-o")
			if ok != tt.bound || arg != tt.argument {
				t.Errorf("got argument %q, %v, want %q, %v", arg, ok, tt.argument, tt.bound)
			}
			if diff := cmp.Diff(tt.selected, r.Selected()); diff != "" {
				t.Errorf("Selected mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.remaining, r.Remaining()); diff != "" {
				t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCluster(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		accepts  string
		selected []string
		argName  string
		argument string
	}{
		{"simple", "-asdf", "", []string{"-a", "-s", "-d", "-f"}, "", ""},
		{"equals", "-asdf=bar", "-f", []string{"-a", "-s", "-d", "-f"}, "-f", "bar"},
		{"attached", "-asdfFoo", "-f", []string{"-a", "-s", "-d", "-f"}, "-f", "Foo"},
		{"takes the rest", "-asSoodf", "-s", []string{"-a", "-s"}, "-s", "Soodf"},
		{"takes the rest after equals", "-as=Soodf", "-s", []string{"-a", "-s"}, "-s", "Soodf"},
		{"last without argument", "-asdf", "-f", []string{"-a", "-s", "-d", "-f"}, "", ""},
		{"declared next", "-fas", "-f", []string{"-f", "-a", "-s"}, "", ""},
		{"only first equals stripped", "-f==x", "-f", []string{"-f"}, "-f", "=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			for _, name := range []string{"-a", "-s", "-f", "-d"} {
				d := opt.Add(name)
				if name == tt.accepts {
					d.AcceptsArgument()
				}
			}
			r, err := opt.Parse([]string{"prog", tt.arg})
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(tt.selected, r.Selected()); diff != "" {
				t.Errorf("Selected mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{}, r.Remaining()); diff != "" {
				t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
			}
			if tt.argName != "" {
				if arg, ok := r.Argument(tt.argName); !ok || arg != tt.argument {
					t.Errorf("got argument %q, %v, want %q", arg, ok, tt.argument)
				}
			} else if args := r.Arguments(); len(args) != 0 {
				t.Errorf("unexpected arguments: %v", args)
			}
		})
	}
}

func TestDeclaredClusterShapedOption(t *testing.T) {
	opt := New()
	opt.Add("-l")
	opt.Add("-long")
	r, err := opt.Parse([]string{"prog", "-long"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"-long"}, r.Selected()); diff != "" {
		t.Errorf("Selected mismatch (-want +got):\n%s", diff)
	}
}

func TestUnicodeCluster(t *testing.T) {
	opt := New()
	opt.Add("-ñ")
	opt.Add("-v")
	r, err := opt.Parse([]string{"prog", "-ñv"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"-ñ", "-v"}, r.Selected()); diff != "" {
		t.Errorf("Selected mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatCount(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{"once", []string{"-v"}, 1},
		{"cluster", []string{"-vv"}, 2},
		{"separate", []string{"-v", "-v"}, 2},
		{"alias and canonical", []string{"-v", "--verbose"}, 2},
		{"mixed with other tokens", []string{"-a", "ARG0", "-v", "-s", "--verbose", "ARG1", "-d", "ARG2"}, 2},
		{"none", []string{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("--verbose").Alias("-v").Repeatable()
			opt.SetUnknownMode(Pass)
			r, err := opt.Parse(append([]string{"prog"}, tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got := r.Count("--verbose"); got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
			if got := r.Count("-v"); got != tt.expected {
				t.Errorf("alias: got %d, want %d", got, tt.expected)
			}
		})
	}

	t.Run("not repeatable", func(t *testing.T) {
		opt := New()
		opt.Add("-q")
		r, _ := opt.Parse([]string{"prog", "-q", "-q"})
		if !r.Called("-q") || r.Count("-q") != 0 {
			t.Errorf("unexpected state: called %v, count %d", r.Called("-q"), r.Count("-q"))
		}
	})
}

func TestEndOfOptions(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		remaining []string
	}{
		{"marker twice", []string{"--", "--foo", "--"}, []string{"--foo", "--"}},
		{"help after marker", []string{"--", "--help"}, []string{"--help"}},
		{"options after marker", []string{"-a", "--", "-a", "-ab", "--a=b"}, []string{"-a", "-ab", "--a=b"}},
		{"marker as argument", []string{"-x", "--", "--", "--foo"}, []string{"--foo"}},
		{"marker as argument only", []string{"-x", "--", "plain"}, []string{"plain"}},
		{"empty", []string{"--"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("-a")
			opt.Add("-x").RequiresArgument()
			opt.SetHelpFn(func(*Options, HelpRequest) error {
				t.Errorf("help called")
				return nil
			})
			r, err := opt.Parse(append([]string{"prog"}, tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(tt.remaining, r.Remaining()); diff != "" {
				t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
			}
			if !r.Called("--") && tt.name != "marker as argument only" {
				t.Errorf("end of options not selected")
			}
			if r.Called("--help") {
				t.Errorf("--help selected after end of options")
			}
		})
	}
}

func TestAliasTransparency(t *testing.T) {
	opt := New()
	opt.Add("--file", "-f").RequiresArgument()
	opt.Add("--verbose", "-v", "-V").Repeatable()
	opt.Add("--quiet", "-q")
	r, err := opt.Parse([]string{"prog", "-f", "a", "-vV", "--file", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	pairs := [][]string{{"--file", "-f"}, {"--verbose", "-v"}, {"--verbose", "-V"}, {"--quiet", "-q"}}
	for _, p := range pairs {
		canonical, alias := p[0], p[1]
		if r.Called(canonical) != r.Called(alias) {
			t.Errorf("%s: Called differs", alias)
		}
		if r.Count(canonical) != r.Count(alias) {
			t.Errorf("%s: Count differs", alias)
		}
		if r.CalledAs(canonical) != r.CalledAs(alias) {
			t.Errorf("%s: CalledAs differs", alias)
		}
		a1, ok1 := r.Argument(canonical)
		a2, ok2 := r.Argument(alias)
		if a1 != a2 || ok1 != ok2 {
			t.Errorf("%s: Argument differs", alias)
		}
	}
	if arg, _ := r.Argument("-f"); arg != "b" {
		t.Errorf("got %q, want last argument 'b'", arg)
	}
	if got := r.CalledAs("-f"); got != "--file" {
		t.Errorf("got %q, want '--file'", got)
	}
	if got := r.CalledAs("--verbose"); got != "-V" {
		t.Errorf("got %q, want '-V'", got)
	}
	if r.Called("-q") || r.CalledAs("-q") != "" {
		t.Errorf("--quiet not called")
	}
	if r.Called("--undeclared") || r.Count("--undeclared") != 0 {
		t.Errorf("undeclared option reported as called")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []error
		message  string
	}{
		{"ok", []string{"--file", "x"}, nil, ""},
		{"missing required", []string{}, []error{ErrorMissingRequiredOption}, "Missing required option '--file'!"},
		{
			"incompatible", []string{"-f", "x", "-q", "--verbose"},
			[]error{ErrorIncompatibleOptions},
			"Option '--verbose' can't be used together with option '--quiet'!",
		},
		{"missing argument", []string{"-f"}, []error{ErrorMissingRequiredArgument}, "Missing argument for option '--file'!"},
		{
			"everything", []string{"--bogus", "-q", "-v", "-x"},
			[]error{ErrorUnknownOption, ErrorMissingRequiredOption, ErrorIncompatibleOptions, ErrorMissingRequiredArgument},
			"Unknown option '--bogus'\n" +
				"Missing required option '--file'!\n" +
				"Option '--verbose' can't be used together with option '--quiet'!\n" +
				"Missing argument for option '-x'!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			opt := New()
			opt.Add("--verbose", "-v").IncompatibleWith("--quiet")
			opt.Add("--file", "-f").RequiresArgument().Required()
			opt.Add("--quiet", "-q").IncompatibleWith("-v")
			opt.Add("-x").RequiresArgument()
			r, err := opt.Parse(append([]string{"prog"}, tt.args...))
			if r == nil {
				t.Fatalf("nil result")
			}
			if tt.expected == nil {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				return
			}
			checkError(t, err, ErrorParsing)
			kinds := errorKinds(err)
			if len(kinds) != len(tt.expected) {
				t.Fatalf("got %d errors, want %d: %s", len(kinds), len(tt.expected), err)
			}
			for i := range kinds {
				if !errors.Is(kinds[i], tt.expected[i]) {
					t.Errorf("error %d: got %v, want %v", i, kinds[i], tt.expected[i])
				}
				checkError(t, err, tt.expected[i])
			}
			if err.Error() != tt.message {
				t.Errorf("got message:\n%s\n%s", err, firstDiff(err.Error(), tt.message))
			}
		})
	}
}

func TestUnknownMode(t *testing.T) {
	t.Run("fail", func(t *testing.T) {
		buf, restore := setupWriter()
		defer restore()
		opt := New()
		opt.Add("--verbose")
		r, err := opt.Parse([]string{"prog", "--verbos", "arg"})
		checkError(t, err, ErrorUnknownOption)
		var report *Report
		if !errors.As(err, &report) || len(report.Errors) != 1 {
			t.Fatalf("unexpected error: %#v", err)
		}
		e := report.Errors[0]
		if e.Token != "--verbos" || e.Suggestion != "--verbose" {
			t.Errorf("unexpected parse error: %+v", e)
		}
		if err.Error() != "Unknown option '--verbos', did you mean '--verbose'?" {
			t.Errorf("unexpected message: %s", err)
		}
		if diff := cmp.Diff([]string{"arg"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
		if buf.String() != "" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("no suggestion for end of options", func(t *testing.T) {
		opt := New()
		_, err := opt.Parse([]string{"prog", "-x"})
		var report *Report
		if !errors.As(err, &report) || report.Errors[0].Suggestion != "" {
			t.Errorf("unexpected error: %#v", err)
		}
	})

	t.Run("warn", func(t *testing.T) {
		buf, restore := setupWriter()
		defer restore()
		opt := New().SetUnknownMode(Warn)
		opt.Add("--verbose")
		r, err := opt.Parse([]string{"prog", "--verbos", "arg"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff([]string{"--verbos", "arg"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
		if buf.String() != "WARNING: Unknown option '--verbos'\n" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("pass", func(t *testing.T) {
		buf, restore := setupWriter()
		defer restore()
		opt := New().SetUnknownMode(Pass)
		r, err := opt.Parse([]string{"prog", "--verbos", "-z"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff([]string{"--verbos", "-z"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
		if buf.String() != "" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("undeclared inline", func(t *testing.T) {
		opt := New()
		r, err := opt.Parse([]string{"prog", "--nope=x"})
		var report *Report
		if !errors.As(err, &report) || len(report.Errors) != 1 || report.Errors[0].Token != "--nope" {
			t.Errorf("unexpected error: %#v", err)
		}
		if diff := cmp.Diff([]string{"x"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("undeclared inline after optional argument", func(t *testing.T) {
		opt := New()
		opt.Add("--color").AcceptsArgument()
		got, err := opt.Normalize([]string{"--color", "--foo=bar"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff([]string{"--color", "--foo", "bar"}, got); diff != "" {
			t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
		}
		r, err := opt.Parse([]string{"prog", "--color", "--foo=bar"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if arg, ok := r.Argument("--color"); !ok || arg != "--foo" {
			t.Errorf("wrong argument: %q, %v", arg, ok)
		}
		if diff := cmp.Diff([]string{"bar"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("undeclared inline pass", func(t *testing.T) {
		opt := New().SetUnknownMode(Pass)
		r, err := opt.Parse([]string{"prog", "--nope=x", "y"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff([]string{"--nope", "x", "y"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dash in cluster", func(t *testing.T) {
		opt := New()
		opt.Add("-a")
		opt.Add("-b")
		r, err := opt.Parse([]string{"prog", "-a-b", "arg"})
		checkError(t, err, ErrorUnknownOption)
		if r.Called("--") {
			t.Errorf("dash inside a cluster ended the options")
		}
		if diff := cmp.Diff([]string{"-a", "-b"}, r.Selected()); diff != "" {
			t.Errorf("Selected mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"arg"}, r.Remaining()); diff != "" {
			t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestResult(t *testing.T) {
	opt := New()
	opt.Add("--file", "-f").RequiresArgument()
	opt.Add("--flag")
	opt.Add("-c").AcceptsArgument()
	r, err := opt.Parse([]string{"/usr/bin/prog", "-c", "--flag=x", "a", "-fvalue", "--", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Script() != "/usr/bin/prog" {
		t.Errorf("got script %q", r.Script())
	}
	if diff := cmp.Diff([]string{"-c", "--flag", "--file", "--"}, r.Selected()); diff != "" {
		t.Errorf("Selected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"--file": "value"}, r.Arguments()); diff != "" {
		t.Errorf("Arguments mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "a", "b"}, r.Remaining()); diff != "" {
		t.Errorf("Remaining mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-c", "--flag", "x", "a", "-f", "value", "--", "b"}, r.Normalized()); diff != "" {
		t.Errorf("Normalized mismatch (-want +got):\n%s", diff)
	}
	if r.HelpRequested() {
		t.Errorf("unexpected help request")
	}

	empty, err := New().Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if empty.Remaining() == nil || empty.Selected() == nil || empty.Normalized() == nil {
		t.Errorf("nil slices in empty result")
	}
	if empty.Script() != "" {
		t.Errorf("got script %q", empty.Script())
	}
}

func TestNormalize(t *testing.T) {
	opt := New()
	opt.Add("-a")
	opt.Add("-b")
	opt.Add("-c")
	opt.Add("--file").RequiresArgument()
	opt.SetHelpFn(func(*Options, HelpRequest) error {
		t.Errorf("help called")
		return nil
	})

	got, err := opt.Normalize([]string{"-abc", "--file=x", "--file", "-ab", "--", "-ab", "--help"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := []string{"-a", "-b", "-c", "--file", "x", "--file", "-ab", "--", "-ab", "--help"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}

	got, err = opt.Normalize([]string{"-ab", "--help", "-c"})
	checkError(t, err, ErrorHelpCalled)
	if diff := cmp.Diff([]string{"-a", "-b", "--help"}, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}
