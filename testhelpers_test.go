// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optopus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the test failed.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if t.Failed() && len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
		Logger.SetOutput(io.Discard)
	}
}

// setupWriter - Captures Writer and returns the buffer and a function to restore it.
func setupWriter() (*bytes.Buffer, func()) {
	buf := new(bytes.Buffer)
	old := Writer
	Writer = buf
	return buf, func() { Writer = old }
}

// firstDiff - Compares two outputs rune by rune and describes the first
// difference, with its line and column. Returns "" when they match.
func firstDiff(got, expected string) string {
	g, e := []rune(got), []rune(expected)
	line, col := 1, 1
	for i := 0; i < len(g) || i < len(e); i++ {
		switch {
		case i >= len(e):
			return fmt.Sprintf("got:\n%s\nline %d col %d: unexpected trailing %q\n", got, line, col, string(g[i:]))
		case i >= len(g):
			return fmt.Sprintf("got:\n%s\nline %d col %d: missing %q\n", got, line, col, string(e[i:]))
		case g[i] != e[i]:
			return fmt.Sprintf("got:\n%s\nline %d col %d: got %q - exp %q\n", got, line, col, g[i], e[i])
		}
		col++
		if g[i] == '\n' {
			line, col = line+1, 1
		}
	}
	return ""
}

// errorKinds - Sentinel of each error in a report, in order.
func errorKinds(err error) []error {
	var report *Report
	if !errors.As(err, &report) {
		return nil
	}
	kinds := []error{}
	for _, e := range report.Errors {
		kinds = append(kinds, e.Err)
	}
	return kinds
}
