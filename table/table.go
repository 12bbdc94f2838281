// This file is part of go-optopus.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package table - Declarative option tables.

A table describes a registry in YAML or TOML so it can be kept next to a script
instead of in code:

	title: backup - copy files around
	options:
	  - name: --verbose
	    aliases: [-v]
	    repeatable: true
	  - name: --file
	    aliases: [-f]
	    argument: required   # none, optional or required
	    required: true
	    arg_name: file
	    description: Input file.
	  - name: --quiet
	    incompatible_with: [--verbose]

The TOML form uses an array of tables:

	title = "backup"

	[[options]]
	name = "--verbose"
	aliases = ["-v"]
	repeatable = true
*/
package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/DavidGamba/go-optopus"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrorInvalidTable - Indicates that the table can't be loaded or applied.
var ErrorInvalidTable = errors.New("invalid option table")

// Format - Table encoding.
type Format int

// Table formats
const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// Argument kinds
const (
	ArgumentNone     = "none"
	ArgumentOptional = "optional"
	ArgumentRequired = "required"
)

// Unknown option modes
const (
	UnknownFail = "fail"
	UnknownWarn = "warn"
	UnknownPass = "pass"
)

// Entry - A single option declaration.
type Entry struct {
	Name             string   `yaml:"name" toml:"name"`
	Aliases          []string `yaml:"aliases" toml:"aliases"`
	Argument         string   `yaml:"argument" toml:"argument"` // none (default), optional or required
	Required         bool     `yaml:"required" toml:"required"`
	Repeatable       bool     `yaml:"repeatable" toml:"repeatable"`
	IncompatibleWith []string `yaml:"incompatible_with" toml:"incompatible_with"`
	Description      string   `yaml:"description" toml:"description"`
	ArgName          string   `yaml:"arg_name" toml:"arg_name"`
}

// Table - Option table.
type Table struct {
	Title   string  `yaml:"title" toml:"title"`
	Help    string  `yaml:"help" toml:"help"`       // Replaces the generated help body
	Unknown string  `yaml:"unknown" toml:"unknown"` // fail (default), warn or pass
	Options []Entry `yaml:"options" toml:"options"`
}

// Load - Reads a table in the given format.
// Unknown keys are an error.
func Load(r io.Reader, format Format) (*Table, error) {
	t := &Table{}
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrorInvalidTable, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key '%s'", ErrorInvalidTable, undecoded[0])
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrorInvalidTable, err)
		}
	}
	optopus.Logger.WithFields(logrus.Fields{"format": format, "options": len(t.Options)}).Debug("table loaded")
	return t, nil
}

// LoadFile - Reads a table from a file, the format is picked from the
// extension: .yaml, .yml or .toml.
func LoadFile(path string) (*Table, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, fmt.Errorf("%w: unsupported extension '%s'", ErrorInvalidTable, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Load(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// Registry - Builds a registry from the table.
// Unlike Add it never panics, declaration errors are returned with the
// position of the offending entry.
func (t *Table) Registry() (*optopus.Options, error) {
	opt := optopus.New()
	if t.Title != "" {
		opt.Title(t.Title)
	}
	if t.Help != "" {
		opt.HelpText(t.Help)
	}
	switch t.Unknown {
	case "", UnknownFail:
		opt.SetUnknownMode(optopus.Fail)
	case UnknownWarn:
		opt.SetUnknownMode(optopus.Warn)
	case UnknownPass:
		opt.SetUnknownMode(optopus.Pass)
	default:
		return nil, fmt.Errorf("%w: unknown mode '%s'", ErrorInvalidTable, t.Unknown)
	}

	for i, e := range t.Options {
		d, err := opt.Declare(e.Name, e.Aliases...)
		if err != nil {
			return nil, fmt.Errorf("%w: option #%d: %w", ErrorInvalidTable, i+1, err)
		}
		switch e.Argument {
		case "", ArgumentNone:
		case ArgumentOptional:
			d.AcceptsArgument()
		case ArgumentRequired:
			d.RequiresArgument()
		default:
			return nil, fmt.Errorf("%w: option #%d '%s': unknown argument kind '%s'", ErrorInvalidTable, i+1, e.Name, e.Argument)
		}
		if e.Required {
			d.Required()
		}
		if e.Repeatable {
			d.Repeatable()
		}
		if len(e.IncompatibleWith) > 0 {
			d.IncompatibleWith(e.IncompatibleWith...)
		}
		if e.Description != "" {
			d.Description(e.Description)
		}
		if e.ArgName != "" {
			d.ArgName(e.ArgName)
		}
	}
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidTable, err)
	}
	return opt, nil
}
