// Package script runs YAML gesture scripts against a board and drag coordinator.
// Scripts drive the replay command and let tests describe drag flows as data.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a named list of steps
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Which fields matter depends on Op.
type Step struct {
	Op string `yaml:"op"`

	// As names the column or card a create step produces
	As string `yaml:"as,omitempty"`

	Column       string `yaml:"column,omitempty"`
	Card         string `yaml:"card,omitempty"`
	Target       string `yaml:"target,omitempty"`
	Kind         string `yaml:"kind,omitempty"`
	Title        string `yaml:"title,omitempty"`
	Content      string `yaml:"content,omitempty"`
	OverIsColumn bool   `yaml:"over_is_column,omitempty"`

	// Expectations, checked by the expect op
	Columns []string            `yaml:"columns,omitempty"`
	Cards   map[string][]string `yaml:"cards,omitempty"`
	State   string              `yaml:"state,omitempty"`
}

// Ops understood by the runner
const (
	OpCreateColumn = "create_column"
	OpCreateCard   = "create_card"
	OpRenameColumn = "rename_column"
	OpEditCard     = "edit_card"
	OpDeleteColumn = "delete_column"
	OpDeleteCard   = "delete_card"
	OpMoveColumn   = "move_column"
	OpMoveCard     = "move_card"
	OpDragStart    = "drag_start"
	OpDragOver     = "drag_over"
	OpDragEnd      = "drag_end"
	OpDragCancel   = "drag_cancel"
	OpLock         = "lock"
	OpUnlock       = "unlock"
	OpExpect       = "expect"
)

// Parse decodes a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	return &s, nil
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
