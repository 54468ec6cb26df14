// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package roster reads and writes the files the pelada-teams tool works on:
// a roster of participants and a formation state (match slots plus waiting queue).
// Files are YAML, and since YAML is a superset of JSON, JSON files are read as well.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/utils"
)

// File is the layout of a roster file.
type File struct {
	PlayersPerTeam int                  `yaml:"playersPerTeam,omitempty"`
	Participants   []models.Participant `yaml:"participants"`
}

// State is the layout of a formation state file.
type State struct {
	models.FormationResult `yaml:",inline"`

	PlayersPerTeam int `yaml:"playersPerTeam,omitempty"`
}

// DecodeParticipants decodes a roster. Participants without an id get a generated one,
// every participant is validated and all errors are returned together.
func DecodeParticipants(r io.Reader) (File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to decode roster: %w", err)
	}

	var errs []error
	for i := range file.Participants {
		if file.Participants[i].ID == "" {
			file.Participants[i].ID = utils.GenerateUUID()
		}
		if err := file.Participants[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("participant %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return File{}, errors.Join(errs...)
	}
	return file, nil
}

// LoadParticipants reads a roster file.
func LoadParticipants(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()
	return DecodeParticipants(f)
}

// DecodeState decodes a formation state.
func DecodeState(r io.Reader) (State, error) {
	var state State
	if err := yaml.NewDecoder(r).Decode(&state); err != nil && !errors.Is(err, io.EOF) {
		return State{}, fmt.Errorf("failed to decode formation state: %w", err)
	}
	return state, nil
}

// LoadState reads a formation state file.
func LoadState(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("failed to open formation state: %w", err)
	}
	defer f.Close()
	return DecodeState(f)
}

// EncodeState writes a formation state as YAML.
func EncodeState(w io.Writer, state State) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(state); err != nil {
		return fmt.Errorf("failed to encode formation state: %w", err)
	}
	return encoder.Close()
}

// WriteState writes a formation state file, replacing any existing one.
func WriteState(path string, state State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create formation state: %w", err)
	}
	if err := EncodeState(f, state); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
