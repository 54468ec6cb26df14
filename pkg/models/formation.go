// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"
	"strings"

	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/typ.v4/slices"
)

// Side is one of the two teams in a match slot.
type Side string

const (
	SideUnset Side = ""
	SideTeamA Side = "team_a"
	SideTeamB Side = "team_b"
)

func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case SideTeamA:
		return SideTeamA, nil
	case SideTeamB:
		return SideTeamB, nil
	case SideUnset:
		return SideUnset, nil
	}
	return SideUnset, fmt.Errorf("%w: got %q", ErrInvalidSide, s)
}

// Other returns the opposite side, unset stays unset.
func (s Side) Other() Side {
	switch s {
	case SideTeamA:
		return SideTeamB
	case SideTeamB:
		return SideTeamA
	}
	return SideUnset
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Outcome is the reported result of a match slot.
type Outcome string

const (
	OutcomeTeamA Outcome = "team_a"
	OutcomeTeamB Outcome = "team_b"
	OutcomeDraw  Outcome = "draw"
)

func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(s))); o {
	case OutcomeTeamA, OutcomeTeamB, OutcomeDraw:
		return o, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidOutcome, s)
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MatchSlot is one concurrently played pairing, team A versus team B.
type MatchSlot struct {
	TeamA []Participant `json:"teamA" yaml:"teamA"`
	TeamB []Participant `json:"teamB" yaml:"teamB"`
}

// Team returns the participants on the given side.
func (m MatchSlot) Team(side Side) []Participant {
	switch side {
	case SideTeamA:
		return m.TeamA
	case SideTeamB:
		return m.TeamB
	}
	return nil
}

// Participants returns team A followed by team B.
func (m MatchSlot) Participants() []Participant {
	all := make([]Participant, 0, len(m.TeamA)+len(m.TeamB))
	all = append(all, m.TeamA...)
	all = append(all, m.TeamB...)
	return all
}

// FormationResult is the match slots plus the waiting queue.
// The caller owns it, the engine only ever returns fresh copies.
type FormationResult struct {
	Matches      []MatchSlot   `json:"teams"        yaml:"teams"`
	WaitingQueue []Participant `json:"waitingQueue" yaml:"waitingQueue"`
}

func (r FormationResult) Copy() FormationResult {
	copied, err := copystructure.Copy(r)
	if err != nil {
		logrus.Warn("failed copy formation result:", err)
		return r
	}
	result, _ := copied.(FormationResult)
	return result
}

// Participants flattens every match slot and then the waiting queue.
func (r FormationResult) Participants() []Participant {
	all := make([]Participant, 0)
	for _, m := range r.Matches {
		all = append(all, m.Participants()...)
	}
	return append(all, r.WaitingQueue...)
}

// QueuePosition returns the 1-based position in the waiting queue, or 0 when not waiting.
func (r FormationResult) QueuePosition(participantID string) int {
	return slices.IndexFunc(r.WaitingQueue, func(p Participant) bool { return p.ID == participantID }) + 1
}

// CopyParticipants deep copies a participant list.
func CopyParticipants(participants []Participant) []Participant {
	if participants == nil {
		return nil
	}
	copied, err := copystructure.Copy(participants)
	if err != nil {
		logrus.Warn("failed copy participants:", err)
		return append([]Participant(nil), participants...)
	}
	result, _ := copied.([]Participant)
	return result
}
