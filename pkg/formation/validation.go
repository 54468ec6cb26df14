// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package formation

import (
	"fmt"

	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/utils"
)

// ValidateFormation checks every match slot and returns all violations found, not only the first.
// Both teams must have exactly playersPerTeam participants, and a participant may appear once per slot
// and in one slot only.
func ValidateFormation(matches []models.MatchSlot, playersPerTeam int) (bool, []models.Violation) {
	violations := make([]models.Violation, 0)
	slotOf := make(map[string]int)

	for i, match := range matches {
		for _, side := range []models.Side{models.SideTeamA, models.SideTeamB} {
			if size := len(match.Team(side)); size != playersPerTeam {
				violations = append(violations, models.Violation{
					Slot:   i,
					Side:   side,
					Err:    models.ErrTeamSizeMismatch,
					Detail: fmt.Sprintf("has %d players, expected %d", size, playersPerTeam),
				})
			}
		}

		ids := models.ParticipantIDs(match.Participants())
		for _, id := range utils.Duplicates(ids) {
			violations = append(violations, models.Violation{
				Slot:          i,
				ParticipantID: id,
				Err:           models.ErrDuplicateParticipant,
			})
		}

		for _, id := range ids {
			previous, seen := slotOf[id]
			if !seen {
				slotOf[id] = i
				continue
			}
			if previous != i {
				violations = append(violations, models.Violation{
					Slot:          i,
					ParticipantID: id,
					Err:           models.ErrParticipantInMultipleSlots,
					Detail:        fmt.Sprintf("already in match %d", previous+1),
				})
				// report once per slot
				slotOf[id] = i
			}
		}
	}

	return len(violations) == 0, violations
}
