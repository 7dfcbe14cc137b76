package expense

import (
	"github.com/fkhayef/quicksplit/internal/draft"
	"github.com/fkhayef/quicksplit/internal/group"
	"github.com/fkhayef/quicksplit/internal/matching"
)

// acceptanceThreshold is the similarity a roster match has to exceed.
const acceptanceThreshold = 0.5

// Materialize binds every candidate member to a user id. The USER entry
// becomes userID; every other name is resolved against the roster nicknames.
// Either every member resolves or an error is returned.
func Materialize(c *Candidate, userID string, roster []*group.GroupMember) ([]ResolvedParticipant, error) {
	if !containsUser(c.Members) {
		return nil, &CurrentUserNotPresentError{}
	}

	nicknames := make([]string, len(roster))
	for i, m := range roster {
		nicknames[i] = m.Nickname
	}

	resolved := make([]ResolvedParticipant, 0, len(c.Members))
	seen := make(map[string]string, len(c.Members))

	for _, m := range c.Members {
		id := userID
		if m.Name != draft.UserSentinel {
			match := matching.BestMatch(m.Name, nicknames)
			if match.Index < 0 || match.Score <= acceptanceThreshold {
				return nil, &MemberNotFoundError{Name: m.Name, Closest: match.Candidate, Score: match.Score}
			}
			id = roster[match.Index].UserID
		}

		if other, ok := seen[id]; ok {
			return nil, &DuplicateParticipantError{Name: m.Name, Other: other}
		}
		seen[id] = m.Name

		resolved = append(resolved, ResolvedParticipant{
			Name:   m.Name,
			UserID: id,
			Role:   m.Role,
			Split:  m.Split,
		})
	}

	return resolved, nil
}

func containsUser(members []draft.Member) bool {
	for _, m := range members {
		if m.Name == draft.UserSentinel {
			return true
		}
	}
	return false
}
