package matching

// Match is the closest candidate found for a name.
type Match struct {
	Candidate string
	Index     int // position in the candidate list, -1 when there were none
	Score     float64
}

// BestMatch returns the candidate maximising Score(name, candidate). Ties keep
// the earliest candidate. It never applies a threshold: callers decide what
// score counts as a confident match.
func BestMatch(name string, candidates []string) Match {
	best := Match{Index: -1}
	for i, c := range candidates {
		score := Score(name, c)
		if best.Index == -1 || score > best.Score {
			best = Match{Candidate: c, Index: i, Score: score}
		}
	}
	return best
}
