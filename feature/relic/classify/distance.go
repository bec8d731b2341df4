package classify

// editDistance is the Levenshtein distance between a and b counted in runes,
// with unit cost for insert, delete and substitute.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// NearestIn returns the unique candidate closest to raw by edit distance.
// It returns false when candidates is empty or when two or more candidates
// share the minimum distance.
func NearestIn(raw string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	best := 0
	bestDist := editDistance(raw, candidates[0])
	tied := false
	for i := 1; i < len(candidates); i++ {
		d := editDistance(raw, candidates[i])
		switch {
		case d < bestDist:
			best, bestDist, tied = i, d, false
		case d == bestDist:
			tied = true
		}
	}

	if tied {
		return "", false
	}
	return candidates[best], true
}
