package cmdline

// levenshtein returns the edit distance between two strings.
func levenshtein(str string, tgt string) int {
	src, dst := []rune(str), []rune(tgt)

	if len(src) == 0 {
		return len(dst)
	}

	if len(dst) == 0 {
		return len(src)
	}

	prev := make([]int, len(dst)+1)
	curr := make([]int, len(dst)+1)

	for j := range prev {
		prev[j] = j
	}

	for i, sc := range src {
		curr[0] = i + 1

		for j, tc := range dst {
			cost := 1
			if sc == tc {
				cost = 0
			}

			curr[j+1] = min(prev[j]+cost, prev[j+1]+1, curr[j]+1)
		}

		prev, curr = curr, prev
	}

	return prev[len(dst)]
}

// closestChoice returns the choice nearest to cmd, and its distance.
// Ties are won by the earliest choice.
func closestChoice(cmd string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	mincmd := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein(cmd, c)

		if mincmd < 0 || l < mindist {
			mindist = l
			mincmd = i
		}
	}

	return choices[mincmd], mindist
}

// maxSuggestDistance bounds how far a suggestion may be from a mistyped token.
func maxSuggestDistance(token string) int {
	limit := len([]rune(token)) / 3
	if limit < 1 {
		return 1
	}

	return limit
}
