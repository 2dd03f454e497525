package app

// UniqueContributors collapses repeated contributors into a single entry per login.
//
// history must be ordered from the latest to the earliest contribution.
// Result keeps order of first appearance, so every entry is the person's latest contribution.
// Empty input gives empty, non nil result.
func UniqueContributors(history []Contributor) []Contributor {
	seen := make(map[string]struct{}, len(history))
	result := make([]Contributor, 0, len(history))
	for _, c := range history {
		if _, ok := seen[c.Login]; ok {
			continue
		}
		seen[c.Login] = struct{}{}
		result = append(result, c)
	}

	return result
}
