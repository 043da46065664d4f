package domain

import "github.com/agnivade/levenshtein"

// searchDistanceThreshold is the maximum edit distance between an entry name
// and a search target for the entry to count as a hit.
const searchDistanceThreshold = 1

// NameMatches reports whether name is within the edit-distance threshold of
// target. An exact match is always a hit; near misses (one insertion,
// deletion or substitution) are hits too, so minor typos still find the file.
func NameMatches(name, target string) bool {
	return levenshtein.ComputeDistance(name, target) <= searchDistanceThreshold
}
