package profile

import (
	"strings"
)

const (
	// minSimilarity is the acceptance floor for fuzzy resolution.
	minSimilarity = 0.6
	// suggestSimilarity is the looser floor for near-miss suggestions.
	suggestSimilarity = 0.4
	// maxSuggestions caps the near-miss list carried by resolution errors.
	maxSuggestions = 3
)

// Normalize canonicalizes free-text profile input: lower-case, trimmed,
// with separators and all other non-alphanumeric characters dropped, so
// "RNA seq", "rna-seq" and "RNAseq" normalize identically.
func Normalize(text string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ResolveOrganism maps free-text organism input to its catalog definition.
// Resolution order: exact normalized code, exact alias, then best fuzzy
// match above the similarity floor. Failure carries near-miss suggestions.
func (c *Catalog) ResolveOrganism(text string) (*Organism, error) {
	code, ok := resolve(text, c.organismIndex, c.organismKeys)
	if !ok {
		return nil, &UnknownOrganismError{
			Input:       text,
			Suggestions: suggest(text, c.organismIndex, c.organismKeys),
		}
	}

	return c.organisms[code], nil
}

// ResolveExperiment maps free-text experiment-type input to its catalog
// definition, with the same resolution order as ResolveOrganism.
func (c *Catalog) ResolveExperiment(text string) (*Experiment, error) {
	code, ok := resolve(text, c.experimentIndex, c.experimentKeys)
	if !ok {
		return nil, &UnknownExperimentError{
			Input:       text,
			Suggestions: suggest(text, c.experimentIndex, c.experimentKeys),
		}
	}

	return c.experiments[code], nil
}

func resolve(text string, index map[string]string, keys []string) (string, bool) {
	normalized := Normalize(text)
	if normalized == "" {
		return "", false
	}

	// Exact match against codes and aliases.
	if code, ok := index[normalized]; ok {
		return code, true
	}

	// Best fuzzy match, keys scanned in sorted order for determinism.
	best := ""
	bestScore := 0.0

	for _, key := range keys {
		score := similarity(normalized, key)
		if score > bestScore {
			best, bestScore = key, score
		}
	}

	if bestScore >= minSimilarity {
		return index[best], true
	}

	return "", false
}

// suggest returns up to maxSuggestions canonical codes whose code or alias
// loosely matches the input, best first.
func suggest(text string, index map[string]string, keys []string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	type scored struct {
		key   string
		score float64
	}

	var candidates []scored

	for _, key := range keys {
		if score := similarity(normalized, key); score >= suggestSimilarity {
			candidates = append(candidates, scored{key, score})
		}
	}

	// Stable by construction: keys are pre-sorted, so equal scores keep
	// lexicographic order.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score > candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	var out []string

	seen := make(map[string]bool)

	for _, cand := range candidates {
		code := index[cand.key]
		if seen[code] {
			continue
		}

		seen[code] = true

		out = append(out, code)
		if len(out) == maxSuggestions {
			break
		}
	}

	return out
}

// similarity scores two normalized strings in [0,1] from their edit
// distance relative to the longer length.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	longest := max(len(a), len(b))
	if longest == 0 {
		return 0.0
	}

	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes edit distance with two-row dynamic programming.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min(prev[i-1], prev[i], curr[i-1])
			}
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
