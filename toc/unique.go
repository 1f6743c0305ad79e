package toc

import "strconv"

// UniqueSlugs makes anchors distinct in document order. First occurrence of
// a slug is kept as is, repeats get "-1", "-2" and so on appended. A suffixed
// anchor which happens to match a slug already handed out is suffixed again,
// so the result never has duplicates. Later entries never change earlier
// ones.
func UniqueSlugs(bases []string) []string {
	seen := make(map[string]int, len(bases))
	out := make([]string, len(bases))

	for i, base := range bases {
		result := base
		for {
			if _, taken := seen[result]; !taken {
				break
			}
			seen[base]++
			result = base + "-" + strconv.Itoa(seen[base])
		}
		seen[result] = 0
		out[i] = result
	}
	return out
}
