package domain

import (
	"sort"
	"strings"
)

// CountTags flattens the tag lists and counts occurrences per exact tag
// string, ordered by count descending then tag ascending.
func CountTags(tagLists [][]string) []TagCount {
	counts := make(map[string]int)
	for _, tags := range tagLists {
		for _, tag := range tags {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		result = append(result, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})
	return result
}

// NormalizeTags trims each tag, drops empties and removes duplicates while
// keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
