package tag_ser

import "sort"

// DefaultLimit 热门标签数量上限
const DefaultLimit = 12

// RankTags 统计标签出现频次并按频次从高到低排序，返回前limit个标签
// 标签区分大小写，不做归一化；频次相同的标签保持首次出现的顺序
func RankTags(tagSets [][]string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	// order 记录首次出现顺序，保证同频次排序稳定
	order := make([]string, 0)

	for _, tags := range tagSets {
		for _, tag := range tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// TagSetsOf 从任意带标签的记录中取出标签集合
func TagSetsOf[T any](items []T, tags func(T) []string) [][]string {
	sets := make([][]string, 0, len(items))
	for _, item := range items {
		sets = append(sets, tags(item))
	}
	return sets
}
