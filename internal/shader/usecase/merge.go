package usecase

// deepMerge combines two nested mappings. For every key in the union of both
// trees: if the key maps to objects on both sides, merge recursively;
// otherwise the right value wins when present, the left survives when not.
// Arrays are opaque leaves and are never merged element-wise. Neither input
// is mutated.
func deepMerge(left, right map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(left)+len(right))

	for k, lv := range left {
		merged[k] = lv
	}

	for k, rv := range right {
		lv, ok := merged[k]
		if !ok {
			merged[k] = rv
			continue
		}

		lm, lIsMap := lv.(map[string]interface{})
		rm, rIsMap := rv.(map[string]interface{})
		if lIsMap && rIsMap {
			merged[k] = deepMerge(lm, rm)
			continue
		}

		merged[k] = rv
	}

	return merged
}
