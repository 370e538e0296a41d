package service

// IsCorrect reports whether selected and correct hold the same set of option
// indices. Order is irrelevant; a duplicate in selected never matches.
func IsCorrect(selected, correct []int) bool {
	if len(selected) != len(correct) {
		return false
	}
	want := make(map[int]struct{}, len(correct))
	for _, idx := range correct {
		want[idx] = struct{}{}
	}
	seen := make(map[int]struct{}, len(selected))
	for _, idx := range selected {
		if _, ok := want[idx]; !ok {
			return false
		}
		if _, dup := seen[idx]; dup {
			return false
		}
		seen[idx] = struct{}{}
	}
	return true
}
