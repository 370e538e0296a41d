package service

import (
	"sort"
	"time"

	"github.com/lshigami/quizreview/internal/model"
)

// ReduceToStillIncorrect keeps, for every question, only the latest attempt
// and returns those latest attempts that were wrong, newest first.
//
// Attempts are ordered by CreatedAt descending with ID descending as the tie
// break, so equal timestamps resolve to the later insert regardless of the
// input order. The input slice is not modified.
func ReduceToStillIncorrect(attempts []model.Attempt) []model.Attempt {
	sorted := make([]model.Attempt, len(attempts))
	copy(sorted, attempts)
	sortLatestFirst(sorted)

	seen := make(map[uint]struct{}, len(sorted))
	result := make([]model.Attempt, 0)
	for _, attempt := range sorted {
		if _, ok := seen[attempt.QuestionID]; ok {
			continue
		}
		seen[attempt.QuestionID] = struct{}{}
		if !attempt.IsCorrect {
			result = append(result, attempt)
		}
	}
	return result
}

func sortLatestFirst(attempts []model.Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		a, b := attempts[i], attempts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// AttemptGroup is a set of attempts sharing a calendar date.
type AttemptGroup struct {
	Date     string
	Attempts []model.Attempt
}

// GroupByDate buckets attempts by the calendar date of CreatedAt in loc.
// Groups keep the order in which their first attempt appears, so a
// newest-first input gives newest-first groups.
func GroupByDate(attempts []model.Attempt, loc *time.Location) []AttemptGroup {
	if loc == nil {
		loc = time.UTC
	}
	groups := make([]AttemptGroup, 0)
	index := make(map[string]int)
	for _, attempt := range attempts {
		day := attempt.CreatedAt.In(loc).Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, AttemptGroup{Date: day})
		}
		groups[i].Attempts = append(groups[i].Attempts, attempt)
	}
	return groups
}
