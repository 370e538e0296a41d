package service

import (
	"fmt"
	"strings"
)

const (
	explanationSystem = "You are an expert tutor for the %s exam. Explain clearly and simply, and highlight the key points that separate the correct answer from the distractors."
	keywordSystem     = "You analyse %s exam questions. Extract only the key terms that distinguish the correct answer from the wrong ones."

	explanationMaxTokens   = 1000
	explanationTemperature = 0.7
	keywordMaxTokens       = 100
	keywordTemperature     = 0.3
)

// answerNumbers renders 0-based indices as the 1-based numbers shown to users.
func answerNumbers(correct []int) string {
	nums := make([]string, len(correct))
	for i, idx := range correct {
		nums[i] = fmt.Sprint(idx + 1)
	}
	return strings.Join(nums, ", ")
}

func explanationPrompt(exam, question string, options []string, correct []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following is a %s exam question.\n\n", exam)
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", question)
	for i, opt := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s\n\n", answerNumbers(correct))
	b.WriteString("Give a detailed explanation in this format:\n\n")
	b.WriteString("1. Why the correct option(s) are right\n")
	b.WriteString("2. Why each wrong option is wrong and how it differs from the correct answer\n")
	return b.String()
}

func keywordPrompt(exam, question string, options []string, correct []int) string {
	isCorrect := make(map[int]bool, len(correct))
	right := make([]string, 0, len(correct))
	for _, idx := range correct {
		isCorrect[idx] = true
		if idx >= 0 && idx < len(options) {
			right = append(right, options[idx])
		}
	}
	wrong := make([]string, 0, len(options))
	for i, opt := range options {
		if !isCorrect[i] {
			wrong = append(wrong, fmt.Sprintf("%d - %s", i+1, opt))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Give 3-5 key terms for this %s question that separate the correct answer from the wrong ones, as a JSON array only.\n\n", exam)
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Correct: %s - %s\n\n", answerNumbers(correct), strings.Join(right, ", "))
	fmt.Fprintf(&b, "Wrong: %s\n\n", strings.Join(wrong, " / "))
	b.WriteString(`Example: ["High availability", "Multi-AZ", "Automated backups", "Read replica", "RDS"]`)
	b.WriteString("\n\nAnswer with the JSON array only:")
	return b.String()
}
