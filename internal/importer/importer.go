// Package importer reads question banks from .xlsx spreadsheets.
//
// The first sheet must start with a header row. Recognised columns (case
// insensitive): question, option1..option6, correct_answers, topic,
// difficulty and explanation. Correct answers are 1-based option numbers
// separated by commas, e.g. "1,3".
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lshigami/quizreview/internal/dto"
	"github.com/xuri/excelize/v2"
)

// Row is one parsed data row. Number is the 1-based spreadsheet row.
type Row struct {
	Number  int
	Request dto.CreateQuestionRequest
}

type Result struct {
	Rows   []Row
	Errors []dto.ImportRowError
}

var headerAliases = map[string]string{
	"question":        "question",
	"prompt":          "question",
	"correct_answers": "correct_answers",
	"correct answers": "correct_answers",
	"correct":         "correct_answers",
	"answer":          "correct_answers",
	"topic":           "topic",
	"difficulty":      "difficulty",
	"explanation":     "explanation",
}

func init() {
	for i := 1; i <= 6; i++ {
		headerAliases[fmt.Sprintf("option%d", i)] = fmt.Sprintf("option%d", i)
		headerAliases[fmt.Sprintf("option %d", i)] = fmt.Sprintf("option%d", i)
	}
}

// ReadXLSX parses the first sheet of the workbook in r.
func ReadXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty, a header row is required")
	}

	headers := make(map[string]int)
	for i, header := range rows[0] {
		if canonical, ok := headerAliases[strings.ToLower(strings.TrimSpace(header))]; ok {
			headers[canonical] = i
		}
	}
	for _, required := range []string{"question", "option1", "option2", "option3", "option4", "correct_answers"} {
		if _, ok := headers[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &Result{Rows: []Row{}, Errors: []dto.ImportRowError{}}
	for i, cells := range rows[1:] {
		number := i + 2
		cell := func(name string) string {
			idx, ok := headers[name]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}
		if isEmptyRow(cells) {
			continue
		}

		req := dto.CreateQuestionRequest{
			Question:   cell("question"),
			Topic:      cell("topic"),
			Difficulty: cell("difficulty"),
		}
		for n := 1; n <= 4; n++ {
			req.Options = append(req.Options, cell(fmt.Sprintf("option%d", n)))
		}
		option5, option6 := cell("option5"), cell("option6")
		if option6 != "" && option5 == "" {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: number, Message: "option6 set while option5 is empty"})
			continue
		}
		if option5 != "" {
			req.Options = append(req.Options, option5)
		}
		if option6 != "" {
			req.Options = append(req.Options, option6)
		}
		if explanation := cell("explanation"); explanation != "" {
			req.Explanation = &explanation
		}

		correct, err := ParseAnswerNumbers(cell("correct_answers"))
		if err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: number, Message: err.Error()})
			continue
		}
		req.CorrectAnswers = correct
		result.Rows = append(result.Rows, Row{Number: number, Request: req})
	}
	return result, nil
}

// ParseAnswerNumbers converts "1,3" (1-based) into []int{0, 2}.
func ParseAnswerNumbers(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '/'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("correct answers are empty")
	}
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("correct answer %q is not a number", field)
		}
		if n < 1 {
			return nil, fmt.Errorf("correct answer %d must be 1 or greater", n)
		}
		out = append(out, n-1)
	}
	return out, nil
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
