package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Question", "Option1", "Option2", "Option3", "Option4", "Option5", "Correct_Answers", "Topic", "Difficulty"},
		{"Which service is object storage?", "EC2", "S3", "RDS", "EBS", "", "2", "storage", "easy"},
		{"Pick two HA options", "Multi-AZ", "Single AZ", "Read replica", "Snapshot", "Spot", "1,3", "database", "medium"},
		{},
		{"Broken row", "a", "b", "c", "d", "", "x", "", ""},
	})

	result, err := ReadXLSX(buf)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	first := result.Rows[0]
	assert.Equal(t, 2, first.Number)
	assert.Equal(t, "Which service is object storage?", first.Request.Question)
	assert.Equal(t, []string{"EC2", "S3", "RDS", "EBS"}, first.Request.Options)
	assert.Equal(t, []int{1}, first.Request.CorrectAnswers)
	assert.Equal(t, "storage", first.Request.Topic)

	second := result.Rows[1]
	assert.Len(t, second.Request.Options, 5)
	assert.Equal(t, []int{0, 2}, second.Request.CorrectAnswers)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 5, result.Errors[0].Row)
}

func TestReadXLSX_RejectsOption6WithoutOption5(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Question", "Option1", "Option2", "Option3", "Option4", "Option5", "Option6", "Correct_Answers"},
		{"Gap between options", "a", "b", "c", "d", "", "f", "5"},
		{"All six options", "a", "b", "c", "d", "e", "f", "6"},
	})

	result, err := ReadXLSX(buf)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "option6 set while option5 is empty", result.Errors[0].Message)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, result.Rows[0].Request.Options)
	assert.Equal(t, []int{5}, result.Rows[0].Request.CorrectAnswers)
}

func TestReadXLSX_MissingColumn(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Question", "Option1", "Option2"},
		{"q", "a", "b"},
	})

	_, err := ReadXLSX(buf)
	assert.ErrorContains(t, err, "missing required column")
}

func TestParseAnswerNumbers(t *testing.T) {
	got, err := ParseAnswerNumbers("1, 3;4")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, got)

	_, err = ParseAnswerNumbers("")
	assert.Error(t, err)
	_, err = ParseAnswerNumbers("0")
	assert.Error(t, err)
	_, err = ParseAnswerNumbers("two")
	assert.Error(t, err)
}
