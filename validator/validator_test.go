package validator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeContent(answerLines ...string) string {
	lines := []string{"SHIELD", "Name: Ada", "SHIELD ID: 42", ""}
	lines = append(lines, answerLines...)
	return strings.Join(lines, "\n")
}

func fullResume() string {
	answers := make([]string, 0, 9)
	for i := 1; i <= 9; i++ {
		answers = append(answers, fmt.Sprintf("%d. answer %d", i, i))
	}
	return resumeContent(answers...)
}

func TestValidate_AcceptsWellFormedResume(t *testing.T) {
	content := resumeContent("1. yes", "2. no", "3. a", "4. b", "5. c", "6. d", "7. e", "8. f", "9. maybe")

	sub, err := Validate("Shield-Resume-42.txt", content)
	require.NoError(t, err)

	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "42", sub.ShieldID)
	assert.Equal(t, "Shield-Resume-42.txt", sub.Filename)
	assert.Equal(t, content, sub.FileContents)
	assert.Len(t, sub.Answers, 9)
	assert.Equal(t, "yes", sub.Answers["1"])
	assert.Equal(t, "no", sub.Answers["2"])
	assert.Equal(t, "maybe", sub.Answers["9"])
}

func TestValidate_ContinuationLines(t *testing.T) {
	content := resumeContent(
		"1. first line",
		"second line",
		"2. b", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i",
	)

	sub, err := Validate("Shield-Resume-42.txt", content)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", sub.Answers["1"])
}

func TestValidate_AnswerMayBeEmpty(t *testing.T) {
	content := resumeContent("1. ", "2. b", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i")

	sub, err := Validate("Shield-Resume-42.txt", content)
	require.NoError(t, err)
	assert.Equal(t, "", sub.Answers["1"])
}

func TestValidate_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		content  string
		kind     Kind
	}{
		{
			name:     "wrong filename prefix",
			filename: "Resume-42.txt",
			content:  fullResume(),
			kind:     BadFilename,
		},
		{
			name:     "wrong filename suffix",
			filename: "Shield-Resume-42.pdf",
			content:  fullResume(),
			kind:     BadFilename,
		},
		{
			name:     "template not renamed",
			filename: "Shield-Resume-template.txt",
			content:  fullResume(),
			kind:     TemplateNotRenamed,
		},
		{
			name:     "missing title marker",
			filename: "Shield-Resume-42.txt",
			content:  "AGENCY\nName: Ada\nSHIELD ID: 42\n\n" + strings.Join(strings.Split(fullResume(), "\n")[4:], "\n"),
			kind:     MissingMarker,
		},
		{
			name:     "empty content",
			filename: "Shield-Resume-42.txt",
			content:  "",
			kind:     MissingMarker,
		},
		{
			name:     "missing name label",
			filename: "Shield-Resume-42.txt",
			content:  "SHIELD\nAda\nSHIELD ID: 42\n\n1. a",
			kind:     MissingIdentity,
		},
		{
			name:     "missing id label",
			filename: "Shield-Resume-42.txt",
			content:  "SHIELD\nName: Ada\nID: 42\n\n1. a",
			kind:     MissingIdentity,
		},
		{
			name:     "marker only",
			filename: "Shield-Resume-42.txt",
			content:  "SHIELD",
			kind:     MissingIdentity,
		},
		{
			name:     "one question missing",
			filename: "Shield-Resume-42.txt",
			content:  resumeContent("1. a", "2. b", "3. c", "4. d", "6. f", "7. g", "8. h", "9. i"),
			kind:     QuestionMismatch,
		},
		{
			name:     "questions out of order",
			filename: "Shield-Resume-42.txt",
			content:  resumeContent("2. b", "1. a", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i"),
			kind:     QuestionMismatch,
		},
		{
			name:     "duplicate question",
			filename: "Shield-Resume-42.txt",
			content:  resumeContent("1. a", "1. again", "2. b", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i"),
			kind:     QuestionMismatch,
		},
		{
			name:     "extra question",
			filename: "Shield-Resume-42.txt",
			content:  resumeContent("1. a", "2. b", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i", "10. extra"),
			kind:     QuestionMismatch,
		},
		{
			name:     "no answers at all",
			filename: "Shield-Resume-42.txt",
			content:  "SHIELD\nName: Ada\nSHIELD ID: 42\n",
			kind:     QuestionMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := Validate(tc.filename, tc.content)
			require.Error(t, err)
			assert.Nil(t, sub)

			verr := &Error{}
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.kind, verr.Kind)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestValidate_StrayLinesBeforeFirstAnswerAreDiscarded(t *testing.T) {
	content := resumeContent(
		"some preamble with no delimiter",
		"1. a", "2. b", "3. c", "4. d", "5. e", "6. f", "7. g", "8. h", "9. i",
	)

	sub, err := Validate("Shield-Resume-42.txt", content)
	require.NoError(t, err)
	assert.Equal(t, "a", sub.Answers["1"])
}

func TestValidate_IdentityIsTrimmed(t *testing.T) {
	content := "SHIELD\nName:   Peggy Carter  \nSHIELD ID:  007 \n\n" +
		"1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i"

	sub, err := Validate("Shield-Resume-007.txt", content)
	require.NoError(t, err)
	assert.Equal(t, "Peggy Carter", sub.Name)
	assert.Equal(t, "007", sub.ShieldID)
}
