// Package validator parses raw resume submissions into structured records.
// It is pure: no I/O, no presentation. The same checks run server-side on
// upload and can back any client-side preview.
package validator

import (
	"fmt"
	"strings"

	"github.com/UmasivanKanthavel/shield-resume-server/model"
)

const (
	SubmissionType   = "Resume"
	FilenamePrefix   = "Shield-" + SubmissionType
	FilenameSuffix   = ".txt"
	TemplateFilename = FilenamePrefix + "-template" + FilenameSuffix

	titleMarker = "SHIELD"
	nameLabel   = "Name:"
	idLabel     = "SHIELD ID:"
)

// ExpectedQuestions lists the question numbers a submission must answer,
// in the order they must first appear.
var ExpectedQuestions = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

type Kind int

const (
	BadFilename Kind = iota
	TemplateNotRenamed
	MissingMarker
	MissingIdentity
	QuestionMismatch
)

// Error is a recoverable rejection of a submission. Reason is safe to show
// to the submitter.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func reject(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks filename and content against the fixed resume format and
// returns the parsed submission, or an *Error describing the first failed
// check.
func Validate(filename, content string) (*model.Submission, error) {
	if !strings.HasPrefix(filename, FilenamePrefix) || !strings.HasSuffix(filename, FilenameSuffix) {
		return nil, reject(BadFilename, "bad filename: expected %s*%s", FilenamePrefix, FilenameSuffix)
	}
	if filename == TemplateFilename {
		return nil, reject(TemplateNotRenamed, "you must rename the template file")
	}

	lines := strings.Split(content, "\n")

	if strings.TrimSpace(line(lines, 0)) != titleMarker {
		return nil, reject(MissingMarker, "first line must be %s", titleMarker)
	}

	nameLine := line(lines, 1)
	idLine := line(lines, 2)
	if !strings.HasPrefix(nameLine, nameLabel) || !strings.HasPrefix(idLine, idLabel) {
		return nil, reject(MissingIdentity, "name or ID is missing")
	}
	name := strings.TrimSpace(strings.TrimPrefix(nameLine, nameLabel))
	shieldID := strings.TrimSpace(strings.TrimPrefix(idLine, idLabel))

	// Line 4 is the separator; answers start on line 5. A line containing
	// the delimiter opens a new answer, anything else continues the open
	// one. Delimiter-free lines before the first answer are discarded.
	answers := make(map[string]string)
	var encountered []string
	var currentQ string
	for i := 4; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if q, rest, found := strings.Cut(l, "."); found {
			encountered = append(encountered, q)
			answers[q] = strings.TrimSpace(rest)
			currentQ = q
		} else if currentQ != "" {
			answers[currentQ] += "\n" + l
		}
	}

	// Order-sensitive by contract: missing, extra, duplicate, or
	// reordered question numbers are all rejected here.
	if strings.Join(encountered, ",") != strings.Join(ExpectedQuestions, ",") {
		return nil, reject(QuestionMismatch, "missing questions: expected %d numbered answers in order", len(ExpectedQuestions))
	}

	return &model.Submission{
		Name:         name,
		ShieldID:     shieldID,
		Answers:      answers,
		Filename:     filename,
		FileContents: content,
	}, nil
}

func line(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
