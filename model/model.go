package model

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Access       string `json:"access"`
	ShieldID     string `json:"ShieldID"`
	Name         string `json:"name"`
}

type Session struct {
	ID        string
	Username  string
	ExpiresAt time.Time
}

// Submission is one parsed resume file. Answers is keyed by question
// number; iteration order comes from validator.ExpectedQuestions.
type Submission struct {
	Name         string            `json:"name"`
	ShieldID     string            `json:"ShieldID"`
	Answers      map[string]string `json:"answers"`
	Filename     string            `json:"filename"`
	FileContents string            `json:"filecontents"`
}

// SubmissionEntry is a stored submission joined with the display name of
// the account holding the same ShieldID (empty when no account matches).
type SubmissionEntry struct {
	ID       int64
	ShieldID string
	Name     string
	Answers  map[string]string
}

type Analysis struct {
	Count          int      `json:"count"`
	ShieldIDList   []string `json:"ShieldIDList"`
	BlankQuestions []int    `json:"blankQuestions"`
}
