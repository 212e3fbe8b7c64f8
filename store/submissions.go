package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/validator"
)

const submissionTable = "RESUME_APPLICATIONS"

// DefaultListLimit bounds ListAll results.
const DefaultListLimit = 50

// SubmissionStore persists parsed submissions keyed by ShieldID. Each
// question gets its own column; the column list is derived from the
// expected question numbers so the schema and the validator stay in step.
type SubmissionStore struct {
	db *sql.DB
}

func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func questionColumns(prefix string) string {
	cols := make([]string, len(validator.ExpectedQuestions))
	for i, q := range validator.ExpectedQuestions {
		cols[i] = prefix + "q" + q
	}
	return strings.Join(cols, ", ")
}

func placeholders(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

// Upsert inserts or fully replaces the submission stored for
// sub.ShieldID. There is no merge: the new row supersedes the old one.
func (s *SubmissionStore) Upsert(ctx context.Context, sub *model.Submission) error {
	args := make([]any, 0, len(validator.ExpectedQuestions)+3)
	args = append(args, sub.ShieldID)
	for _, q := range validator.ExpectedQuestions {
		args = append(args, sub.Answers[q])
	}
	args = append(args, sub.Filename, sub.FileContents)

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (ShieldID, %s, filename, filecontents)
		VALUES %s`,
		submissionTable, questionColumns(""), placeholders(len(args)),
	)
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// ListAll returns up to limit submissions ordered by ShieldID ascending,
// each joined with the display name of the account holding that ShieldID.
func (s *SubmissionStore) ListAll(ctx context.Context, limit int) ([]model.SubmissionEntry, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.ShieldID, IFNULL(a.name, ''), %s
		FROM %s s
		LEFT OUTER JOIN accounts a ON (s.ShieldID = a.ShieldID)
		ORDER BY s.ShieldID ASC
		LIMIT ?`,
		questionColumns("s."), submissionTable,
	)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.SubmissionEntry{}
	for rows.Next() {
		e := model.SubmissionEntry{}
		qvals := make([]sql.NullString, len(validator.ExpectedQuestions))
		dest := []any{&e.ID, &e.ShieldID, &e.Name}
		for i := range qvals {
			dest = append(dest, &qvals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		e.Answers = make(map[string]string, len(qvals))
		for i, q := range validator.ExpectedQuestions {
			e.Answers[q] = qvals[i].String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count reports how many submissions are stored.
func (s *SubmissionStore) Count(ctx context.Context) (n int, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+submissionTable).Scan(&n)
	return
}

// ShieldIDs returns the distinct ShieldIDs with a stored submission.
func (s *SubmissionStore) ShieldIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT ShieldID FROM `+submissionTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// BlankAnswerCounts scans every stored submission and counts, per expected
// question, how many answers are absent or whitespace-only.
func (s *SubmissionStore) BlankAnswerCounts(ctx context.Context) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, questionColumns(""), submissionTable)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blanks := make([]int, len(validator.ExpectedQuestions))
	for rows.Next() {
		qvals := make([]sql.NullString, len(blanks))
		dest := make([]any, len(blanks))
		for i := range qvals {
			dest[i] = &qvals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, v := range qvals {
			if !v.Valid || strings.TrimSpace(v.String) == "" {
				blanks[i]++
			}
		}
	}
	return blanks, rows.Err()
}
