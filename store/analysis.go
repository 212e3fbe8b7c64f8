package store

import (
	"context"

	"github.com/UmasivanKanthavel/shield-resume-server/model"
)

// Analyzer computes aggregate statistics over the submission store. Every
// call rescans the stored rows; nothing is maintained incrementally.
type Analyzer struct {
	subs *SubmissionStore
}

func NewAnalyzer(subs *SubmissionStore) *Analyzer {
	return &Analyzer{subs: subs}
}

func (a *Analyzer) Analyze(ctx context.Context) (*model.Analysis, error) {
	count, err := a.subs.Count(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := a.subs.ShieldIDs(ctx)
	if err != nil {
		return nil, err
	}

	blanks, err := a.subs.BlankAnswerCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Analysis{
		Count:          count,
		ShieldIDList:   ids,
		BlankQuestions: blanks,
	}, nil
}
