package survey

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

type fakeSetupRepo struct {
	setup *entity.Setup
}

func (f *fakeSetupRepo) Get(context.Context) (*entity.Setup, error) {
	if f.setup == nil {
		return &entity.Setup{}, nil
	}
	return f.setup, nil
}

type fakeSurveyRepo struct {
	saved []*entity.SubmissionRecords
	err   error
	setup *fakeSetupRepo
}

func (f *fakeSurveyRepo) SaveSubmission(_ context.Context, records *entity.SubmissionRecords) error {
	if f.err != nil {
		return f.err
	}
	if f.setup != nil {
		if f.setup.setup != nil && f.setup.setup.Completed {
			return domainerror.ErrSetupAlreadyCompleted
		}
		f.setup.setup = records.Setup
	}
	f.saved = append(f.saved, records)
	return nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]entity.SurveySession
	saves    int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[uuid.UUID]entity.SurveySession{}}
}

func (f *fakeSessionStore) Save(_ context.Context, session *entity.SurveySession) error {
	f.saves++
	stored := *session
	stored.State.Answers = session.State.Answers.Clone()
	f.sessions[session.ID] = stored
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, id uuid.UUID) (*entity.SurveySession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, domainerror.ErrSessionNotFound
	}
	session.State.Answers = session.State.Answers.Clone()
	return &session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

var errBoom = errors.New("boom")
