package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

type MockSelectionRepo struct {
	mock.Mock
}

func (m *MockSelectionRepo) Load(ctx context.Context) ([]domain.Habit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Habit), args.Error(1)
}

func (m *MockSelectionRepo) Save(ctx context.Context, habits []domain.Habit) error {
	args := m.Called(ctx, habits)
	return args.Error(0)
}

type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) Load(ctx context.Context) (domain.ProgressLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ProgressLog), args.Error(1)
}

func (m *MockProgressRepo) Save(ctx context.Context, log domain.ProgressLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// fakeProgressRepo keeps the last saved log and can be told to fail.
type fakeProgressRepo struct {
	mu      sync.Mutex
	saved   domain.ProgressLog
	saves   int
	failErr error
}

func (f *fakeProgressRepo) Load(ctx context.Context) (domain.ProgressLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		return domain.ProgressLog{}, nil
	}
	return f.saved.Clone(), nil
}

func (f *fakeProgressRepo) Save(ctx context.Context, log domain.ProgressLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.saved = log.Clone()
	f.saves++
	return nil
}

type enqueued struct {
	HabitID string
	Dates   []string
	Today   string
}

type recordingQueue struct {
	mu   sync.Mutex
	jobs []enqueued
}

func (q *recordingQueue) Enqueue(habitID string, dates []string, today string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, enqueued{HabitID: habitID, Dates: dates, Today: today})
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
