package job

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubTrending struct {
	refreshes int
	err       error
}

func (s *stubTrending) GetTrending(context.Context) ([]*dto.TrendingMovieDTO, error) {
	return nil, nil
}

func (s *stubTrending) RefreshTrending(context.Context) ([]*dto.TrendingMovieDTO, error) {
	s.refreshes++
	return []*dto.TrendingMovieDTO{}, s.err
}

func (s *stubTrending) GetTopRated(context.Context) ([]*model.MovieCard, error) {
	return nil, nil
}

func newTestJob(svc *stubTrending, acquired bool, lockErr error) (*TrendingJob, *int) {
	unlocks := 0
	j := NewTrendingJob(svc)
	j.tryLock = func(context.Context, string, interface{}, time.Duration, int) (bool, error) {
		return acquired, lockErr
	}
	j.unlock = func(context.Context, string, interface{}) { unlocks++ }
	return j, &unlocks
}

func TestTrendingJob(t *testing.T) {
	t.Run("refreshes under the lock", func(t *testing.T) {
		svc := &stubTrending{}
		j, unlocks := newTestJob(svc, true, nil)
		j.Run()
		assert.Equal(t, 1, svc.refreshes)
		assert.Equal(t, 1, *unlocks)
	})

	t.Run("skips when the lock is held", func(t *testing.T) {
		svc := &stubTrending{}
		j, unlocks := newTestJob(svc, false, nil)
		j.Run()
		assert.Zero(t, svc.refreshes)
		assert.Zero(t, *unlocks)
	})

	t.Run("lock error", func(t *testing.T) {
		svc := &stubTrending{}
		j, _ := newTestJob(svc, false, errors.New("redis down"))
		j.Run()
		assert.Zero(t, svc.refreshes)
	})

	t.Run("refresh error still unlocks", func(t *testing.T) {
		svc := &stubTrending{err: errors.New("mongo down")}
		j, unlocks := newTestJob(svc, true, nil)
		j.Run()
		assert.Equal(t, 1, svc.refreshes)
		assert.Equal(t, 1, *unlocks)
	})
}
