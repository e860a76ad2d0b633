package partner

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCachedQueries(t *testing.T, repo *MockPartnerRepository) *CachedQueries {
	t.Helper()
	queryCache := cache.NewInMemoryQueryCache()
	t.Cleanup(func() { _ = queryCache.Close() })
	return NewCachedQueries(NewPartnerService(repo), queryCache, WithQueryTTL(time.Minute))
}

func TestCachedQueries_ListServesFromCache(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	stored := newStoredIndividual(t)
	repo.On("FindAll", mock.Anything, partner.Filter{}).Return([]partner.Partner{*stored}, nil).Once()

	first, err := cached.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second identical read must not reach the repository
	second, err := cached.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestCachedQueries_ListKeyedByFilter(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	repo.On("FindAll", mock.Anything, partner.Filter{}).Return([]partner.Partner{}, nil).Once()
	repo.On("FindAll", mock.Anything, partner.Filter{Search: "acme"}).Return([]partner.Partner{}, nil).Once()

	_, err := cached.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	_, err = cached.List(context.Background(), ListFilter{Search: "acme"})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestCachedQueries_ConcurrentIdenticalListsShareOneFetch(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	stored := newStoredIndividual(t)
	repo.On("FindAll", mock.Anything, partner.Filter{}).
		Run(func(mock.Arguments) { time.Sleep(100 * time.Millisecond) }).
		Return([]partner.Partner{*stored}, nil)

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			partners, err := cached.List(context.Background(), ListFilter{})
			if err == nil && len(partners) != 1 {
				err = fmt.Errorf("expected 1 partner, got %d", len(partners))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	repo.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestCachedQueries_CountServesFromCache(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	repo.On("Count", mock.Anything, partner.Filter{}).Return(int64(5), nil).Once()

	count, err := cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	count, err = cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	repo.AssertNumberOfCalls(t, "Count", 1)
}

func TestCachedQueries_GetByIDRejectsNilID(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	resp, err := cached.GetByID(context.Background(), uuid.Nil)

	assert.Error(t, err)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "FindByID")
}

func TestCachedQueries_GetByIDServesFromCache(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	stored := newStoredIndividual(t)
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil).Once()

	first, err := cached.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)

	second, err := cached.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestCachedQueries_MutationInvalidatesCaches(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	stored := newStoredIndividual(t)
	repo.On("FindAll", mock.Anything, partner.Filter{}).Return([]partner.Partner{*stored}, nil).Twice()
	repo.On("Count", mock.Anything, partner.Filter{}).Return(int64(1), nil).Twice()
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	_, err := cached.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	_, err = cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)

	// Toggle invalidates both the list and count families
	_, err = cached.SetActive(context.Background(), stored.ID, false)
	require.NoError(t, err)

	_, err = cached.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	_, err = cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestCachedQueries_DeleteInvalidatesDetail(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	stored := newStoredIndividual(t)
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil).Once()
	repo.On("Delete", mock.Anything, stored.ID).Return(nil)

	_, err := cached.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)

	require.NoError(t, cached.Delete(context.Background(), stored.ID))

	// A fresh read goes back to the repository
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil).Once()
	_, err = cached.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestCachedQueries_FailedMutationKeepsCache(t *testing.T) {
	repo := new(MockPartnerRepository)
	cached := newCachedQueries(t, repo)

	repo.On("Count", mock.Anything, partner.Filter{}).Return(int64(3), nil).Once()
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, missing).Return(nil, assert.AnError)

	_, err := cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)

	_, err = cached.SetActive(context.Background(), missing, true)
	require.Error(t, err)

	// Cached count survives the failed mutation
	count, err := cached.Count(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	repo.AssertNumberOfCalls(t, "Count", 1)
}
