package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPartnerRepository is a mock implementation of partner.Repository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter partner.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter partner.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newStoredIndividual(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.New(partner.TypeIndividual)
	require.NoError(t, err)
	p.SetPersonName("Marie", "Dupont", "femme")
	require.NoError(t, p.SetContact("marie@example.fr", "0601020304"))
	return p
}

func TestPartnerService_Create(t *testing.T) {
	t.Run("creates individual with derived display name", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Partner")).Return(nil)

		resp, err := service.Create(context.Background(), CreatePartnerRequest{
			Type:      "particulier",
			FirstName: "Marie",
			LastName:  "Dupont",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Marie Dupont", resp.DisplayName)
		assert.Equal(t, "fr", resp.Language)
		assert.Equal(t, "Europe/Paris", resp.Timezone)
		assert.True(t, resp.Active)
		repo.AssertExpectations(t)
	})

	t.Run("creates company with legal name as display name", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Partner")).Return(nil)

		vat := decimal.NewFromInt(20)
		resp, err := service.Create(context.Background(), CreatePartnerRequest{
			Type:            "entreprise",
			LegalName:       "Acme SARL",
			TradeName:       "Acme",
			SIRET:           "12345678901234",
			IndustrySegment: "BTP",
			VATRate:         &vat,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme SARL", resp.DisplayName)
		assert.Equal(t, "12345678901234", resp.SIRET)
		assert.True(t, vat.Equal(resp.VATRate))
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		resp, err := service.Create(context.Background(), CreatePartnerRequest{Type: "association"})

		assert.Error(t, err)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed SIRET", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		resp, err := service.Create(context.Background(), CreatePartnerRequest{
			Type:  "entreprise",
			SIRET: "123",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("honors explicit inactive flag", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Partner")).Return(nil)

		inactive := false
		resp, err := service.Create(context.Background(), CreatePartnerRequest{
			Type:      "particulier",
			FirstName: "Jean",
			LastName:  "Martin",
			Active:    &inactive,
		})

		assert.NoError(t, err)
		assert.False(t, resp.Active)
	})
}

func TestPartnerService_Update(t *testing.T) {
	t.Run("prefers request values over stored ones", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		stored := newStoredIndividual(t)
		repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
		repo.On("Save", mock.Anything, stored).Return(nil)

		newLast := "Durand"
		resp, err := service.Update(context.Background(), stored.ID, UpdatePartnerRequest{
			LastName: &newLast,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Marie", resp.FirstName)
		assert.Equal(t, "Durand", resp.LastName)
		assert.Equal(t, "Marie Durand", resp.DisplayName)
		repo.AssertExpectations(t)
	})

	t.Run("re-derives display name when switching to company", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		stored := newStoredIndividual(t)
		stored.SetPersonName("", "", "")
		repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
		repo.On("Save", mock.Anything, stored).Return(nil)

		newType := "entreprise"
		legalName := "Durand et Fils"
		resp, err := service.Update(context.Background(), stored.ID, UpdatePartnerRequest{
			Type:      &newType,
			LegalName: &legalName,
		})

		assert.NoError(t, err)
		assert.Equal(t, "entreprise", resp.Type)
		assert.Equal(t, "Durand et Fils", resp.DisplayName)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		resp, err := service.Update(context.Background(), id, UpdatePartnerRequest{})

		assert.Nil(t, resp)
		assert.Equal(t, shared.ErrNotFound, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("keeps stored creation time", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		stored := newStoredIndividual(t)
		createdAt := stored.CreatedAt
		repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
		repo.On("Save", mock.Anything, stored).Return(nil)

		phone := "0707080910"
		resp, err := service.Update(context.Background(), stored.ID, UpdatePartnerRequest{Phone: &phone})

		assert.NoError(t, err)
		assert.Equal(t, createdAt, resp.CreatedAt)
		assert.Equal(t, "0707080910", resp.Phone)
	})
}

func TestPartnerService_SetActive(t *testing.T) {
	repo := new(MockPartnerRepository)
	service := NewPartnerService(repo)

	stored := newStoredIndividual(t)
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	resp, err := service.SetActive(context.Background(), stored.ID, false)

	assert.NoError(t, err)
	assert.False(t, resp.Active)
	repo.AssertExpectations(t)
}

func TestPartnerService_List(t *testing.T) {
	t.Run("maps filter to domain predicates", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		active := true
		expected := partner.Filter{
			Search:  "acme",
			Type:    partner.TypeCompany,
			Status:  &active,
			Country: "France",
		}
		repo.On("FindAll", mock.Anything, expected).Return([]partner.Partner{}, nil)

		_, err := service.List(context.Background(), ListFilter{
			Search:  "acme",
			Type:    "entreprise",
			Status:  &active,
			Country: "France",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo)

		repoErr := errors.New("connection refused")
		repo.On("FindAll", mock.Anything, mock.Anything).Return([]partner.Partner(nil), repoErr)

		_, err := service.List(context.Background(), ListFilter{})

		assert.Equal(t, repoErr, err)
	})
}

func TestPartnerService_Count(t *testing.T) {
	repo := new(MockPartnerRepository)
	service := NewPartnerService(repo)

	repo.On("Count", mock.Anything, partner.Filter{}).Return(int64(12), nil)

	count, err := service.Count(context.Background(), ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestPartnerService_Delete(t *testing.T) {
	repo := new(MockPartnerRepository)
	service := NewPartnerService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	err := service.Delete(context.Background(), id)

	assert.Equal(t, shared.ErrNotFound, err)
}
