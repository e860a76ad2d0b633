package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPartnerRepository creates a GormPartnerRepository with a mocked SQL connection
func newMockPartnerRepository(t *testing.T) (*GormPartnerRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPartnerRepository(gormDB), mock, mockDB
}

func TestGormPartnerRepository_FindByID(t *testing.T) {
	t.Run("finds existing partner", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		partnerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "type_partenaire", "prenom", "nom", "nom_complet", "langue", "timezone", "is_active"}).
			AddRow(partnerID, "particulier", "Marie", "Dupont", "Marie Dupont", "fr", "Europe/Paris", true)

		mock.ExpectQuery(`SELECT \* FROM "partenaires" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(partnerID, 1).
			WillReturnRows(rows)

		p, err := repo.FindByID(context.Background(), partnerID)

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, partnerID, p.ID)
		assert.Equal(t, partner.TypeIndividual, p.Type)
		assert.Equal(t, "Marie Dupont", p.DisplayName)
		assert.True(t, p.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent partner", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		partnerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "partenaires" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(partnerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		p, err := repo.FindByID(context.Background(), partnerID)

		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPartnerRepository_FindAll(t *testing.T) {
	t.Run("returns partners newest first without predicates", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "type_partenaire", "nom_complet", "is_active"}).
			AddRow(uuid.New(), "entreprise", "Acme SARL", true).
			AddRow(uuid.New(), "particulier", "Marie Dupont", true)

		mock.ExpectQuery(`SELECT \* FROM "partenaires" ORDER BY created_at DESC`).
			WillReturnRows(rows)

		partners, err := repo.FindAll(context.Background(), partner.Filter{})

		assert.NoError(t, err)
		assert.Len(t, partners, 2)
		assert.Equal(t, "Acme SARL", partners[0].DisplayName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies search and type predicates", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "type_partenaire", "nom_complet", "is_active"}).
			AddRow(uuid.New(), "entreprise", "Acme SARL", true)

		mock.ExpectQuery(`SELECT \* FROM "partenaires" WHERE nom_complet ILIKE \$1 AND type_partenaire = \$2 ORDER BY created_at DESC`).
			WithArgs("%acme%", "entreprise").
			WillReturnRows(rows)

		partners, err := repo.FindAll(context.Background(), partner.Filter{
			Search: "acme",
			Type:   partner.TypeCompany,
		})

		assert.NoError(t, err)
		assert.Len(t, partners, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies status predicate", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		active := false
		rows := sqlmock.NewRows([]string{"id", "type_partenaire", "nom_complet", "is_active"}).
			AddRow(uuid.New(), "particulier", "Jean Martin", false)

		mock.ExpectQuery(`SELECT \* FROM "partenaires" WHERE is_active = \$1 ORDER BY created_at DESC`).
			WithArgs(false).
			WillReturnRows(rows)

		partners, err := repo.FindAll(context.Background(), partner.Filter{Status: &active})

		assert.NoError(t, err)
		assert.Len(t, partners, 1)
		assert.False(t, partners[0].Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPartnerRepository_Count(t *testing.T) {
	t.Run("counts without predicates", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "partenaires"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.Count(context.Background(), partner.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts with predicates and no ordering", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "partenaires" WHERE segment_industrie = \$1 AND pays = \$2`).
			WithArgs("BTP", "France").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.Count(context.Background(), partner.Filter{
			IndustrySegment: "BTP",
			Country:         "France",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPartnerRepository_Delete(t *testing.T) {
	t.Run("deletes existing partner", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		partnerID := uuid.New()

		mock.ExpectExec(`DELETE FROM "partenaires" WHERE id = \$1`).
			WithArgs(partnerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), partnerID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockPartnerRepository(t)
		defer mockDB.Close()

		partnerID := uuid.New()

		mock.ExpectExec(`DELETE FROM "partenaires" WHERE id = \$1`).
			WithArgs(partnerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), partnerID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
