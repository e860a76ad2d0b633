package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates individual with defaults", func(t *testing.T) {
		p, err := New(TypeIndividual)
		require.NoError(t, err)

		assert.NotEqual(t, "", p.ID.String())
		assert.Equal(t, TypeIndividual, p.Type)
		assert.Equal(t, "fr", p.Language)
		assert.Equal(t, "Europe/Paris", p.Timezone)
		assert.True(t, p.Active)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("creates company", func(t *testing.T) {
		p, err := New(TypeCompany)
		require.NoError(t, err)
		assert.True(t, p.IsCompany())
		assert.False(t, p.IsIndividual())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		p, err := New(Type("association"))
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestDeriveDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		legalName string
		tradeName string
		want      string
	}{
		{"first and last name", "Jean", "Dupont", "", "", "Jean Dupont"},
		{"both names win over company names", "Jean", "Dupont", "Dupont SARL", "Chez Dupont", "Jean Dupont"},
		{"legal name when first name missing", "", "Dupont", "Dupont SARL", "Chez Dupont", "Dupont SARL"},
		{"legal name when last name missing", "Jean", "", "Dupont SARL", "", "Dupont SARL"},
		{"trade name as last resort", "", "", "", "Chez Dupont", "Chez Dupont"},
		{"empty when nothing set", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveDisplayName(tt.firstName, tt.lastName, tt.legalName, tt.tradeName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartner_SetPersonName(t *testing.T) {
	p, err := New(TypeIndividual)
	require.NoError(t, err)

	p.SetPersonName("Jean", "Dupont", "M")

	assert.Equal(t, "Jean Dupont", p.DisplayName)
	assert.Equal(t, "M", p.Gender)
}

func TestPartner_SetCompanyName(t *testing.T) {
	p, err := New(TypeCompany)
	require.NoError(t, err)

	p.SetCompanyName("Acme SAS", "Acme")
	assert.Equal(t, "Acme SAS", p.DisplayName)

	p.SetCompanyName("", "Acme")
	assert.Equal(t, "Acme", p.DisplayName)
}

func TestPartner_SetSIRET(t *testing.T) {
	p, err := New(TypeCompany)
	require.NoError(t, err)

	t.Run("accepts 14 characters", func(t *testing.T) {
		assert.NoError(t, p.SetSIRET("12345678901234"))
		assert.Equal(t, "12345678901234", p.SIRET)
	})

	t.Run("accepts empty", func(t *testing.T) {
		assert.NoError(t, p.SetSIRET(""))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.Error(t, p.SetSIRET("123"))
	})
}

func TestPartner_SetContact(t *testing.T) {
	p, err := New(TypeIndividual)
	require.NoError(t, err)

	t.Run("accepts valid email", func(t *testing.T) {
		assert.NoError(t, p.SetContact("jean.dupont@exemple.com", "0601020304"))
		assert.Equal(t, "jean.dupont@exemple.com", p.Email)
		assert.Equal(t, "0601020304", p.Phone)
	})

	t.Run("accepts empty email", func(t *testing.T) {
		assert.NoError(t, p.SetContact("", "0601020304"))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		assert.Error(t, p.SetContact("not-an-email", ""))
	})
}

func TestPartner_SetLocale(t *testing.T) {
	p, err := New(TypeIndividual)
	require.NoError(t, err)

	t.Run("empty values fall back to defaults", func(t *testing.T) {
		require.NoError(t, p.SetLocale("", ""))
		assert.Equal(t, DefaultLanguage, p.Language)
		assert.Equal(t, DefaultTimezone, p.Timezone)
	})

	t.Run("accepts 2-letter code", func(t *testing.T) {
		require.NoError(t, p.SetLocale("en", "Europe/London"))
		assert.Equal(t, "en", p.Language)
		assert.Equal(t, "Europe/London", p.Timezone)
	})

	t.Run("rejects long code", func(t *testing.T) {
		assert.Error(t, p.SetLocale("fra", ""))
	})
}

func TestPartner_SetCommercialTerms(t *testing.T) {
	p, err := New(TypeCompany)
	require.NoError(t, err)

	require.NoError(t, p.SetCommercialTerms("industrie", "30 jours", decimal.NewFromFloat(20)))
	assert.Equal(t, "industrie", p.IndustrySegment)
	assert.Equal(t, "30 jours", p.PaymentTerms)
	assert.True(t, p.VATRate.Equal(decimal.NewFromFloat(20)))

	assert.Error(t, p.SetCommercialTerms("", "", decimal.NewFromInt(-1)))
}

func TestPartner_SetActive(t *testing.T) {
	p, err := New(TypeIndividual)
	require.NoError(t, err)

	p.SetActive(false)
	assert.False(t, p.Active)

	p.SetActive(true)
	assert.True(t, p.Active)
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())

	active := true
	assert.False(t, Filter{Search: "dup"}.IsZero())
	assert.False(t, Filter{Status: &active}.IsZero())
	assert.False(t, Filter{Type: TypeCompany}.IsZero())
}
