package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	partnerID := uuid.New()

	t.Run("creates draft order", func(t *testing.T) {
		o, err := New("CF-2026-001", partnerID, decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.Equal(t, OrderStatusDraft, o.Status)
		assert.False(t, o.OrderedAt.IsZero())
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := New("", partnerID, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects nil partner", func(t *testing.T) {
		_, err := New("CF-2026-002", uuid.Nil, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := New("CF-2026-003", partnerID, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestSupplierOrder_Lifecycle(t *testing.T) {
	newOrder := func(t *testing.T) *SupplierOrder {
		o, err := New("CF-2026-010", uuid.New(), decimal.NewFromInt(100))
		require.NoError(t, err)
		return o
	}

	t.Run("draft to confirmed to received", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Confirm())
		assert.Equal(t, OrderStatusConfirmed, o.Status)
		require.NoError(t, o.Receive())
		assert.Equal(t, OrderStatusReceived, o.Status)
	})

	t.Run("cannot receive a draft", func(t *testing.T) {
		o := newOrder(t)
		assert.Error(t, o.Receive())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Confirm())
		assert.Error(t, o.Confirm())
	})

	t.Run("cancel draft or confirmed only", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Error(t, o.Cancel())

		o2 := newOrder(t)
		require.NoError(t, o2.Confirm())
		require.NoError(t, o2.Receive())
		assert.Error(t, o2.Cancel())
	})

	t.Run("amount editable only while draft", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetTotalAmount(decimal.NewFromInt(200)))
		require.NoError(t, o.Confirm())
		assert.Error(t, o.SetTotalAmount(decimal.NewFromInt(300)))
	})
}
