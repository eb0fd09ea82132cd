package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/internal/domain/mocks"
)

func setupProvisionerTest(t *testing.T) (*mocks.MockSearchEngine, *IndexProvisioner) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockSearchEngine(ctrl)
	return engine, NewIndexProvisioner(engine, newMockLogger(ctrl))
}

func TestIndexProvisioner_AddTable(t *testing.T) {
	ctx := context.Background()
	table := &domain.Table{Name: "orders", Fields: []domain.TableField{{Name: "amount", Type: domain.FieldTypeFloat}}}

	t.Run("creates the family with mappings", func(t *testing.T) {
		engine, p := setupProvisionerTest(t)
		gomock.InOrder(
			engine.EXPECT().CreateIndex(gomock.Any(), "orders", table.Mapping()).Return(nil),
			engine.EXPECT().CreateIndex(gomock.Any(), "orders.", table.Mapping()).Return(nil),
			engine.EXPECT().CreateIndex(gomock.Any(), "orders..", table.Mapping()).Return(nil),
		)

		require.NoError(t, p.AddTable(ctx, table, true))
	})

	t.Run("no-op without createIndex", func(t *testing.T) {
		_, p := setupProvisionerTest(t)
		assert.NoError(t, p.AddTable(ctx, table, false))
	})

	t.Run("failure removes created indices", func(t *testing.T) {
		engine, p := setupProvisionerTest(t)
		engine.EXPECT().CreateIndex(gomock.Any(), "orders", gomock.Any()).Return(nil)
		engine.EXPECT().CreateIndex(gomock.Any(), "orders.", gomock.Any()).Return(errors.New("cluster blocked"))
		engine.EXPECT().DeleteIndex(gomock.Any(), "orders").Return(nil)

		err := p.AddTable(ctx, table, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create index orders.")
	})
}

func TestIndexProvisioner_DeleteTable(t *testing.T) {
	ctx := context.Background()
	table := &domain.Table{Name: "orders"}

	t.Run("missing indices count as deleted", func(t *testing.T) {
		engine, p := setupProvisionerTest(t)
		engine.EXPECT().DeleteIndex(gomock.Any(), "orders").Return(nil)
		engine.EXPECT().DeleteIndex(gomock.Any(), "orders.").Return(fmt.Errorf("delete orders.: %w", domain.ErrIndexNotFound))
		engine.EXPECT().DeleteIndex(gomock.Any(), "orders..").Return(domain.ErrIndexNotFound)

		assert.NoError(t, p.DeleteTable(ctx, table))
	})

	t.Run("other errors stop", func(t *testing.T) {
		engine, p := setupProvisionerTest(t)
		engine.EXPECT().DeleteIndex(gomock.Any(), "orders").Return(errors.New("timeout"))

		assert.Error(t, p.DeleteTable(ctx, table))
	})
}

func TestIndexProvisioner_IsDataRaise(t *testing.T) {
	ctx := context.Background()
	family := []string{"orders", "orders.", "orders.."}

	engine, p := setupProvisionerTest(t)
	engine.EXPECT().Count(gomock.Any(), family).Return(int64(0), nil)
	assert.NoError(t, p.IsDataRaise(ctx, "orders"))

	engine.EXPECT().Count(gomock.Any(), family).Return(int64(3), nil)
	assert.Equal(t, domain.ErrTableInUse, p.IsDataRaise(ctx, "orders"))

	engine.EXPECT().Count(gomock.Any(), family).Return(int64(0), errors.New("unreachable"))
	err := p.IsDataRaise(ctx, "orders")
	require.Error(t, err)
	assert.NotEqual(t, domain.ErrTableInUse, err)
}
