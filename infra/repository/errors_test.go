package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"missing transaction", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"payment already claimed", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"deposit on unknown account", gorm.ErrForeignKeyViolated, domain.ErrValidation},
		{"negative amount rejected by check", gorm.ErrCheckConstraintViolated, domain.ErrValidation},
		{
			"wrapped by a repository",
			fmt.Errorf("update transaction: %w", gorm.ErrDuplicatedKey),
			domain.ErrAlreadyExists,
		},
		{
			"joined with context",
			errors.Join(errors.New("insert ipn_events"), gorm.ErrForeignKeyViolated),
			domain.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapGormErrorToDomain(tt.in)
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
			assert.NotErrorIs(t, got, tt.in, "gorm errors must not leak past the repository")
		})
	}
}

func TestMapGormErrorToDomain_KeepsConstraintMessage(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("idx_transactions_gateway_payment: %w", gorm.ErrDuplicatedKey)

	got := MapGormErrorToDomain(err)

	assert.ErrorIs(t, got, domain.ErrAlreadyExists)
	assert.Contains(t, got.Error(), "idx_transactions_gateway_payment")
}

func TestMapGormErrorToDomain_NotFoundIsBare(t *testing.T) {
	t.Parallel()
	got := MapGormErrorToDomain(fmt.Errorf("first: %w", gorm.ErrRecordNotFound))
	assert.Same(t, domain.ErrNotFound, got)
}

func TestMapGormErrorToDomain_PassesThrough(t *testing.T) {
	t.Parallel()
	require.NoError(t, MapGormErrorToDomain(nil))

	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	assert.Same(t, connErr, MapGormErrorToDomain(connErr))
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	require.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrDuplicatedKey }), domain.ErrAlreadyExists)
}
