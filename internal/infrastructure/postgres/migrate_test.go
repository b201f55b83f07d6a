package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embebidas(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_init.sql", names[0])

	script, err := migrationsFS.ReadFile(names[0])
	require.NoError(t, err)
	sql := string(script)
	for _, table := range []string{"clients", "software_products", "discounts", "contracts", "contract_payments", "users", "refresh_tokens"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
	// El repositorio de contratos distingue el duplicado activo por este nombre.
	assert.True(t, strings.Contains(sql, uxContractsActive))
	assert.Contains(t, sql, "WHERE is_active")

	require.Len(t, names, 2)
	index, err := migrationsFS.ReadFile(names[1])
	require.NoError(t, err)
	assert.Contains(t, string(index), "ix_contracts_product ON contracts (product_id)")
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: uxContractsActive}
	wrapped := fmt.Errorf("insert contract: %w", pgErr)

	assert.True(t, isUniqueViolation(wrapped))
	assert.Equal(t, uxContractsActive, constraintName(wrapped))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "contracts_client_id_fkey"}
	assert.False(t, isUniqueViolation(fk))
	assert.Equal(t, "", constraintName(errors.New("otro error")))
}
