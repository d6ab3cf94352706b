package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("appointments").
		Where(squirrel.Eq{"appointment_date": "2025-10-15"}).
		Where(squirrel.Eq{"professional_name": "Ana"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM appointments WHERE appointment_date = $1 AND professional_name = $2", query)
	assert.Equal(t, []interface{}{"2025-10-15", "Ana"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("appointments").
		Set("status", "confirmed").
		Where(squirrel.Eq{"id": int64(5)}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE appointments SET status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"confirmed", int64(5)}, args)
}
