package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Skill and preference columns are text[] scanned straight into []string
// fields. pgx requests binary-format results for array columns, so the scan
// destination must decode both wire formats.
func TestTextArrayScanBothFormats(t *testing.T) {
	m := pgtype.NewMap()
	value := []string{"go", "postgresql", "ci/cd"}

	for _, format := range []int16{pgtype.BinaryFormatCode, pgtype.TextFormatCode} {
		buf, err := m.Encode(pgtype.TextArrayOID, format, value, nil)
		require.NoError(t, err)

		var out []string
		require.NoError(t, m.Scan(pgtype.TextArrayOID, format, buf, &out))
		assert.Equal(t, value, out)
	}
}

func TestTextArrayScanNullColumn(t *testing.T) {
	var out []string
	require.NoError(t, pgtype.NewMap().Scan(pgtype.TextArrayOID, pgtype.BinaryFormatCode, nil, &out))
	assert.Nil(t, out)
}
