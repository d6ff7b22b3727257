package iostore

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgStoreCloseReleasesSQLDB(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	st := &pgStore{sqlDB: db}
	require.NoError(t, st.Close())
	assert.Error(t, db.Ping(), "database/sql handle is closed")
	assert.Nil(t, st.sqlDB)

	// second Close is a no-op
	assert.NoError(t, st.Close())
}
