package property

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realstat/realstat/internal/db"
)

func TestCreateDefaultsYearBuilt(t *testing.T) {
	svc := testService(t)

	p, err := svc.Create(Input{
		Title:    strPtr("No Year Given"),
		Price:    strPtr("$500,000"),
		Location: strPtr("Austin, TX"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(time.Now().Year()), p.YearBuilt)
}

func TestCreateKeepsProvidedYearBuilt(t *testing.T) {
	svc := testService(t)

	p, err := svc.Create(Input{
		Title:     strPtr("Old House"),
		Price:     strPtr("$200,000"),
		Location:  strPtr("Savannah, GA"),
		YearBuilt: intPtr(1912),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1912), p.YearBuilt)
}

func TestListOrEmptyDegradesOnStoreFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	require.NoError(t, err)
	svc := NewService(NewRepository(d))

	// Break the store; the public listing must degrade to empty, not fail.
	require.NoError(t, d.Close())

	assert.Empty(t, svc.ListOrEmpty(""))
	assert.Empty(t, svc.ListOrEmpty("villa"))
}

func TestListEmptyTermEqualsNoTerm(t *testing.T) {
	svc := testService(t)

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.Create(Input{
			Title:    strPtr(title),
			Price:    strPtr("$1"),
			Location: strPtr("X"),
		})
		require.NoError(t, err)
	}

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)

	trimmed := svc.ListOrEmpty("")
	require.Len(t, trimmed, 3)
	for i := range all {
		assert.Equal(t, all[i].ID, trimmed[i].ID)
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, d.Close())
	})
	return NewService(NewRepository(d))
}
