package qa

import (
	"net/http"
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
)

// A populated datastore refuses generation with Conflict before any insert;
// the nil connection would panic on the first write, so finishing cleanly
// proves nothing was written.
func TestSeederRefusesPopulatedDatastore(t *testing.T) {
	seeder := NewSeederWithCount(nil, func() (int64, error) { return 3, nil })
	counts, err := seeder.Generate(2, 5, 1)
	assert.Equal(t, http.StatusConflict, utils.HTTPStatus(err))
	assert.Equal(t, SeedCounts{}, counts)
}

func TestSeederValidatesBeforeCountLookup(t *testing.T) {
	called := false
	seeder := NewSeederWithCount(nil, func() (int64, error) {
		called = true
		return 0, nil
	})
	// invalid bounds still fail before the guard runs
	_, err := seeder.Generate(0, 5, 1)
	assert.Equal(t, http.StatusUnprocessableEntity, utils.HTTPStatus(err))
	assert.False(t, called)
}

// The guards run before any datastore access, so a nil connection is fine.
func TestSeederRejectsInvalidCounts(t *testing.T) {
	seeder := NewSeeder(nil)
	for _, counts := range [][2]int64{{0, 10}, {10, 0}, {-1, 10}, {101, 10}, {10, 1001}} {
		_, err := seeder.Generate(counts[0], counts[1], 1)
		assert.Equal(t, http.StatusUnprocessableEntity, utils.HTTPStatus(err),
			"company_count=%d tests_per_company=%d", counts[0], counts[1])
	}
}
