package qa

import (
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
)

func TestComputeEmpty(t *testing.T) {
	stats := Compute(0, utils.Results{})
	assert.EqualValues(t, 0, stats.TotalCases)
	assert.EqualValues(t, 0, stats.TestedCases)
	assert.EqualValues(t, 0, stats.PassRate)
	assert.EqualValues(t, 0, stats.ByStatus[StatusSuccess])
}

func TestComputeUntestedNeverNegative(t *testing.T) {
	// stale totals must not push untested below zero
	stats := Compute(1, utils.Results{
		result(1, 10, StatusSuccess, "2026-01-01 09:00:00"),
		result(2, 11, StatusSuccess, "2026-01-01 09:00:00"),
	})
	assert.EqualValues(t, 0, stats.UntestedCases)
}

func TestComputePassRate(t *testing.T) {
	stats := Compute(4, utils.Results{
		result(1, 10, StatusSuccess, "2026-01-01 09:00:00"),
		result(2, 11, StatusError, "2026-01-01 09:00:00"),
		result(3, 12, StatusSuccess, "2026-01-01 09:00:00"),
	})
	assert.EqualValues(t, 4, stats.TotalCases)
	assert.EqualValues(t, 3, stats.TestedCases)
	assert.EqualValues(t, 1, stats.UntestedCases)
	assert.InDelta(t, 66.67, stats.PassRate, 0.01)
	assert.EqualValues(t, 2, stats.ByStatus[StatusSuccess])
	assert.EqualValues(t, 1, stats.ByStatus[StatusError])
}

func TestComputeLatestResultDecides(t *testing.T) {
	// an earlier failure is superseded by the later success
	stats := Compute(1, utils.Results{
		result(1, 10, StatusError, "2026-01-01 09:00:00"),
		result(2, 10, StatusSuccess, "2026-01-02 09:00:00"),
	})
	assert.EqualValues(t, 1, stats.TestedCases)
	assert.EqualValues(t, 100, stats.PassRate)
	assert.EqualValues(t, 0, stats.ByStatus[StatusError])
}
