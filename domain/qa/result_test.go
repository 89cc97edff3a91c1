package qa

import (
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(id int64, caseID int64, status string, executedAt string) utils.Record {
	return utils.Record{"id": id, "case_id": caseID, "status": status, "executed_at": executedAt}
}

func TestLatestPerCaseLatestWins(t *testing.T) {
	latest := LatestPerCase(utils.Results{
		result(1, 10, StatusError, "2026-01-01 09:00:00"),
		result(2, 10, StatusSuccess, "2026-01-02 09:00:00"),
		result(3, 11, StatusWarning, "2026-01-01 12:00:00"),
	})
	require.Len(t, latest, 2)
	assert.Equal(t, StatusSuccess, utils.GetString(latest[10], "status"))
	assert.Equal(t, StatusWarning, utils.GetString(latest[11], "status"))
}

func TestLatestPerCaseTieBreaksOnHigherID(t *testing.T) {
	latest := LatestPerCase(utils.Results{
		result(5, 10, StatusSuccess, "2026-01-01 09:00:00"),
		result(4, 10, StatusError, "2026-01-01 09:00:00"),
	})
	require.Len(t, latest, 1)
	assert.EqualValues(t, 5, utils.GetInt64(latest[10], "id"))
}

func TestLatestPerCaseOrderIndependent(t *testing.T) {
	a := result(1, 10, StatusError, "2026-01-01 09:00:00")
	b := result(2, 10, StatusSuccess, "2026-01-03 09:00:00")
	c := result(3, 10, StatusWarning, "2026-01-02 09:00:00")
	forward := LatestPerCase(utils.Results{a, b, c})
	backward := LatestPerCase(utils.Results{c, b, a})
	assert.EqualValues(t, 2, utils.GetInt64(forward[10], "id"))
	assert.EqualValues(t, 2, utils.GetInt64(backward[10], "id"))
}

func TestLatestPerCaseEmpty(t *testing.T) {
	assert.Empty(t, LatestPerCase(utils.Results{}))
}
