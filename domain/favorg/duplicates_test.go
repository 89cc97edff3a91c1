package favorg

import (
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
)

func bookmark(id int64, url string, status string) utils.Record {
	return utils.Record{"id": id, "url": url, "status": status}
}

func TestPlanDuplicatesLowestIDSurvives(t *testing.T) {
	plan := PlanDuplicates(utils.Results{
		bookmark(3, "https://example.com/page", StatusActive),
		bookmark(1, "https://www.example.com/page/", StatusActive),
		bookmark(2, "HTTPS://EXAMPLE.COM/page", StatusUnchecked),
		bookmark(4, "https://other.org", StatusActive),
	})
	assert.Equal(t, 1, plan.GroupCount)
	assert.Equal(t, 2, plan.MarkedCount)
	assert.ElementsMatch(t, []int64{2, 3}, plan.MarkedIDs)
}

func TestPlanDuplicatesSkipsLocked(t *testing.T) {
	plan := PlanDuplicates(utils.Results{
		bookmark(1, "https://example.com", StatusActive),
		bookmark(2, "https://example.com", StatusLocked),
		bookmark(3, "https://example.com", StatusActive),
	})
	assert.Equal(t, 1, plan.GroupCount)
	assert.Equal(t, 1, plan.MarkedCount)
	assert.Equal(t, []int64{3}, plan.MarkedIDs)
}

func TestPlanDuplicatesNoGroups(t *testing.T) {
	plan := PlanDuplicates(utils.Results{
		bookmark(1, "https://a.example.com", StatusActive),
		bookmark(2, "https://b.example.com", StatusActive),
	})
	assert.Equal(t, 0, plan.GroupCount)
	assert.Equal(t, 0, plan.MarkedCount)
	assert.Empty(t, plan.MarkedIDs)
}

func TestPlanDuplicatesIdempotent(t *testing.T) {
	set := utils.Results{
		bookmark(1, "https://example.com", StatusActive),
		bookmark(2, "https://example.com/", StatusActive),
		bookmark(3, "http://example.com:80", StatusActive),
	}
	first := PlanDuplicates(set)
	second := PlanDuplicates(set)
	assert.Equal(t, first.GroupCount, second.GroupCount)
	assert.Equal(t, first.MarkedCount, second.MarkedCount)
	assert.ElementsMatch(t, first.MarkedIDs, second.MarkedIDs)
}
