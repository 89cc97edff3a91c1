package favorg

import (
	"sort"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// DuplicatePlan is the outcome of one grouping pass.
type DuplicatePlan struct {
	GroupCount  int     `json:"group_count"`
	MarkedCount int     `json:"marked_count"`
	MarkedIDs   []int64 `json:"-"`
}

// PlanDuplicates groups bookmarks by normalized URL. In each group of more
// than one the lowest id survives; every other member is marked, except
// locked ones, which are never touched. The pass is a pure function of the
// bookmark set, so repeating it without writes yields the same plan.
func PlanDuplicates(bookmarks utils.Results) DuplicatePlan {
	groups := map[string][]utils.Record{}
	for _, bookmark := range bookmarks {
		key := NormalizeURL(utils.GetString(bookmark, "url"))
		groups[key] = append(groups[key], bookmark)
	}
	plan := DuplicatePlan{MarkedIDs: []int64{}}
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		plan.GroupCount++
		sort.Slice(group, func(i, j int) bool {
			return utils.GetInt64(group[i], "id") < utils.GetInt64(group[j], "id")
		})
		for _, member := range group[1:] {
			if utils.GetString(member, "status") == StatusLocked {
				continue
			}
			plan.MarkedCount++
			plan.MarkedIDs = append(plan.MarkedIDs, utils.GetInt64(member, "id"))
		}
	}
	return plan
}

type DuplicateService struct {
	db *connector.Database
}

func NewDuplicateService(db *connector.Database) *DuplicateService {
	return &DuplicateService{db: db}
}

// FindDuplicates marks redundant copies. Idempotent: a second call without
// intervening writes reports the same counts.
func (s *DuplicateService) FindDuplicates() (DuplicatePlan, error) {
	rows, err := s.db.SelectQuery(schema.Bookmarks, nil, false)
	if err != nil {
		return DuplicatePlan{}, err
	}
	plan := PlanDuplicates(utils.ToResult(rows))
	for _, id := range plan.MarkedIDs {
		if err := s.db.UpdateQuery(schema.Bookmarks,
			map[string]interface{}{"status": StatusDuplicate},
			map[string]interface{}{"id": id}, false); err != nil {
			return plan, err
		}
	}
	return plan, nil
}

// RemoveDuplicates deletes every bookmark currently marked duplicate and
// returns the removed count. Locked bookmarks are structurally safe: the
// single status column makes locked-and-duplicate unrepresentable, and the
// marking pass never touches locked rows.
func (s *DuplicateService) RemoveDuplicates() (int64, error) {
	count, err := s.db.CountQuery(schema.Bookmarks, map[string]interface{}{"status": StatusDuplicate}, false)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	err = s.db.DeleteQuery(schema.Bookmarks, map[string]interface{}{"status": StatusDuplicate}, false)
	return count, err
}
