package qa

import (
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Statistics summarizes the latest state of a project's test cases.
type Statistics struct {
	TotalCases    int64            `json:"total_cases"`
	TestedCases   int64            `json:"tested_cases"`
	UntestedCases int64            `json:"untested_cases"`
	ByStatus      map[string]int64 `json:"by_status"`
	PassRate      float64          `json:"pass_rate"`
}

// Compute buckets the latest result per case and derives the pass rate.
// pass_rate is 0 when nothing was tested, never NaN, always within [0,100].
func Compute(totalCases int64, results utils.Results) Statistics {
	stats := Statistics{
		TotalCases: totalCases,
		ByStatus:   map[string]int64{},
	}
	for _, status := range resultStatuses {
		stats.ByStatus[status] = 0
	}
	latest := LatestPerCase(results)
	for _, result := range latest {
		stats.ByStatus[utils.GetString(result, "status")]++
	}
	stats.TestedCases = int64(len(latest))
	stats.UntestedCases = totalCases - stats.TestedCases
	if stats.UntestedCases < 0 {
		stats.UntestedCases = 0
	}
	if stats.TestedCases > 0 {
		stats.PassRate = float64(stats.ByStatus[StatusSuccess]) / float64(stats.TestedCases) * 100
	}
	return stats
}

type StatsService struct {
	db *connector.Database
}

func NewStatsService(db *connector.Database) *StatsService {
	return &StatsService{db: db}
}

// ForProject gathers every case of the project's suites, their results
// (optionally one session only) and reduces them.
func (s *StatsService) ForProject(projectID int64, sessionID string) (Statistics, error) {
	if _, err := NewProjectService(s.db).Get(projectID); err != nil {
		return Statistics{}, err
	}
	suites, err := s.db.SelectQuery(schema.TestSuites, map[string]interface{}{"project_id": projectID}, false)
	if err != nil {
		return Statistics{}, err
	}
	totalCases := int64(0)
	allResults := utils.Results{}
	resultService := NewResultService(s.db)
	for _, suite := range suites {
		cases, err := s.db.SelectQuery(schema.TestCases, map[string]interface{}{"suite_id": suite["id"]}, false)
		if err != nil {
			return Statistics{}, err
		}
		totalCases += int64(len(cases))
		for _, testCase := range cases {
			results, err := resultService.ListByCase(utils.ToInt64(testCase["id"]), sessionID)
			if err != nil {
				return Statistics{}, err
			}
			allResults = append(allResults, results...)
		}
	}
	return Compute(totalCases, allResults), nil
}
