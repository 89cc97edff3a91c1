package qa

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Seeder mass-populates companies, projects, suites, cases and results for
// UI load testing. It refuses to touch a datastore that already holds
// projects.
type Seeder struct {
	db           *connector.Database
	projectCount func() (int64, error)
}

func NewSeeder(db *connector.Database) *Seeder {
	return &Seeder{db: db, projectCount: func() (int64, error) {
		return db.CountQuery(schema.Projects, nil, false)
	}}
}

// NewSeederWithCount injects the project-count lookup, used by tests.
func NewSeederWithCount(db *connector.Database, projectCount func() (int64, error)) *Seeder {
	return &Seeder{db: db, projectCount: projectCount}
}

// SeedCounts reports how many rows a run created.
type SeedCounts struct {
	Companies int64 `json:"companies"`
	Projects  int64 `json:"projects"`
	Suites    int64 `json:"test_suites"`
	Cases     int64 `json:"test_cases"`
	Results   int64 `json:"test_results"`
}

// Generate seeds companyCount companies with one project each and
// testsPerCompany cases spread over the template suites. Roughly 70% of the
// cases get an execution result, all grouped under one session id.
// The conflict guard runs before any insert: a populated datastore stays
// untouched.
func (s *Seeder) Generate(companyCount int64, testsPerCompany int64, creatorID int64) (SeedCounts, error) {
	counts := SeedCounts{}
	if companyCount <= 0 || testsPerCompany <= 0 {
		return counts, utils.ValidationError("company_count und tests_per_company müssen positiv sein")
	}
	if companyCount > 100 || testsPerCompany > 1000 {
		return counts, utils.ValidationError("Generierungsumfang zu groß")
	}
	existing, err := s.projectCount()
	if err != nil {
		return counts, err
	}
	if existing > 0 {
		return counts, utils.Conflict("Datenbank enthält bereits Projekte, Testdaten-Generierung abgelehnt")
	}
	sessionID := uuid.New().String()
	bar := progressbar.NewOptions64(
		companyCount,
		progressbar.OptionSetDescription("Generating test data"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(os.Stderr, "\n") }),
	)
	templateTypes := []string{"web_app_qa", "mobile_app_qa", "api_testing"}
	for c := int64(0); c < companyCount; c++ {
		companyID, err := s.db.InsertQuery(schema.Companies, map[string]interface{}{
			"name":        fmt.Sprintf("Testfirma %03d", c+1),
			"description": "generierte Testdaten",
			"created_by":  creatorID,
		})
		if err != nil {
			return counts, err
		}
		counts.Companies++
		templateType := templateTypes[c%int64(len(templateTypes))]
		project, err := NewProjectService(s.db).Create(utils.Record{
			"company_id":    companyID,
			"name":          fmt.Sprintf("Testprojekt %03d", c+1),
			"template_type": templateType,
		}, creatorID)
		if err != nil {
			return counts, err
		}
		counts.Projects++
		suites, err := NewSuiteService(s.db).ListByProject(utils.GetInt64(project, "id"))
		if err != nil {
			return counts, err
		}
		counts.Suites += int64(len(suites))
		if len(suites) == 0 {
			bar.Add(1)
			continue
		}
		for t := int64(0); t < testsPerCompany; t++ {
			suite := suites[t%int64(len(suites))]
			caseID, err := s.db.InsertQuery(schema.TestCases, map[string]interface{}{
				"suite_id":        utils.GetInt64(suite, "id"),
				"test_id":         fmt.Sprintf("TC-%03d-%04d", c+1, t+1),
				"name":            fmt.Sprintf("Generierter Testfall %d", t+1),
				"priority":        rand.Intn(5) + 1,
				"expected_result": "Erwartetes Verhalten laut Spezifikation",
				"is_predefined":   true,
				"created_by":      creatorID,
			})
			if err != nil {
				return counts, err
			}
			counts.Cases++
			if rand.Float64() < 0.7 {
				status := resultStatuses[rand.Intn(len(resultStatuses))]
				if _, err := s.db.InsertQuery(schema.TestResults, map[string]interface{}{
					"case_id":     caseID,
					"status":      status,
					"executed_by": creatorID,
					"executed_at": time.Now().Format(timeLayout),
					"session_id":  sessionID,
				}); err != nil {
					return counts, err
				}
				counts.Results++
			}
		}
		bar.Add(1)
	}
	return counts, nil
}
