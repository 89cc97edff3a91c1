package qa

import (
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

type SuiteService struct {
	db *connector.Database
}

func NewSuiteService(db *connector.Database) *SuiteService {
	return &SuiteService{db: db}
}

func (s *SuiteService) Create(record utils.Record) (utils.Record, error) {
	name := strings.TrimSpace(utils.GetString(record, "name"))
	if name == "" {
		return nil, utils.ValidationError("Suite-Name fehlt")
	}
	projectID := utils.GetInt64(record, "project_id")
	if projectID == 0 {
		return nil, utils.ValidationError("project_id fehlt")
	}
	if _, err := NewProjectService(s.db).Get(projectID); err != nil {
		return nil, utils.ValidationError("Projekt existiert nicht")
	}
	id, err := s.db.InsertQuery(schema.TestSuites, map[string]interface{}{
		"project_id": projectID,
		"name":       name,
		"icon":       utils.GetString(record, "icon"),
		"sort_order": utils.GetInt64(record, "sort_order"),
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *SuiteService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.TestSuites, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Test-Suite nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *SuiteService) ListByProject(projectID int64) (utils.Results, error) {
	rows, err := s.db.SelectOrderedQuery(schema.TestSuites,
		map[string]interface{}{"project_id": projectID}, "sort_order, id")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

func (s *SuiteService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"name", "icon"} {
		if v, ok := record[key]; ok {
			fields[key] = utils.ToString(v)
		}
	}
	if v, ok := record["sort_order"]; ok {
		fields["sort_order"] = utils.ToInt64(v)
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.TestSuites, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete cascades the suite's cases, each case cascading its results.
func (s *SuiteService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	cases, err := s.db.SelectQuery(schema.TestCases, map[string]interface{}{"suite_id": id}, false)
	if err != nil {
		return err
	}
	caseService := NewCaseService(s.db)
	for _, testCase := range cases {
		if err := caseService.Delete(utils.ToInt64(testCase["id"])); err != nil {
			return err
		}
	}
	return s.db.DeleteQuery(schema.TestSuites, map[string]interface{}{"id": id}, false)
}
