package qa

import (
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

type CaseService struct {
	db *connector.Database
}

func NewCaseService(db *connector.Database) *CaseService {
	return &CaseService{db: db}
}

func (s *CaseService) Create(record utils.Record, creatorID int64) (utils.Record, error) {
	name := strings.TrimSpace(utils.GetString(record, "name"))
	if name == "" {
		return nil, utils.ValidationError("Testfall-Name fehlt")
	}
	suiteID := utils.GetInt64(record, "suite_id")
	if suiteID == 0 {
		return nil, utils.ValidationError("suite_id fehlt")
	}
	if _, err := NewSuiteService(s.db).Get(suiteID); err != nil {
		return nil, utils.ValidationError("Test-Suite existiert nicht")
	}
	priority := utils.GetInt64(record, "priority")
	if priority == 0 {
		priority = 3
	}
	if priority < 1 || priority > 5 {
		return nil, utils.ValidationError("Priorität muss zwischen 1 und 5 liegen")
	}
	id, err := s.db.InsertQuery(schema.TestCases, map[string]interface{}{
		"suite_id":        suiteID,
		"test_id":         utils.GetString(record, "test_id"),
		"name":            name,
		"description":     utils.GetString(record, "description"),
		"priority":        priority,
		"expected_result": utils.GetString(record, "expected_result"),
		"is_predefined":   utils.GetBool(record, "is_predefined"),
		"created_by":      creatorID,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *CaseService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.TestCases, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Testfall nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *CaseService) ListBySuite(suiteID int64) (utils.Results, error) {
	rows, err := s.db.SelectOrderedQuery(schema.TestCases,
		map[string]interface{}{"suite_id": suiteID}, "id")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

func (s *CaseService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"test_id", "name", "description", "expected_result"} {
		if v, ok := record[key]; ok {
			fields[key] = utils.ToString(v)
		}
	}
	if v, ok := record["priority"]; ok {
		priority := utils.ToInt64(v)
		if priority < 1 || priority > 5 {
			return nil, utils.ValidationError("Priorität muss zwischen 1 und 5 liegen")
		}
		fields["priority"] = priority
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.TestCases, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes the case and all of its results.
func (s *CaseService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.db.DeleteQuery(schema.TestResults, map[string]interface{}{"case_id": id}, false); err != nil {
		return err
	}
	return s.db.DeleteQuery(schema.TestCases, map[string]interface{}{"id": id}, false)
}

// ProjectID walks case -> suite -> project for policy checks.
func (s *CaseService) ProjectID(caseRecord utils.Record) int64 {
	suite, err := NewSuiteService(s.db).Get(utils.GetInt64(caseRecord, "suite_id"))
	if err != nil {
		return 0
	}
	return utils.GetInt64(suite, "project_id")
}
