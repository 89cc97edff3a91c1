package qa

import (
	"slices"
	"time"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusWarning = "warning"
	StatusSkipped = "skipped"
)

var resultStatuses = []string{StatusSuccess, StatusError, StatusWarning, StatusSkipped}

const timeLayout = "2006-01-02 15:04:05"

type ResultService struct {
	db *connector.Database
}

func NewResultService(db *connector.Database) *ResultService {
	return &ResultService{db: db}
}

func (s *ResultService) Create(record utils.Record, executorID int64) (utils.Record, error) {
	caseID := utils.GetInt64(record, "case_id")
	if caseID == 0 {
		return nil, utils.ValidationError("case_id fehlt")
	}
	if _, err := NewCaseService(s.db).Get(caseID); err != nil {
		return nil, utils.ValidationError("Testfall existiert nicht")
	}
	status := utils.GetString(record, "status")
	if !slices.Contains(resultStatuses, status) {
		return nil, utils.ValidationError("unbekannter Status: " + status)
	}
	executedAt := utils.GetString(record, "executed_at")
	if executedAt == "" {
		executedAt = time.Now().Format(timeLayout)
	} else if _, err := time.Parse(timeLayout, executedAt); err != nil {
		return nil, utils.ValidationError("executed_at muss dem Format " + timeLayout + " entsprechen")
	}
	fields := map[string]interface{}{
		"case_id":     caseID,
		"status":      status,
		"notes":       utils.GetString(record, "notes"),
		"executed_by": executorID,
		"executed_at": executedAt,
	}
	if sessionID := utils.GetString(record, "session_id"); sessionID != "" {
		fields["session_id"] = sessionID
	}
	id, err := s.db.InsertQuery(schema.TestResults, fields)
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ResultService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.TestResults, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Testergebnis nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *ResultService) ListByCase(caseID int64, sessionID string) (utils.Results, error) {
	restrictions := map[string]interface{}{"case_id": caseID}
	if sessionID != "" {
		restrictions["session_id"] = sessionID
	}
	rows, err := s.db.SelectOrderedQuery(schema.TestResults, restrictions, "executed_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

// LatestForCase applies the latest-wins rule, optionally scoped to one
// execution session.
func (s *ResultService) LatestForCase(caseID int64, sessionID string) (utils.Record, error) {
	results, err := s.ListByCase(caseID, sessionID)
	if err != nil {
		return nil, err
	}
	latest := LatestPerCase(results)
	if record, ok := latest[caseID]; ok {
		return record, nil
	}
	return nil, utils.NotFound("kein Testergebnis für diesen Testfall")
}

func (s *ResultService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.DeleteQuery(schema.TestResults, map[string]interface{}{"id": id}, false)
}

// LatestPerCase reduces results to one per case: maximum executed_at wins,
// equal timestamps fall back to the higher id. Timestamps use a fixed
// sortable layout, so string comparison orders correctly.
func LatestPerCase(results utils.Results) map[int64]utils.Record {
	latest := map[int64]utils.Record{}
	for _, result := range results {
		caseID := utils.GetInt64(result, "case_id")
		current, ok := latest[caseID]
		if !ok {
			latest[caseID] = result
			continue
		}
		executedAt := utils.GetString(result, "executed_at")
		currentAt := utils.GetString(current, "executed_at")
		if executedAt > currentAt ||
			(executedAt == currentAt && utils.GetInt64(result, "id") > utils.GetInt64(current, "id")) {
			latest[caseID] = result
		}
	}
	return latest
}
