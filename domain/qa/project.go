package qa

import (
	"slices"
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

var projectStatuses = []string{"active", "archived", "draft"}

type ProjectService struct {
	db *connector.Database
}

func NewProjectService(db *connector.Database) *ProjectService {
	return &ProjectService{db: db}
}

// Create inserts the project and fans out the default suites of its
// template type.
func (s *ProjectService) Create(record utils.Record, creatorID int64) (utils.Record, error) {
	name := strings.TrimSpace(utils.GetString(record, "name"))
	if name == "" {
		return nil, utils.ValidationError("Projektname fehlt")
	}
	companyID := utils.GetInt64(record, "company_id")
	if companyID == 0 {
		return nil, utils.ValidationError("company_id fehlt")
	}
	if _, err := NewCompanyService(s.db).Get(companyID); err != nil {
		return nil, utils.ValidationError("Firma existiert nicht")
	}
	templateType := utils.GetString(record, "template_type")
	if templateType == "" {
		templateType = "custom"
	}
	templates, ok := schema.TemplateSuites(templateType)
	if !ok {
		return nil, utils.ValidationError("unbekannter template_type: " + templateType)
	}
	status := utils.GetString(record, "status")
	if status == "" {
		status = "active"
	}
	if !slices.Contains(projectStatuses, status) {
		return nil, utils.ValidationError("unbekannter Status: " + status)
	}
	id, err := s.db.InsertQuery(schema.Projects, map[string]interface{}{
		"company_id":    companyID,
		"name":          name,
		"description":   utils.GetString(record, "description"),
		"template_type": templateType,
		"status":        status,
		"created_by":    creatorID,
	})
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if _, err := s.db.InsertQuery(schema.TestSuites, map[string]interface{}{
			"project_id": id,
			"name":       tpl.Name,
			"icon":       tpl.Icon,
			"sort_order": tpl.SortOrder,
		}); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *ProjectService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.Projects, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Projekt nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *ProjectService) List(filter utils.Record) (utils.Results, error) {
	restrictions := map[string]interface{}{}
	if companyID := utils.GetInt64(filter, "company_id"); companyID != 0 {
		restrictions["company_id"] = companyID
	}
	if status := utils.GetString(filter, "status"); status != "" {
		restrictions["status"] = status
	}
	rows, err := s.db.SelectOrderedQuery(schema.Projects, restrictions, "name")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

func (s *ProjectService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"name", "description"} {
		if v, ok := record[key]; ok {
			fields[key] = utils.ToString(v)
		}
	}
	if v, ok := record["status"]; ok {
		status := utils.ToString(v)
		if !slices.Contains(projectStatuses, status) {
			return nil, utils.ValidationError("unbekannter Status: " + status)
		}
		fields["status"] = status
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.Projects, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete cascades suites, cases and results, archiving the project first.
func (s *ProjectService) Delete(id int64) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}
	suites, err := s.db.SelectQuery(schema.TestSuites, map[string]interface{}{"project_id": id}, false)
	if err != nil {
		return err
	}
	suiteService := NewSuiteService(s.db)
	for _, suite := range suites {
		if err := suiteService.Delete(utils.ToInt64(suite["id"])); err != nil {
			return err
		}
	}
	if err := s.db.DeleteQuery(schema.ProjectMembers, map[string]interface{}{"project_id": id}, false); err != nil {
		return err
	}
	schema.WriteArchive(s.db, schema.Projects, project)
	return s.db.DeleteQuery(schema.Projects, map[string]interface{}{"id": id}, false)
}

// AddMember records an explicit per-project grant.
func (s *ProjectService) AddMember(projectID int64, userID int64, grant string) error {
	if !slices.Contains([]string{"owner", "editor", "viewer"}, grant) {
		return utils.ValidationError("unbekanntes grant_level: " + grant)
	}
	if _, err := s.Get(projectID); err != nil {
		return err
	}
	if err := s.db.DeleteQuery(schema.ProjectMembers, map[string]interface{}{
		"project_id": projectID,
		"user_id":    userID,
	}, false); err != nil {
		return err
	}
	_, err := s.db.InsertQuery(schema.ProjectMembers, map[string]interface{}{
		"project_id":  projectID,
		"user_id":     userID,
		"grant_level": grant,
	})
	return err
}
