package qa

import (
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

type CompanyService struct {
	db *connector.Database
}

func NewCompanyService(db *connector.Database) *CompanyService {
	return &CompanyService{db: db}
}

func (s *CompanyService) Create(record utils.Record, creatorID int64) (utils.Record, error) {
	name := strings.TrimSpace(utils.GetString(record, "name"))
	if name == "" {
		return nil, utils.ValidationError("Firmenname fehlt")
	}
	id, err := s.db.InsertQuery(schema.Companies, map[string]interface{}{
		"name":        name,
		"description": utils.GetString(record, "description"),
		"created_by":  creatorID,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *CompanyService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.Companies, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Firma nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *CompanyService) List() (utils.Results, error) {
	rows, err := s.db.SelectOrderedQuery(schema.Companies, nil, "name")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

func (s *CompanyService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"name", "description"} {
		if v, ok := record[key]; ok {
			fields[key] = utils.ToString(v)
		}
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.Companies, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete refuses the protected system company and cascades through the
// company's projects.
func (s *CompanyService) Delete(id int64) error {
	company, err := s.Get(id)
	if err != nil {
		return err
	}
	if utils.GetString(company, "name") == schema.SystemCompany {
		return utils.Forbidden("Systemfirma kann nicht gelöscht werden")
	}
	projects, err := s.db.SelectQuery(schema.Projects, map[string]interface{}{"company_id": id}, false)
	if err != nil {
		return err
	}
	projectService := NewProjectService(s.db)
	for _, project := range projects {
		if err := projectService.Delete(utils.ToInt64(project["id"])); err != nil {
			return err
		}
	}
	schema.WriteArchive(s.db, schema.Companies, company)
	return s.db.DeleteQuery(schema.Companies, map[string]interface{}{"id": id}, false)
}
