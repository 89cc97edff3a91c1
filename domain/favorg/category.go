package favorg

import (
	"strings"
	"time"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

type CategoryService struct {
	db *connector.Database
}

func NewCategoryService(db *connector.Database) *CategoryService {
	return &CategoryService{db: db}
}

// Create validates the single-level hierarchy: a subcategory requires its
// named parent to exist already.
func (s *CategoryService) Create(record utils.Record, creatorID int64) (utils.Record, error) {
	name := strings.TrimSpace(utils.GetString(record, "name"))
	if name == "" {
		return nil, utils.ValidationError("Kategoriename fehlt")
	}
	existing, err := s.db.SelectQuery(schema.Categories, map[string]interface{}{"name": name}, false)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, utils.Conflict("Kategorie existiert bereits")
	}
	fields := map[string]interface{}{
		"name":       name,
		"created_by": creatorID,
		"created_at": time.Now().Format("2006-01-02 15:04:05"),
	}
	if parent := strings.TrimSpace(utils.GetString(record, "parent_category")); parent != "" {
		parentRows, err := s.db.SelectQuery(schema.Categories, map[string]interface{}{"name": parent}, false)
		if err != nil {
			return nil, err
		}
		if len(parentRows) == 0 {
			return nil, utils.ValidationError("übergeordnete Kategorie existiert nicht: " + parent)
		}
		if utils.GetString(utils.Record(parentRows[0]), "parent_category") != "" {
			return nil, utils.ValidationError("nur eine Unterkategorie-Ebene erlaubt")
		}
		fields["parent_category"] = parent
	}
	id, err := s.db.InsertQuery(schema.Categories, fields)
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *CategoryService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.Categories, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Kategorie nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *CategoryService) List() (utils.Results, error) {
	rows, err := s.db.SelectOrderedQuery(schema.Categories, nil, "name")
	if err != nil {
		return nil, err
	}
	return utils.ToResult(rows), nil
}

// Delete reassigns every bookmark of the category to the sentinel
// "Nicht zugeordnet" before removing the row, so no bookmark is ever left
// pointing at a missing category. Subcategories of the deleted category
// lose their parent.
func (s *CategoryService) Delete(id int64) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}
	name := utils.GetString(category, "name")
	if name == schema.SentinelCategory {
		return utils.Forbidden("Sentinel-Kategorie kann nicht gelöscht werden")
	}
	if _, err := schema.EnsureSentinelCategory(s.db); err != nil {
		return err
	}
	if err := s.db.UpdateQuery(schema.Bookmarks,
		map[string]interface{}{"category": schema.SentinelCategory, "subcategory": ""},
		map[string]interface{}{"category": name}, false); err != nil {
		return err
	}
	if err := s.db.UpdateQuery(schema.Categories,
		map[string]interface{}{"parent_category": nil},
		map[string]interface{}{"parent_category": name}, false); err != nil {
		return err
	}
	return s.db.DeleteQuery(schema.Categories, map[string]interface{}{"id": id}, false)
}
