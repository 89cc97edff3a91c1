package favorg

import (
	"slices"
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Bookmark status is a single tagged state; "locked" is one variant, there
// is no separate is_locked flag.
const (
	StatusActive    = "active"
	StatusDead      = "dead"
	StatusLocalhost = "localhost"
	StatusDuplicate = "duplicate"
	StatusLocked    = "locked"
	StatusTimeout   = "timeout"
	StatusUnchecked = "unchecked"
)

var bookmarkStatuses = []string{
	StatusActive, StatusDead, StatusLocalhost, StatusDuplicate,
	StatusLocked, StatusTimeout, StatusUnchecked,
}

type BookmarkService struct {
	db *connector.Database
}

func NewBookmarkService(db *connector.Database) *BookmarkService {
	return &BookmarkService{db: db}
}

func (s *BookmarkService) Create(record utils.Record, creatorID int64) (utils.Record, error) {
	title := strings.TrimSpace(utils.GetString(record, "title"))
	bookmarkURL := strings.TrimSpace(utils.GetString(record, "url"))
	if title == "" || bookmarkURL == "" {
		return nil, utils.ValidationError("Titel und URL sind Pflichtfelder")
	}
	status := utils.GetString(record, "status")
	if status == "" {
		status = StatusUnchecked
	}
	if !slices.Contains(bookmarkStatuses, status) {
		return nil, utils.ValidationError("unbekannter Status: " + status)
	}
	id, err := s.db.InsertQuery(schema.Bookmarks, map[string]interface{}{
		"title":       title,
		"url":         bookmarkURL,
		"category":    utils.GetString(record, "category"),
		"subcategory": utils.GetString(record, "subcategory"),
		"status":      status,
		"created_by":  creatorID,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *BookmarkService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.Bookmarks, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Lesezeichen nicht gefunden")
	}
	return utils.Record(rows[0]), nil
}

func (s *BookmarkService) List(filter utils.Record) (utils.Results, error) {
	restrictions := map[string]interface{}{}
	if category := utils.GetString(filter, "category"); category != "" {
		restrictions["category"] = category
	}
	if status := utils.GetString(filter, "status"); status != "" {
		restrictions["status"] = status
	}
	rows, err := s.db.SelectOrderedQuery(schema.Bookmarks, restrictions, "title")
	if err != nil {
		return nil, err
	}
	results := utils.ToResult(rows)
	if q := strings.ToLower(utils.GetString(filter, "q")); q != "" {
		filtered := utils.Results{}
		for _, row := range results {
			if strings.Contains(strings.ToLower(utils.GetString(row, "title")), q) ||
				strings.Contains(strings.ToLower(utils.GetString(row, "url")), q) {
				filtered = append(filtered, row)
			}
		}
		results = filtered
	}
	return results, nil
}

func (s *BookmarkService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"title", "url", "category", "subcategory"} {
		if v, ok := record[key]; ok {
			fields[key] = utils.ToString(v)
		}
	}
	if v, ok := record["status"]; ok {
		status := utils.ToString(v)
		if !slices.Contains(bookmarkStatuses, status) {
			return nil, utils.ValidationError("unbekannter Status: " + status)
		}
		fields["status"] = status
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.Bookmarks, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete refuses locked bookmarks, the lock wins over everything.
func (s *BookmarkService) Delete(id int64) error {
	bookmark, err := s.Get(id)
	if err != nil {
		return err
	}
	if utils.GetString(bookmark, "status") == StatusLocked {
		return utils.Forbidden("Lesezeichen ist gesperrt")
	}
	schema.WriteArchive(s.db, schema.Bookmarks, bookmark)
	return s.db.DeleteQuery(schema.Bookmarks, map[string]interface{}{"id": id}, false)
}
