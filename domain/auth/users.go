package auth

import (
	"slices"
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

var roles = []string{"admin", "sysop", "qa_tester", "reviewer"}

// UserService manages accounts. Authorization happens in the handlers, the
// service only validates and persists.
type UserService struct {
	db *connector.Database
}

func NewUserService(db *connector.Database) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(record utils.Record) (utils.Record, error) {
	name := strings.ToLower(strings.TrimSpace(utils.GetString(record, "name")))
	email := strings.ToLower(strings.TrimSpace(utils.GetString(record, "email")))
	if name == "" || email == "" {
		return nil, utils.ValidationError("Name und E-Mail sind Pflichtfelder")
	}
	password := utils.GetString(record, "password")
	if len(password) < 8 {
		return nil, utils.ValidationError("Passwort muss mindestens 8 Zeichen haben")
	}
	role := utils.GetString(record, "role")
	if role == "" {
		role = "qa_tester"
	}
	if !slices.Contains(roles, role) {
		return nil, utils.ValidationError("unbekannte Rolle: " + role)
	}
	existing, err := s.db.SelectQuery(schema.Users, map[string]interface{}{
		"name":  name,
		"email": email,
	}, true)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, utils.Conflict("Benutzername oder E-Mail bereits vergeben")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	language := utils.GetString(record, "language")
	if language == "" {
		language = "de"
	}
	id, err := s.db.InsertQuery(schema.Users, map[string]interface{}{
		"name":       name,
		"email":      email,
		"password":   hash,
		"role":       role,
		"company_id": utils.GetInt64(record, "company_id"),
		"language":   language,
		"is_active":  true,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *UserService) Get(id int64) (utils.Record, error) {
	rows, err := s.db.SelectQuery(schema.Users, map[string]interface{}{"id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.NotFound("Benutzer nicht gefunden")
	}
	user := utils.Record(rows[0])
	delete(user, "password")
	return user, nil
}

func (s *UserService) List() (utils.Results, error) {
	rows, err := s.db.SelectOrderedQuery(schema.Users, nil, "name")
	if err != nil {
		return nil, err
	}
	users := utils.ToResult(rows)
	for _, user := range users {
		delete(user, "password")
	}
	return users, nil
}

func (s *UserService) Update(id int64, record utils.Record) (utils.Record, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	for _, key := range []string{"email", "language"} {
		if v, ok := record[key]; ok {
			fields[key] = strings.ToLower(utils.ToString(v))
		}
	}
	if v, ok := record["role"]; ok {
		role := utils.ToString(v)
		if !slices.Contains(roles, role) {
			return nil, utils.ValidationError("unbekannte Rolle: " + role)
		}
		fields["role"] = role
	}
	if v, ok := record["is_active"]; ok {
		fields["is_active"] = utils.ToBool(v)
	}
	if v, ok := record["password"]; ok {
		password := utils.ToString(v)
		if len(password) < 8 {
			return nil, utils.ValidationError("Passwort muss mindestens 8 Zeichen haben")
		}
		hash, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if v, ok := record["company_id"]; ok {
		fields["company_id"] = utils.ToInt64(v)
	}
	if len(fields) > 0 {
		if err := s.db.UpdateQuery(schema.Users, fields, map[string]interface{}{"id": id}, false); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete hard-removes the account; the usual path is soft-disabling via
// is_active.
func (s *UserService) Delete(id int64) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	schema.WriteArchive(s.db, schema.Users, user)
	return s.db.DeleteQuery(schema.Users, map[string]interface{}{"id": id}, false)
}
