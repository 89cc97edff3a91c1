package policy

import (
	"os"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

const (
	RoleAdmin    = "admin"
	RoleSysOp    = "sysop"
	RoleTester   = "qa_tester"
	RoleReviewer = "reviewer"
)

const (
	GrantOwner  = "owner"
	GrantEditor = "editor"
	GrantViewer = "viewer"
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionDelete
)

type Subject struct {
	ID   int64
	Role string
}

// Resource describes the target of a check. ProjectID is zero for
// resources outside the project tree.
type Resource struct {
	Table     string
	ID        int64
	CreatorID int64
	ProjectID int64
}

// Service is the single policy evaluation point consumed by every handler.
// Whether sysop carries full admin privileges is configuration, not a
// hardcoded assumption.
type Service struct {
	sysopIsAdmin bool
	grants       func(projectID int64, userID int64) string
}

func New(db *connector.Database) *Service {
	return &Service{
		sysopIsAdmin: os.Getenv("SYSOP_IS_ADMIN") != "disable",
		grants: func(projectID int64, userID int64) string {
			rows, err := db.SelectQuery(schema.ProjectMembers, map[string]interface{}{
				"project_id": projectID,
				"user_id":    userID,
			}, false)
			if err != nil || len(rows) == 0 {
				return ""
			}
			return utils.ToString(rows[0]["grant_level"])
		},
	}
}

// NewWithGrants injects the membership lookup, used by tests.
func NewWithGrants(sysopIsAdmin bool, grants func(int64, int64) string) *Service {
	return &Service{sysopIsAdmin: sysopIsAdmin, grants: grants}
}

// Authorize decides (subject, action, resource). A subject that cannot even
// see the resource gets NotFound so that nothing leaks about its existence;
// a subject that can see it but not change it gets Forbidden. Resources
// outside the project tree (bookmarks, categories, companies) are readable
// by every authenticated subject, so denials there are always Forbidden.
func (s *Service) Authorize(sub Subject, action Action, res Resource) error {
	if sub.Role == RoleAdmin {
		return nil
	}
	if sub.Role == RoleSysOp && s.sysopIsAdmin {
		return nil
	}
	if res.CreatorID != 0 && res.CreatorID == sub.ID {
		return nil
	}
	grant := ""
	if res.ProjectID != 0 {
		grant = s.grants(res.ProjectID, sub.ID)
	}
	canRead := res.ProjectID == 0 || grant != ""
	switch action {
	case ActionRead:
		if canRead {
			return nil
		}
		return utils.NotFound("Ressource nicht gefunden")
	case ActionWrite:
		if grant == GrantOwner || grant == GrantEditor {
			return nil
		}
	case ActionDelete:
		if grant == GrantOwner {
			return nil
		}
	}
	if canRead {
		return utils.Forbidden("keine Berechtigung für diese Aktion")
	}
	return utils.NotFound("Ressource nicht gefunden")
}

// IsElevated reports whether the subject bypasses ownership checks.
func (s *Service) IsElevated(sub Subject) bool {
	return sub.Role == RoleAdmin || (sub.Role == RoleSysOp && s.sysopIsAdmin)
}
