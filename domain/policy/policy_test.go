package policy

import (
	"net/http"
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
)

func grantTable(grants map[int64]string) func(int64, int64) string {
	return func(projectID int64, userID int64) string {
		return grants[userID]
	}
}

func TestAdminAlwaysAllowed(t *testing.T) {
	s := NewWithGrants(false, grantTable(nil))
	res := Resource{Table: "projects", ID: 1, CreatorID: 99, ProjectID: 1}
	for _, action := range []Action{ActionRead, ActionWrite, ActionDelete} {
		assert.NoError(t, s.Authorize(Subject{ID: 1, Role: RoleAdmin}, action, res))
	}
}

func TestSysOpFollowsConfiguration(t *testing.T) {
	res := Resource{Table: "projects", ID: 1, CreatorID: 99, ProjectID: 1}
	sysop := Subject{ID: 2, Role: RoleSysOp}

	elevated := NewWithGrants(true, grantTable(nil))
	assert.NoError(t, elevated.Authorize(sysop, ActionDelete, res))
	assert.True(t, elevated.IsElevated(sysop))

	demoted := NewWithGrants(false, grantTable(nil))
	assert.Error(t, demoted.Authorize(sysop, ActionDelete, res))
	assert.False(t, demoted.IsElevated(sysop))
}

func TestCreatorOwnsResource(t *testing.T) {
	s := NewWithGrants(false, grantTable(nil))
	res := Resource{Table: "projects", ID: 1, CreatorID: 7, ProjectID: 1}
	creator := Subject{ID: 7, Role: RoleTester}
	for _, action := range []Action{ActionRead, ActionWrite, ActionDelete} {
		assert.NoError(t, s.Authorize(creator, action, res))
	}
}

func TestGrantMatrix(t *testing.T) {
	s := NewWithGrants(false, grantTable(map[int64]string{
		10: GrantOwner,
		11: GrantEditor,
		12: GrantViewer,
	}))
	res := Resource{Table: "test_cases", ID: 5, CreatorID: 99, ProjectID: 1}

	owner := Subject{ID: 10, Role: RoleTester}
	assert.NoError(t, s.Authorize(owner, ActionRead, res))
	assert.NoError(t, s.Authorize(owner, ActionWrite, res))
	assert.NoError(t, s.Authorize(owner, ActionDelete, res))

	editor := Subject{ID: 11, Role: RoleTester}
	assert.NoError(t, s.Authorize(editor, ActionRead, res))
	assert.NoError(t, s.Authorize(editor, ActionWrite, res))
	assert.Error(t, s.Authorize(editor, ActionDelete, res))

	viewer := Subject{ID: 12, Role: RoleReviewer}
	assert.NoError(t, s.Authorize(viewer, ActionRead, res))
	assert.Error(t, s.Authorize(viewer, ActionWrite, res))
	assert.Error(t, s.Authorize(viewer, ActionDelete, res))
}

// A stranger must not learn the resource exists; a viewer who cannot write
// gets a plain refusal instead.
func TestRefusalStatusCodes(t *testing.T) {
	s := NewWithGrants(false, grantTable(map[int64]string{12: GrantViewer}))
	res := Resource{Table: "test_cases", ID: 5, CreatorID: 99, ProjectID: 1}

	stranger := Subject{ID: 50, Role: RoleTester}
	err := s.Authorize(stranger, ActionRead, res)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
	err = s.Authorize(stranger, ActionWrite, res)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))

	viewer := Subject{ID: 12, Role: RoleReviewer}
	err = s.Authorize(viewer, ActionWrite, res)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))
}

// Bookmarks, categories and companies are openly readable, so a refused
// write there must never pretend the resource does not exist.
func TestResourceOutsideProjectTree(t *testing.T) {
	s := NewWithGrants(false, grantTable(map[int64]string{10: GrantOwner}))
	res := Resource{Table: "bookmarks", ID: 3, CreatorID: 7}

	assert.NoError(t, s.Authorize(Subject{ID: 50, Role: RoleTester}, ActionRead, res))

	// grants apply to project resources only; the non-creator can still
	// see the bookmark, so the refusal is Forbidden, not NotFound
	err := s.Authorize(Subject{ID: 10, Role: RoleTester}, ActionWrite, res)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))
	err = s.Authorize(Subject{ID: 50, Role: RoleTester}, ActionDelete, res)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))

	assert.NoError(t, s.Authorize(Subject{ID: 7, Role: RoleTester}, ActionWrite, res))
}
