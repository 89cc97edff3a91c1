package routers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	beego "github.com/beego/beego/v2/server/web"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_, file, _, _ := runtime.Caller(0)
	apppath, _ := filepath.Abs(filepath.Dir(filepath.Join(file, "..")))
	beego.TestBeegoInit(apppath)
	beego.BConfig.CopyRequestBody = true
	os.Setenv("DBDRIVER", "postgres")
	os.Setenv("JWT_SECRET", "test-secret")
}

func request(method string, path string) *httptest.ResponseRecorder {
	r, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	beego.BeeApp.Handlers.ServeHTTP(w, r)
	return w
}

// Every resource route must exist and refuse anonymous access.
func TestRoutesRequireAuthentication(t *testing.T) {
	paths := []string{
		"/v1/companies/",
		"/v1/projects/",
		"/v1/test-suites/",
		"/v1/test-cases/",
		"/v1/test-results/?case_id=1",
		"/v1/users/",
		"/v1/bookmarks/",
		"/v1/categories/",
		"/v1/admin/archives",
		"/v1/export/bookmarks",
	}
	Convey("Anonymous requests are rejected with 401", t, func() {
		for _, path := range paths {
			w := request("GET", path)
			So(w.Code, ShouldEqual, http.StatusUnauthorized)
		}
	})
}

func TestLoginRouteExists(t *testing.T) {
	Convey("Login without a body fails validation, not routing", t, func() {
		w := request("POST", "/v1/auth/login")
		So(w.Code, ShouldNotEqual, http.StatusNotFound)
		So(w.Code, ShouldNotEqual, http.StatusMethodNotAllowed)
	})
}

func TestUnknownRoute(t *testing.T) {
	Convey("An unknown path yields 404", t, func() {
		w := request("GET", "/v1/does-not-exist")
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
