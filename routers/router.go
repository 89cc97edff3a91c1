// @APIVersion 1.0.0
// @Title QA-Report WS API
// @Description Multi-tenant QA test management and bookmark service
package routers

import (
	"qareport-ws/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	ns := beego.NewNamespace("/v1",
		beego.NSNamespace("/auth",
			beego.NSRouter("/login", &controllers.AuthController{}, "post:Login"),
			beego.NSRouter("/logout", &controllers.AuthController{}, "get:Logout"),
			beego.NSRouter("/refresh", &controllers.AuthController{}, "get:Refresh"),
		),
		beego.NSNamespace("/companies",
			beego.NSRouter("/", &controllers.CompanyController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.CompanyController{}, "get:GetOne;put:Put;delete:Delete"),
		),
		beego.NSNamespace("/projects",
			beego.NSRouter("/", &controllers.ProjectController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.ProjectController{}, "get:GetOne;put:Put;delete:Delete"),
			beego.NSRouter("/:id/statistics", &controllers.ProjectController{}, "get:Statistics"),
			beego.NSRouter("/:id/members", &controllers.ProjectController{}, "post:AddMember"),
		),
		beego.NSNamespace("/test-suites",
			beego.NSRouter("/", &controllers.TestSuiteController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.TestSuiteController{}, "get:GetOne;put:Put;delete:Delete"),
		),
		beego.NSNamespace("/test-cases",
			beego.NSRouter("/", &controllers.TestCaseController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.TestCaseController{}, "get:GetOne;put:Put;delete:Delete"),
			beego.NSRouter("/:id/latest-result", &controllers.TestCaseController{}, "get:LatestResult"),
		),
		beego.NSNamespace("/test-results",
			beego.NSRouter("/", &controllers.TestResultController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.TestResultController{}, "delete:Delete"),
		),
		beego.NSNamespace("/users",
			beego.NSRouter("/", &controllers.UserController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.UserController{}, "get:GetOne;put:Put;delete:Delete"),
		),
		beego.NSNamespace("/admin",
			beego.NSRouter("/generate-test-data", &controllers.AdminController{}, "post:GenerateTestData"),
			beego.NSRouter("/archives", &controllers.AdminController{}, "get:Archives"),
		),
		beego.NSNamespace("/bookmarks",
			beego.NSRouter("/", &controllers.BookmarkController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/find-duplicates", &controllers.BookmarkController{}, "post:FindDuplicates"),
			beego.NSRouter("/duplicates", &controllers.BookmarkController{}, "delete:RemoveDuplicates"),
			beego.NSRouter("/validate", &controllers.BookmarkController{}, "post:Validate"),
			beego.NSRouter("/:id", &controllers.BookmarkController{}, "get:GetOne;put:Put;delete:Delete"),
		),
		beego.NSNamespace("/categories",
			beego.NSRouter("/", &controllers.CategoryController{}, "post:Post;get:GetAll"),
			beego.NSRouter("/:id", &controllers.CategoryController{}, "delete:Delete"),
		),
		beego.NSNamespace("/export",
			beego.NSRouter("/bookmarks", &controllers.ExportController{}, "get:ExportBookmarks"),
			beego.NSRouter("/project/:id", &controllers.ExportController{}, "get:ExportProject"),
		),
		beego.NSNamespace("/import",
			beego.NSRouter("/bookmarks", &controllers.ExportController{}, "post:ImportBookmarks"),
			beego.NSRouter("/test-cases", &controllers.ExportController{}, "post:ImportTestCases"),
		),
		beego.NSNamespace("/pdf",
			beego.NSRouter("/generate/:id", &controllers.ExportController{}, "get:GeneratePDF"),
		),
		beego.NSNamespace("/events",
			beego.NSRouter("/ws", &controllers.EventController{}, "get:Subscribe"),
		),
	)
	beego.AddNamespace(ns)
}
