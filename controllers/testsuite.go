package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about test suites
type TestSuiteController struct{ controller.AbstractController }

// resourceInProject walks up to the project so the grant applies to every
// nested resource; the project creator owns the whole tree.
func resourceInProject(db *connector.Database, table string, id int64, projectID int64) (policy.Resource, error) {
	project, err := qa.NewProjectService(db).Get(projectID)
	if err != nil {
		return policy.Resource{}, err
	}
	return policy.Resource{
		Table:     table,
		ID:        id,
		CreatorID: utils.GetInt64(project, "created_by"),
		ProjectID: projectID,
	}, nil
}

// @router / [post]
func (c *TestSuiteController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	resource, err := resourceInProject(db, schema.TestSuites, 0, utils.GetInt64(body, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, resource); err != nil {
		c.Response(nil, err)
		return
	}
	suite, err := qa.NewSuiteService(db).Create(body)
	if err == nil {
		controller.Notify(schema.TestSuites, "create", utils.GetInt64(suite, "id"))
	}
	c.Created(utils.Results{suite}, err)
}

// @router / [get]
func (c *TestSuiteController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	projectID := utils.ToInt64(c.Ctx.Input.Query("project_id"))
	if projectID == 0 {
		c.Response(nil, utils.ValidationError("project_id fehlt"))
		return
	}
	resource, err := resourceInProject(db, schema.TestSuites, 0, projectID)
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, resource); err != nil {
		c.Response(nil, err)
		return
	}
	suites, err := qa.NewSuiteService(db).ListByProject(projectID)
	c.Response(suites, err)
}

// @router /:id [get]
func (c *TestSuiteController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	suite, err := qa.NewSuiteService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestSuites, c.IDParam(), utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, resource); err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{suite}, nil)
}

// @router /:id [put]
func (c *TestSuiteController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewSuiteService(db)
	suite, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestSuites, c.IDParam(), utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, resource); err != nil {
		c.Response(nil, err)
		return
	}
	suite, err = service.Update(c.IDParam(), c.Body())
	if err == nil {
		controller.Notify(schema.TestSuites, "update", c.IDParam())
	}
	c.Response(utils.Results{suite}, err)
}

// @router /:id [delete]
func (c *TestSuiteController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewSuiteService(db)
	suite, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestSuites, c.IDParam(), utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, resource); err != nil {
		c.Response(nil, err)
		return
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.TestSuites, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}
