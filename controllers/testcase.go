package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about test cases
type TestCaseController struct{ controller.AbstractController }

func caseResource(db *connector.Database, caseRecord utils.Record) (policy.Resource, error) {
	projectID := qa.NewCaseService(db).ProjectID(caseRecord)
	resource, err := resourceInProject(db, schema.TestCases, utils.GetInt64(caseRecord, "id"), projectID)
	if err != nil {
		return policy.Resource{}, err
	}
	// the case creator may manage their own case regardless of grants
	if creator := utils.GetInt64(caseRecord, "created_by"); creator != 0 {
		resource.CreatorID = creator
	}
	return resource, nil
}

// @router / [post]
func (c *TestCaseController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	suite, err := qa.NewSuiteService(db).Get(utils.GetInt64(body, "suite_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestCases, 0, utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, resource); err != nil {
		c.Response(nil, err)
		return
	}
	testCase, err := qa.NewCaseService(db).Create(body, utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.TestCases, "create", utils.GetInt64(testCase, "id"))
	}
	c.Created(utils.Results{testCase}, err)
}

// @router / [get]
func (c *TestCaseController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	suiteID := utils.ToInt64(c.Ctx.Input.Query("suite_id"))
	if suiteID == 0 {
		c.Response(nil, utils.ValidationError("suite_id fehlt"))
		return
	}
	suite, err := qa.NewSuiteService(db).Get(suiteID)
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestCases, 0, utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, resource); err != nil {
		c.Response(nil, err)
		return
	}
	cases, err := qa.NewCaseService(db).ListBySuite(suiteID)
	c.Response(cases, err)
}

// @router /:id [get]
func (c *TestCaseController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	testCase, err := qa.NewCaseService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := caseResource(db, testCase)
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, resource); err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{testCase}, nil)
}

// @router /:id [put]
func (c *TestCaseController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewCaseService(db)
	testCase, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := caseResource(db, testCase)
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, resource); err != nil {
		c.Response(nil, err)
		return
	}
	testCase, err = service.Update(c.IDParam(), c.Body())
	if err == nil {
		controller.Notify(schema.TestCases, "update", c.IDParam())
	}
	c.Response(utils.Results{testCase}, err)
}

// @router /:id [delete]
func (c *TestCaseController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewCaseService(db)
	testCase, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := caseResource(db, testCase)
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
	controller.Notify(schema.TestCases, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}

// @router /:id/latest-result [get]
func (c *TestCaseController) LatestResult() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	testCase, err := qa.NewCaseService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := caseResource(db, testCase)
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, resource); err != nil {
		c.Response(nil, err)
		return
	}
	latest, err := qa.NewResultService(db).LatestForCase(c.IDParam(), c.Ctx.Input.Query("session_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{latest}, nil)
}
