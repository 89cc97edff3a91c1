package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about test results
type TestResultController struct{ controller.AbstractController }

// @router / [post]
func (c *TestResultController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	testCase, err := qa.NewCaseService(db).Get(utils.GetInt64(body, "case_id"))
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
	result, err := qa.NewResultService(db).Create(body, utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.TestResults, "create", utils.GetInt64(result, "id"))
	}
	c.Created(utils.Results{result}, err)
}

// @router / [get]
func (c *TestResultController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	caseID := utils.ToInt64(c.Ctx.Input.Query("case_id"))
	if caseID == 0 {
		c.Response(nil, utils.ValidationError("case_id fehlt"))
		return
	}
	testCase, err := qa.NewCaseService(db).Get(caseID)
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
	results, err := qa.NewResultService(db).ListByCase(caseID, c.Ctx.Input.Query("session_id"))
	c.Response(results, err)
}

// @router /:id [delete]
func (c *TestResultController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewResultService(db)
	result, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	testCase, err := qa.NewCaseService(db).Get(utils.GetInt64(result, "case_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := caseResource(db, testCase)
	if err != nil {
		c.Response(nil, err)
		return
	}
	// the executor may retract their own result
	if utils.GetInt64(result, "executed_by") != utils.GetInt64(user, "id") {
		if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, resource); err != nil {
			c.Response(nil, err)
			return
		}
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.TestResults, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}
