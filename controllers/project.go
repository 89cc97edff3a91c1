package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about projects
type ProjectController struct{ controller.AbstractController }

func projectResource(project utils.Record) policy.Resource {
	return policy.Resource{
		Table:     schema.Projects,
		ID:        utils.GetInt64(project, "id"),
		CreatorID: utils.GetInt64(project, "created_by"),
		ProjectID: utils.GetInt64(project, "id"),
	}
}

// @router / [post]
func (c *ProjectController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	project, err := qa.NewProjectService(db).Create(c.Body(), utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.Projects, "create", utils.GetInt64(project, "id"))
	}
	c.Created(utils.Results{project}, err)
}

// @router / [get]
func (c *ProjectController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	projects, err := qa.NewProjectService(db).List(utils.Record{
		"company_id": c.Ctx.Input.Query("company_id"),
		"status":     c.Ctx.Input.Query("status"),
	})
	if err != nil {
		c.Response(nil, err)
		return
	}
	// visibility is re-derived per project, invisible ones just drop out
	policyService := policy.New(db)
	subject := c.Subject(user)
	visible := utils.Results{}
	for _, project := range projects {
		if policyService.Authorize(subject, policy.ActionRead, projectResource(project)) == nil {
			visible = append(visible, project)
		}
	}
	c.Response(visible, nil)
}

// @router /:id [get]
func (c *ProjectController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	project, err := qa.NewProjectService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, projectResource(project)); err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{project}, nil)
}

// @router /:id [put]
func (c *ProjectController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewProjectService(db)
	project, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, projectResource(project)); err != nil {
		c.Response(nil, err)
		return
	}
	project, err = service.Update(c.IDParam(), c.Body())
	if err == nil {
		controller.Notify(schema.Projects, "update", c.IDParam())
	}
	c.Response(utils.Results{project}, err)
}

// @router /:id [delete]
func (c *ProjectController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewProjectService(db)
	project, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, projectResource(project)); err != nil {
		c.Response(nil, err)
		return
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Projects, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}

// @router /:id/statistics [get]
func (c *ProjectController) Statistics() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	project, err := qa.NewProjectService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, projectResource(project)); err != nil {
		c.Response(nil, err)
		return
	}
	stats, err := qa.NewStatsService(db).ForProject(c.IDParam(), c.Ctx.Input.Query("session_id"))
	c.Response(stats, err)
}

// @router /:id/members [post]
func (c *ProjectController) AddMember() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewProjectService(db)
	project, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, projectResource(project)); err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	err = service.AddMember(c.IDParam(), utils.GetInt64(body, "user_id"), utils.GetString(body, "grant_level"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.ProjectMembers, "create", c.IDParam())
	c.Response(utils.Results{utils.Record{"project_id": c.IDParam()}}, nil)
}
