package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about companies
type CompanyController struct{ controller.AbstractController }

// @router / [post]
func (c *CompanyController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	company, err := qa.NewCompanyService(db).Create(c.Body(), utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.Companies, "create", utils.GetInt64(company, "id"))
	}
	c.Created(utils.Results{company}, err)
}

// @router / [get]
func (c *CompanyController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	companies, err := qa.NewCompanyService(db).List()
	c.Response(companies, err)
}

// @router /:id [get]
func (c *CompanyController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	company, err := qa.NewCompanyService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{company}, nil)
}

// @router /:id [put]
func (c *CompanyController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewCompanyService(db)
	company, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, policy.Resource{
		Table:     schema.Companies,
		ID:        c.IDParam(),
		CreatorID: utils.GetInt64(company, "created_by"),
	}); err != nil {
		c.Response(nil, err)
		return
	}
	company, err = service.Update(c.IDParam(), c.Body())
	if err == nil {
		controller.Notify(schema.Companies, "update", c.IDParam())
	}
	c.Response(utils.Results{company}, err)
}

// @router /:id [delete]
func (c *CompanyController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := qa.NewCompanyService(db)
	company, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, policy.Resource{
		Table:     schema.Companies,
		ID:        c.IDParam(),
		CreatorID: utils.GetInt64(company, "created_by"),
	}); err != nil {
		c.Response(nil, err)
		return
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Companies, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}
