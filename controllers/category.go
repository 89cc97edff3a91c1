package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/favorg"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about bookmark categories
type CategoryController struct{ controller.AbstractController }

// @router / [post]
func (c *CategoryController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	category, err := favorg.NewCategoryService(db).Create(c.Body(), utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.Categories, "create", utils.GetInt64(category, "id"))
	}
	c.Created(utils.Results{category}, err)
}

// @router / [get]
func (c *CategoryController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	categories, err := favorg.NewCategoryService(db).List()
	c.Response(categories, err)
}

// @router /:id [delete]
func (c *CategoryController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := favorg.NewCategoryService(db)
	category, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, policy.Resource{
		Table:     schema.Categories,
		ID:        c.IDParam(),
		CreatorID: utils.GetInt64(category, "created_by"),
	}); err != nil {
		c.Response(nil, err)
		return
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Categories, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}
