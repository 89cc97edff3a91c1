package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/favorg"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about bookmarks
type BookmarkController struct{ controller.AbstractController }

func bookmarkResource(bookmark utils.Record) policy.Resource {
	return policy.Resource{
		Table:     schema.Bookmarks,
		ID:        utils.GetInt64(bookmark, "id"),
		CreatorID: utils.GetInt64(bookmark, "created_by"),
	}
}

// @router / [post]
func (c *BookmarkController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	bookmark, err := favorg.NewBookmarkService(db).Create(c.Body(), utils.GetInt64(user, "id"))
	if err == nil {
		controller.Notify(schema.Bookmarks, "create", utils.GetInt64(bookmark, "id"))
	}
	c.Created(utils.Results{bookmark}, err)
}

// @router / [get]
func (c *BookmarkController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	bookmarks, err := favorg.NewBookmarkService(db).List(utils.Record{
		"category": c.Ctx.Input.Query("category"),
		"status":   c.Ctx.Input.Query("status"),
		"q":        c.Ctx.Input.Query("q"),
	})
	c.Response(bookmarks, err)
}

// @router /:id [get]
func (c *BookmarkController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	bookmark, err := favorg.NewBookmarkService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{bookmark}, nil)
}

// @router /:id [put]
func (c *BookmarkController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := favorg.NewBookmarkService(db)
	bookmark, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, bookmarkResource(bookmark)); err != nil {
		c.Response(nil, err)
		return
	}
	bookmark, err = service.Update(c.IDParam(), c.Body())
	if err == nil {
		controller.Notify(schema.Bookmarks, "update", c.IDParam())
	}
	c.Response(utils.Results{bookmark}, err)
}

// @router /:id [delete]
func (c *BookmarkController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	service := favorg.NewBookmarkService(db)
	bookmark, err := service.Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionDelete, bookmarkResource(bookmark)); err != nil {
		c.Response(nil, err)
		return
	}
	if err := service.Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Bookmarks, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}

// @router /find-duplicates [post]
func (c *BookmarkController) FindDuplicates() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	plan, err := favorg.NewDuplicateService(db).FindDuplicates()
	if err != nil {
		c.Response(nil, err)
		return
	}
	if plan.MarkedCount > 0 {
		controller.Notify(schema.Bookmarks, "update", 0)
	}
	c.Response(plan, nil)
}

// @router /duplicates [delete]
func (c *BookmarkController) RemoveDuplicates() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	removed, err := favorg.NewDuplicateService(db).RemoveDuplicates()
	if err != nil {
		c.Response(nil, err)
		return
	}
	if removed > 0 {
		controller.Notify(schema.Bookmarks, "delete", 0)
	}
	c.Response(utils.Results{utils.Record{"removed": removed}}, nil)
}

// @router /validate [post]
func (c *BookmarkController) Validate() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	report, err := favorg.NewDeadLinkService(db).ValidateAll()
	if err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Bookmarks, "update", 0)
	c.Response(report, nil)
}
