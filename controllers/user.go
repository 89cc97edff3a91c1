package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/auth"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Operations about user accounts, restricted to elevated roles
type UserController struct{ controller.AbstractController }

// elevated rejects everyone below admin (or sysop when configured so).
func (c *UserController) elevated(db *connector.Database) (utils.Record, error) {
	user, err := c.IsAuthorized(db)
	if err != nil {
		return nil, err
	}
	if !policy.New(db).IsElevated(c.Subject(user)) {
		return nil, utils.Forbidden("Benutzerverwaltung erfordert Administratorrechte")
	}
	return user, nil
}

// @router / [post]
func (c *UserController) Post() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.elevated(db); err != nil {
		c.Response(nil, err)
		return
	}
	user, err := auth.NewUserService(db).Create(c.Body())
	if err == nil {
		controller.Notify(schema.Users, "create", utils.GetInt64(user, "id"))
	}
	c.Created(utils.Results{user}, err)
}

// @router / [get]
func (c *UserController) GetAll() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.elevated(db); err != nil {
		c.Response(nil, err)
		return
	}
	users, err := auth.NewUserService(db).List()
	c.Response(users, err)
}

// @router /:id [get]
func (c *UserController) GetOne() {
	db := connector.Open(nil)
	defer db.Close()
	caller, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	// everyone may read their own account, others need elevation
	if utils.GetInt64(caller, "id") != c.IDParam() && !policy.New(db).IsElevated(c.Subject(caller)) {
		c.Response(nil, utils.Forbidden("Benutzerverwaltung erfordert Administratorrechte"))
		return
	}
	user, err := auth.NewUserService(db).Get(c.IDParam())
	if err != nil {
		c.Response(nil, err)
		return
	}
	c.Response(utils.Results{user}, nil)
}

// @router /:id [put]
func (c *UserController) Put() {
	db := connector.Open(nil)
	defer db.Close()
	caller, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	if utils.GetInt64(caller, "id") == c.IDParam() {
		// self-service never changes role or activation
		delete(body, "role")
		delete(body, "is_active")
	} else if !policy.New(db).IsElevated(c.Subject(caller)) {
		c.Response(nil, utils.Forbidden("Benutzerverwaltung erfordert Administratorrechte"))
		return
	}
	user, err := auth.NewUserService(db).Update(c.IDParam(), body)
	if err == nil {
		controller.Notify(schema.Users, "update", c.IDParam())
	}
	c.Response(utils.Results{user}, err)
}

// @router /:id [delete]
func (c *UserController) Delete() {
	db := connector.Open(nil)
	defer db.Close()
	caller, err := c.elevated(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	if utils.GetInt64(caller, "id") == c.IDParam() {
		c.Response(nil, utils.ValidationError("eigenes Konto kann nicht gelöscht werden"))
		return
	}
	if err := auth.NewUserService(db).Delete(c.IDParam()); err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Users, "delete", c.IDParam())
	c.Response(utils.Results{utils.Record{"deleted": c.IDParam()}}, nil)
}
