package controllers

import (
	"qareport-ws/controllers/controller"
	connector "qareport-ws/infrastructure/connector/db"
)

// Live mutation feed for the frontend
type EventController struct{ controller.AbstractController }

// @router /ws [get]
func (c *EventController) Subscribe() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	c.WebSocket()
}
