package controller

import (
	"encoding/json"
	"strings"

	"qareport-ws/domain/auth"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	beego "github.com/beego/beego/v2/server/web"
)

/*
AbstractController defines main procedure that a resource handler would get.
*/
var JSON = "json"
var DATA = "data"
var ERROR = "error"

type AbstractController struct {
	beego.Controller
}

// Body is the main body extracter from the controller.
func (t *AbstractController) Body() utils.Record {
	var res utils.Record
	json.Unmarshal(t.Ctx.Input.RequestBody, &res)
	if res == nil {
		res = utils.Record{}
	}
	return res
}

// IsAuthorized resolves the bearer token to an active user record.
func (t *AbstractController) IsAuthorized(db *connector.Database) (utils.Record, error) {
	header := t.Ctx.Input.Header("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, utils.Unauthenticated("AUTH : fehlender Bearer-Token")
	}
	claims, err := auth.NewTokenServiceFromEnv().Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, err
	}
	return auth.ResolveUser(db, claims)
}

// Subject maps an authenticated user onto the policy subject.
func (t *AbstractController) Subject(user utils.Record) policy.Subject {
	return policy.Subject{
		ID:   utils.GetInt64(user, "id"),
		Role: utils.GetString(user, "role"),
	}
}

// IDParam reads the :id path segment.
func (t *AbstractController) IDParam() int64 {
	return utils.ToInt64(t.Ctx.Input.Param(":id"))
}
