package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/auth"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	"github.com/rs/zerolog/log"
)

// Operations about login
type AuthController struct{ controller.AbstractController }

// @Title Login
// @Description User login
// @Success 200 {object} utils.Record
// @Failure 401 invalid credentials
// @router /login [post]
func (l *AuthController) Login() {
	db := connector.Open(nil)
	defer db.Close()
	body := l.Body()
	login := utils.GetString(body, "login")
	if login == "" {
		l.Response(nil, utils.ValidationError("AUTH : Login-Daten fehlen"))
		return
	}
	user, err := auth.Login(db, login, utils.GetString(body, "password"))
	if err != nil {
		l.Response(nil, err)
		return
	}
	token, err := auth.NewTokenServiceFromEnv().Issue(
		utils.GetInt64(user, "id"),
		utils.GetString(user, "name"),
		utils.GetString(user, "role"),
	)
	if err != nil {
		l.Response(nil, err)
		return
	}
	user["token"] = token
	log.Info().Str("user", utils.GetString(user, "name")).Msg("login")
	l.Response(utils.Results{user}, nil)
}

// @Title Logout
// @Description User logout
// @router /logout [get]
func (l *AuthController) Logout() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := l.IsAuthorized(db)
	if err != nil {
		l.Response(nil, err)
		return
	}
	log.Info().Str("user", utils.GetString(user, "name")).Msg("logout")
	l.Response(utils.Results{utils.Record{"name": user["name"]}}, nil)
}

// @Title Refresh
// @Description Exchange a valid token for a fresh one
// @router /refresh [get]
func (l *AuthController) Refresh() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := l.IsAuthorized(db)
	if err != nil {
		l.Response(nil, err)
		return
	}
	token, err := auth.NewTokenServiceFromEnv().Issue(
		utils.GetInt64(user, "id"),
		utils.GetString(user, "name"),
		utils.GetString(user, "role"),
	)
	if err != nil {
		l.Response(nil, err)
		return
	}
	user["token"] = token
	l.Response(utils.Results{user}, nil)
}
