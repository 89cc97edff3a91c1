package main

import (
	"fmt"
	"os"
	"strings"

	"qareport-ws/domain/schema"
	connector "qareport-ws/infrastructure/connector/db"
	_ "qareport-ws/routers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/filter/cors"
	"github.com/matthewhartstonge/argon2"
	"github.com/rs/zerolog"
)

func main() {
	title := "  ____          _____                       _   \n"
	title += " / __ \\   /\\   |  __ \\                     | |  \n"
	title += "| |  | | /  \\  | |__) |___ _ __   ___  _ __| |_ \n"
	title += "| |  | |/ /\\ \\ |  _  // _ \\ '_ \\ / _ \\| '__| __|\n"
	title += "| |__| / ____ \\| | \\ \\  __/ |_) | (_) | |  | |_ \n"
	title += " \\___\\_\\/    \\_\\_|  \\_\\___| .__/ \\___/|_|   \\__|\n"
	title += "                          | |                   \n"
	title += "                          |_|                   "
	fmt.Printf("%s\n", title)
	for key, value := range DEFAULTCONF {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
	if os.Getenv("log") == "disable" {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	if os.Getenv("SUPERADMIN_PASSWORD") != "" {
		argon := argon2.DefaultConfig()
		hash, _ := argon.HashEncoded([]byte(os.Getenv("SUPERADMIN_PASSWORD")))
		os.Setenv("SUPERADMIN_PASSWORD", string(hash))
	}
	beego.BConfig.CopyRequestBody = true
	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	beego.SetStaticPath("/", "web")
	corsOptions := &cors.Options{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins == "*" {
		corsOptions.AllowAllOrigins = true
	} else {
		corsOptions.AllowOrigins = strings.Split(origins, ",")
	}
	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(corsOptions))
	db := connector.Open(nil)
	schema.Load(db)
	db.Close()
	fmt.Printf("%s\n", "Running server...")
	beego.Run()
}

var DEFAULTCONF = map[string]string{
	"SUPERADMIN_NAME":     "admin",
	"SUPERADMIN_PASSWORD": "admin",
	"SUPERADMIN_EMAIL":    "admin@qareport.local",
	"JWT_SECRET":          "change-me",
	"JWT_EXPIRY_HOURS":    "24",
	"SYSOP_IS_ADMIN":      "enable",
	"CORS_ORIGINS":        "*",
	"DBDRIVER":            "postgres",
	"DBHOST":              "127.0.0.1",
	"DBPORT":              "5432",
	"DBUSER":              "test",
	"DBPWD":               "test",
	"DBNAME":              "test",
	"DBSSL":               "disable",
	"log":                 "enable",
}
