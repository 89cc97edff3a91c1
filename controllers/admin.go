package controllers

import (
	"qareport-ws/controllers/controller"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// Administrative operations: test data generation and the archive trail
type AdminController struct{ controller.AbstractController }

func (c *AdminController) elevated(db *connector.Database) (utils.Record, error) {
	user, err := c.IsAuthorized(db)
	if err != nil {
		return nil, err
	}
	if !policy.New(db).IsElevated(c.Subject(user)) {
		return nil, utils.Forbidden("erfordert Administratorrechte")
	}
	return user, nil
}

// @router /generate-test-data [post]
func (c *AdminController) GenerateTestData() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.elevated(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	body := c.Body()
	counts, err := qa.NewSeeder(db).Generate(
		utils.GetInt64(body, "company_count"),
		utils.GetInt64(body, "tests_per_company"),
		utils.GetInt64(user, "id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	controller.Notify(schema.Projects, "create", 0)
	c.Created(counts, nil)
}

// @router /archives [get]
func (c *AdminController) Archives() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.elevated(db); err != nil {
		c.Response(nil, err)
		return
	}
	restrictions := map[string]interface{}{}
	if entity := c.Ctx.Input.Query("entity"); entity != "" {
		restrictions["entity"] = entity
	}
	rows, err := db.SelectOrderedQuery(schema.Archives, restrictions, "id DESC")
	c.Response(utils.ToResult(rows), err)
}
