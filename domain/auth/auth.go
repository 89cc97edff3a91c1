package auth

import (
	"strings"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	"github.com/matthewhartstonge/argon2"
)

// Login resolves a user by name or email and verifies the password against
// the stored argon2 hash. Deactivated accounts cannot log in.
func Login(db *connector.Database, login string, password string) (utils.Record, error) {
	login = strings.ToLower(login)
	rows, err := db.SelectQuery(schema.Users, map[string]interface{}{
		"name":  login,
		"email": login,
	}, true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.Unauthenticated("AUTH : Benutzername/E-Mail ungültig")
	}
	user := utils.Record(rows[0])
	valid, _ := argon2.VerifyEncoded([]byte(password), []byte(utils.GetString(user, "password")))
	if !valid {
		return nil, utils.Unauthenticated("AUTH : Passwort ungültig")
	}
	if !utils.GetBool(user, "is_active") {
		return nil, utils.Unauthenticated("AUTH : Konto deaktiviert")
	}
	delete(user, "password") // never send back a password in any manner
	return user, nil
}

// ResolveUser loads the user behind verified claims, rejecting stale tokens
// of deleted or deactivated accounts.
func ResolveUser(db *connector.Database, claims *Claims) (utils.Record, error) {
	rows, err := db.SelectQuery(schema.Users, map[string]interface{}{"id": claims.UserID}, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.Unauthenticated("AUTH : unbekannter Benutzer")
	}
	user := utils.Record(rows[0])
	if !utils.GetBool(user, "is_active") {
		return nil, utils.Unauthenticated("AUTH : Konto deaktiviert")
	}
	delete(user, "password")
	return user, nil
}

// HashPassword argon2-encodes a plaintext password.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	hash, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
