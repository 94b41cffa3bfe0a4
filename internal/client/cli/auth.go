package cli

import (
	"context"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the remote API and
// persists the returned credential. On success the product list is
// refetched with the new credential so admin-only (inactive) products show
// up immediately.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	cred, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login failed: %s", err.Error())
		return nil
	}
	log.Printf("Logged in (role %s)", cred.User.Role)

	if _, err := a.catalogService.Load(ctx); err != nil {
		log.Printf("Error reloading products: %s", err.Error())
	}
	return nil
}

// Logout clears the persisted session slot and drops the in-memory
// credential.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		return err
	}
	log.Println("Logged out")
	return nil
}
