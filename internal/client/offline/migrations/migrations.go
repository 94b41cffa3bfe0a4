// Package migrations embeds the offline cache schema applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
