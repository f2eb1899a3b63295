// Package schemas embeds the MySQL migrations of the play history.
package schemas

import "embed"

// Migrations holds numbered golang-migrate files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
