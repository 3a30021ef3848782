// Package migrations embeds the credential store schema for every supported driver.
package migrations

import "embed"

// FS holds the postgresql/ and mysql/ migration directories.
//
//go:embed postgresql/*.sql mysql/*.sql
var FS embed.FS
