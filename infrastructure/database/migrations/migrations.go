package migrations

import "embed"

// FS contém os arquivos SQL lidos pelo driver iofs do golang-migrate
//
//go:embed *.sql
var FS embed.FS

const Version = 1
