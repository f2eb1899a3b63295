package assets

import _ "embed"

// DefaultCatalog is the vocabulary catalog used when no catalog file is configured.
//
//go:embed catalog/default.yml
var DefaultCatalog []byte
