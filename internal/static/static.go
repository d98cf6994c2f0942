package static

import _ "embed"

// ContentYAML contains the embedded landing page catalog.
//
//go:embed content.yaml
var ContentYAML []byte

// IndexTemplate contains the embedded landing page template.
//
//go:embed index.html.tmpl
var IndexTemplate string
