// Package translations embeds the widget display strings, one directory per
// language following the {lang}/{namespace}.json loader convention.
package translations

import "embed"

// Namespace is the single translation namespace the widget uses.
const Namespace = "widget"

//go:embed de en fr it
var FS embed.FS
