// Package docqa crawls a documentation site's sidebar navigation, extracts
// the section headings of every linked article, and flattens them into a
// question/answer spreadsheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, excelize/).
package docqa

// DefaultSeeds are the navigation pages whose sidebars are expanded into the
// article list.
var DefaultSeeds = []string{
	"https://docs.agora.io/cn/Voice/product_voice?platform=Web",
	"https://docs.agora.io/cn/Video/landing-page?platform=Web",
}
