package docqa

// Product is a documentation product with its English and Chinese names.
type Product struct {
	EN string
	CN string
}

// UnknownProduct is returned for path segments missing from the product table.
// Its English name is empty so spreadsheet rows leave the product blank.
var UnknownProduct = Product{EN: "", CN: "未知产品"}

var products = map[string]Product{
	"Voice": {EN: "Audio Call", CN: "语音通话"},
	"Video": {EN: "Video Call", CN: "视频通话"},
}

// LookupProduct resolves a URL path segment to a product.
// Matching is exact and case-sensitive.
func LookupProduct(segment string) Product {
	if p, ok := products[segment]; ok {
		return p
	}
	return UnknownProduct
}
