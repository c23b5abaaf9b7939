// internal/domain/property.go

package domain

// Sentinel values substituted when a field cannot be extracted from a listing.
const (
	NoLocation     = "Location Not Available"
	NoPropertyType = "Property Type Not Available"
	NoPrice        = "Price Not Available"
	NoSize         = "Size Not Available"
	NoBedrooms     = "Bedrooms Not Available"
	NoSoldBy       = "Sold By Not Available"
)

// Property is one extracted listing. Every field is always populated,
// either with scraped text or with its sentinel.
type Property struct {
	Location     string `json:"location"`
	PropertyType string `json:"property_type"`
	Price        string `json:"price"`
	Size         string `json:"size"`
	Bedrooms     string `json:"bedrooms"`
	SoldBy       string `json:"sold_by"`
}

// Columns returns the column headers in table and spreadsheet order.
func Columns() []string {
	return []string{"location", "property_type", "price", "size", "bedrooms", "sold_by"}
}

// Row returns the field values in the same order as Columns.
func (p Property) Row() []string {
	return []string{p.Location, p.PropertyType, p.Price, p.Size, p.Bedrooms, p.SoldBy}
}
