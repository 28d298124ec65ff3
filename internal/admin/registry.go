// Package admin declares which fields of each entity the administrative record
// browser lists, searches and filters on, and in which order records appear.
// Handlers consume these descriptors to build queries; the descriptors
// themselves carry no query logic.
package admin

import "sort"

// Descriptor describes one entity registration for the record browser
type Descriptor struct {
	Entity          string   `json:"entity"`
	Table           string   `json:"table"`
	ListFields      []string `json:"list_fields"`
	SearchFields    []string `json:"search_fields"`
	FilterFields    []string `json:"filter_fields"`
	ReferenceFields []string `json:"reference_fields"` // foreign keys shown as raw-id pickers
	DefaultOrder    string   `json:"default_order"`
}

var registry = map[string]Descriptor{
	"owners": {
		Entity:       "owners",
		Table:        "owners",
		ListFields:   []string{"last_name", "first_name", "email", "phone"},
		SearchFields: []string{"last_name", "first_name", "email", "phone"},
		DefaultOrder: "last_name, first_name",
	},
	"properties": {
		Entity:          "properties",
		Table:           "properties",
		ListFields:      []string{"title", "property_type", "price", "is_available"},
		FilterFields:    []string{"property_type", "is_available"},
		ReferenceFields: []string{"owner_id"},
		DefaultOrder:    "created_at DESC, id DESC",
	},
	"tenants": {
		Entity:       "tenants",
		Table:        "tenants",
		ListFields:   []string{"last_name", "first_name", "email", "phone"},
		SearchFields: []string{"last_name", "first_name", "email"},
		DefaultOrder: "last_name, first_name",
	},
	"contracts": {
		Entity:          "contracts",
		Table:           "contracts",
		ListFields:      []string{"id", "property_id", "tenant_id", "start_date", "end_date", "status"},
		FilterFields:    []string{"status"},
		ReferenceFields: []string{"property_id", "tenant_id"},
		DefaultOrder:    "start_date DESC, id DESC",
	},
	"payments": {
		Entity:          "payments",
		Table:           "payments",
		ListFields:      []string{"id", "contract_id", "amount", "payment_date", "is_confirmed"},
		FilterFields:    []string{"is_confirmed"},
		ReferenceFields: []string{"contract_id"},
		DefaultOrder:    "payment_date DESC, id DESC",
	},
}

// boolFilters are filter fields whose query values parse as booleans
var boolFilters = map[string]bool{
	"is_available": true,
	"is_confirmed": true,
}

// Lookup returns the descriptor registered under entity
func Lookup(entity string) (Descriptor, bool) {
	d, ok := registry[entity]
	return d, ok
}

// Entities returns the registered entity names in stable order
func Entities() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBoolFilter reports whether a filter field takes boolean values
func IsBoolFilter(field string) bool {
	return boolFilters[field]
}
