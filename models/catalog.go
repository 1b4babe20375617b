package models

// RGB is a color as three 8-bit channels. Values are carried as-is; nothing
// in the pipeline clamps them.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DyeCatalogEntry represents a single dye in the remote catalog
type DyeCatalogEntry struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	RGB         RGB    `json:"rgb"`
}

// CatalogIndex maps dye IDs to their catalog entry.
// An index is never modified after it has been handed out.
type CatalogIndex map[string]DyeCatalogEntry

// Lookup returns the entry for id, treating an empty id as missing
func (c CatalogIndex) Lookup(id string) (DyeCatalogEntry, bool) {
	if id == "" {
		return DyeCatalogEntry{}, false
	}
	entry, ok := c[id]
	return entry, ok
}
