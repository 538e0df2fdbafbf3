package models

// Supplier is a vendor record as served by the inventory API.
type Supplier struct {
	ID         int    `json:"id"`
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
}

// SupplierCount mirrors the supplier count endpoint payload.
type SupplierCount struct {
	TotalSuppliers int `json:"totalSuppliers"`
}
