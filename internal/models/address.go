package models

type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // "Home", "Office" or "Other"
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	Landmark  string `json:"landmark,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// AddressUpdate carries a partial update; nil fields are left untouched.
type AddressUpdate struct {
	Type      *string `json:"type,omitempty"`
	Line1     *string `json:"line1,omitempty"`
	Line2     *string `json:"line2,omitempty"`
	City      *string `json:"city,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	Landmark  *string `json:"landmark,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}
