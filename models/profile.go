package models

// FarmerProfile is the outbound payload sent to the farmer profile service
// when a farmer account with complete contact data is registered.
//
// UserID is serialized as a JSON string because the profile service stores
// account identifiers as opaque strings.
type FarmerProfile struct {
	UserID    int64  `json:"userId,string"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}
