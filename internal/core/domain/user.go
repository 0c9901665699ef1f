package domain

// Role identifies what a user is allowed to do in the approval workflow.
type Role string

const (
	RoleProjectLead    Role = "Project Lead"
	RoleCountryManager Role = "Country Manager"
	RoleAdmin          Role = "Admin"
)

// Country is the operating country a user or project belongs to.
type Country string

const (
	CountryBR Country = "BR"
	CountryGQ Country = "GQ"
	CountryCG Country = "CG"
)

// Subsidiaries maps each operating country to the short code of the legal
// entity operating there. The code becomes a segment of generated project codes.
var Subsidiaries = map[Country]string{
	CountryBR: "TEdB",
	CountryGQ: "TEGI",
	CountryCG: "TEC",
}

// User represents a workflow participant. There is no authentication: the
// acting user is a local selection passed explicitly into every operation.
type User struct {
	UserID  string  `json:"userID"` // Primary Key (UUID)
	Name    string  `json:"name"`
	Role    Role    `json:"role"`
	Country Country `json:"country"`
}
