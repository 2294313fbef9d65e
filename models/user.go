package models

// User is the persisted user record. It is stored under the "users"
// category and keyed by Phone.
//
// HashedPassword is the Secret Hasher output and must never leave the
// service boundary: read paths return [PublicUser] instead.
type User struct {
	// FirstName is the trimmed, non-empty given name.
	FirstName string `json:"firstName"`

	// LastName is the trimmed, non-empty family name.
	LastName string `json:"lastName"`

	// Phone is the 10-character identity key. It never changes after creation.
	Phone string `json:"phone"`

	// HashedPassword is the hashed credential.
	HashedPassword string `json:"hashedPassword"`

	// TosAgreement is always true for a stored record.
	TosAgreement bool `json:"tosAgreement"`
}

// PublicUser is the read representation of [User] without the credential.
type PublicUser struct {
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	Phone        string `json:"phone" yaml:"phone"`
	TosAgreement bool   `json:"tosAgreement" yaml:"tosAgreement"`
}

// Public strips the hashed credential from the record.
func (u User) Public() PublicUser {
	return PublicUser{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		TosAgreement: u.TosAgreement,
	}
}

// Category returns the record store category users are persisted under.
func (u User) Category() string {
	return UsersCategory
}

// UsersCategory is the record store category of [User] records.
const UsersCategory = "users"
