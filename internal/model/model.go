package model

// Contact is a single address-book record. The Id and Owner fields are
// assigned by the server and cannot be changed through the API.
type Contact struct {
	Id       string `json:"id"       db:"id"`
	Name     string `json:"name"     db:"name"`
	Email    string `json:"email"    db:"email"`
	Phone    string `json:"phone"    db:"phone"`
	Favorite bool   `json:"favorite" db:"favorite"`
	Owner    string `json:"owner"    db:"owner"`
}
