// Package model exposes the wire representation of the service's resources
// for API clients outside this repository.
package model

// Contact is an address-book record as returned by the REST API.
type Contact struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
	Owner    string `json:"owner"`
}
