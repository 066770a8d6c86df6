// Package model defines the household bill tracking domain types.
package model

// Member represents a household participant. Members are referenced by
// bills through their ID; a bill may reference a member that has since
// been removed, and such dangling references are tolerated.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
