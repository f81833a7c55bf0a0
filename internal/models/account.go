package models

// AccountDB represents an account row in the database. An account groups
// wallets under one owner, for example a bank or a person.
type AccountDB struct {
	ID   int64  `json:"id" db:"id"`     // Unique account identifier
	Name string `json:"name" db:"name"` // Account name, globally unique
}
