// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the single durable entity in the system, representing one
// registered account. The password hash lives next to the identity fields
// because email/password is the only authentication method; it must never
// leave the service layer.
type User struct {
	ID           int64     // Surrogate key, assigned by the store on insert.
	Email        string    // Login identifier, lowercased before storage and lookup.
	PasswordHash string    // Opaque bcrypt output. Never exposed outward.
	Name         string    // Optional display label.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
