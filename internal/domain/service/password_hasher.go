// Package service declares the ports the usecases need from infrastructure:
// hashing, tokens, media, events and QR codes.
package service

// PasswordHasher turns a password into a storable hash and verifies it later.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
