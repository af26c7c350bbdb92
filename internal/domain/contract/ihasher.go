package contract

// IHasher is the credential service.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString fingerprints non-password secrets such as tokens.
	HashString(s string) string
}
