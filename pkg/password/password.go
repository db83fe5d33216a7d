package password

import "golang.org/x/crypto/bcrypt"

// hashCost matches bcrypt.DefaultCost; pinned so a library default bump
// cannot silently change stored-hash cost.
const hashCost = 10

// Hash returns the bcrypt digest of a plaintext password.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored bcrypt digest.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
