package pkg

import "golang.org/x/crypto/bcrypt"

// bcryptCost of 14 keeps a single hash check around half a second,
// slow enough to make brute forcing the admin login impractical.
const bcryptCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
