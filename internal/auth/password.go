package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt accepts. The limit is in
// bytes, not characters.
const MaxPasswordBytes = 72

var passwordCost = bcrypt.DefaultCost

// dummyHash is compared against when a login does not exist, so an unknown
// login costs the same bcrypt round as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("inventory-backend-dummy")
	if err != nil {
		panic(err)
	}
	return hash
})

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
