package utils

import (
    "crypto/subtle"
    "strings"

    "golang.org/x/crypto/bcrypt"
)

// HashPasscode returns the bcrypt hash of a shared passcode using the
// given cost.  Hashes are what gets written to the settings store.
func HashPasscode(plain string, cost int) (string, error) {
    b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// VerifyPasscode compares a stored passcode value against user input.
// Stored values are normally bcrypt hashes, but settings rows written
// before hashing was introduced hold the passcode in the clear; those are
// compared in constant time until an admin rotates them.
func VerifyPasscode(stored, plain string) bool {
    if strings.HasPrefix(stored, "$2") {
        return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
    }
    return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
