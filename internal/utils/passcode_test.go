package utils

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPasscode(t *testing.T) {
    hash, err := HashPasscode("orange-bicycle", bcrypt.MinCost)
    require.NoError(t, err)
    require.True(t, strings.HasPrefix(hash, "$2"))

    assert.True(t, VerifyPasscode(hash, "orange-bicycle"))
    assert.False(t, VerifyPasscode(hash, "orange-bicycle2"))
    assert.False(t, VerifyPasscode(hash, ""))
}

func TestVerifyLegacyPlaintextPasscode(t *testing.T) {
    // Rows written before hashing hold the passcode in the clear.
    assert.True(t, VerifyPasscode("orange-bicycle", "orange-bicycle"))
    assert.False(t, VerifyPasscode("orange-bicycle", "wrong"))
    assert.False(t, VerifyPasscode("", "anything"))
}
