package utils // package utils provides helpers for session tokens and passcode hashing

import (
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 session token along with its
// expiry.  It is the explicit session object issued at login: the token
// carries the user's name and access level, is sent in the Authorization
// header on every request, and is cleared by the client discarding it.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a team member.  The
// claims are: subject (sub) = the user's name as entered at login,
// access = "team" or "admin", plus standard exp and iat.
func NewSessionToken(secret, userName, accessLevel string, ttlMin int) (SessionToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":    userName,
        "access": accessLevel,
        "exp":    exp.Unix(),
        "iat":    time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}
