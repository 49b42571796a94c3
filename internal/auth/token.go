package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"

	"github.com/joestump/worklog/internal/config"
)

// NewPasswordToken derives the API bearer token from the account password:
// the lowercase hex MD5 digest. Existing clients compute the same value.
func NewPasswordToken(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ValidateLogin reports whether username and password match the configured account.
func ValidateLogin(account config.Account, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(account.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1
	return userOK && passOK
}
