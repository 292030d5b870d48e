package impl

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"envybase/internal/domain/constants"
	"envybase/internal/errors"
)

const usernameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateUsername returns a random alphanumeric handle for federated signups.
func generateUsername() (string, error) {
	limit := big.NewInt(int64(len(usernameAlphabet)))
	buf := make([]byte, constants.UsernameLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random username")
		}
		buf[i] = usernameAlphabet[n.Int64()]
	}

	return string(buf), nil
}

// generateState returns an unguessable hex encoded OAuth state value.
func generateState() (string, error) {
	buf := make([]byte, constants.StateByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random state")
	}

	return hex.EncodeToString(buf), nil
}
