package shortlinks

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/sunar87/foodgram/foodgram/config"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomToken returns config.ShortLinkTokenLength ASCII letters.
func randomToken() (string, error) {
	buf := make([]byte, config.ShortLinkTokenLength)
	max := big.NewInt(int64(len(letters)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		buf[i] = letters[n.Int64()]
	}
	return string(buf), nil
}
