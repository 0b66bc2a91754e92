package order

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var alphabetSize = big.NewInt(int64(len(idAlphabet)))

// NewOrderID builds ORD-<user prefix>-<base36 millis>-<6 random chars>.
// It is human-greppable, not a secret.
func NewOrderID(userID string, now time.Time) string {
	prefix := []rune(userID)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	var b strings.Builder
	b.WriteString("ORD-")
	b.WriteString(string(prefix))
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteByte('-')
	b.WriteString(randomSuffix(6))
	return b.String()
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		buf[i] = idAlphabet[idx.Int64()]
	}
	return string(buf)
}
