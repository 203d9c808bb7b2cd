package core

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// reportIDAlphabet is the uppercase base-36 alphabet used for report tokens.
const reportIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// reportIDLength yields ~46 bits of entropy, far more than a single session
// can exhaust.
const reportIDLength = 9

// NewID generates a UUID identifier for sessions and invocations.
func NewID() string { return uuid.NewString() }

// NewReportID mints a short opaque report identifier by uniform sampling over
// a fixed alphabet. Two reports within one session are never expected to
// collide at this entropy.
func NewReportID() string {
	max := big.NewInt(int64(len(reportIDAlphabet)))
	b := make([]byte, reportIDLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Unreachable on supported platforms; degrade to the UUID space.
			return strings.ToUpper(uuid.NewString()[:8])
		}
		b[i] = reportIDAlphabet[n.Int64()]
	}
	return string(b)
}
