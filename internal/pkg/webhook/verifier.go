package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"noteverse-be/internal/pkg/apperr"
)

// Header names used by the identity provider's webhook transport.
const (
	HeaderId        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

const secretPrefix = "whsec_"

// DefaultTolerance bounds the accepted clock skew on the timestamp header.
const DefaultTolerance = 5 * time.Minute

// Verifier checks the provider's HMAC-SHA256 webhook signatures: the signed
// content is "{id}.{timestamp}.{body}" keyed with the base64-decoded signing
// secret, and the signature header carries one or more space-separated
// "v1,<base64 mac>" entries, any of which may match.
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook signing secret is empty")
	}
	raw := strings.TrimPrefix(secret, secretPrefix)
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode webhook signing secret: %w", err)
	}
	return &Verifier{key: key, tolerance: DefaultTolerance, now: time.Now}, nil
}

// Verify returns nil only for an authentic, fresh payload. Every failure is a
// ValidationError so the handler can answer 400 without touching state.
func (v *Verifier) Verify(payload []byte, msgId, timestamp, signatures string) error {
	if msgId == "" || timestamp == "" || signatures == "" {
		return apperr.NewValidation("missing webhook signature headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return apperr.NewValidation("malformed webhook timestamp")
	}
	sent := time.Unix(ts, 0)
	if d := v.now().Sub(sent); d > v.tolerance || d < -v.tolerance {
		return apperr.NewValidation("webhook timestamp outside tolerance")
	}

	expected := v.sign(msgId, timestamp, payload)
	for _, part := range strings.Split(signatures, " ") {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return apperr.NewValidation("webhook signature mismatch")
}

func (v *Verifier) sign(msgId, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", msgId, timestamp)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
