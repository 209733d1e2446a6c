package bitvavo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"bitvavo/pkg/core"
)

// Authentication header names required on signed calls, case-sensitive.
const (
	HeaderAccessKey       = "Bitvavo-Access-Key"
	HeaderAccessSignature = "Bitvavo-Access-Signature"
	HeaderAccessTimestamp = "Bitvavo-Access-Timestamp"
	HeaderAccessWindow    = "Bitvavo-Access-Window"
)

// Signer computes the HMAC-SHA256 request signature the exchange verifies.
//
// The signature payload is `<timestamp_ms><METHOD>/v2/<resource><body>`,
// where resource is the final path including any query string and body is
// the exact compact JSON that goes on the wire. Any divergence between the
// signed bytes and the sent bytes is rejected by the exchange, so callers
// build both from the same strings.
type Signer struct {
	creds  core.Credentials
	window time.Duration
	now    func() time.Time
}

// NewSigner creates a Signer for the given credentials and validity window.
func NewSigner(creds core.Credentials, window time.Duration) *Signer {
	return &Signer{
		creds:  creds,
		window: window,
		now:    time.Now,
	}
}

// Sign captures the current timestamp, computes the signature for the
// request, and returns the four authentication headers to attach.
func (s *Signer) Sign(method, resource string, body []byte) map[string]string {
	ts := s.now().UTC().UnixMilli()
	return map[string]string{
		HeaderAccessKey:       s.creds.APIKey,
		HeaderAccessSignature: s.digest(ts, method, resource, body),
		HeaderAccessTimestamp: strconv.FormatInt(ts, 10),
		HeaderAccessWindow:    strconv.FormatInt(s.window.Milliseconds(), 10),
	}
}

func (s *Signer) digest(ts int64, method, resource string, body []byte) string {
	var payload strings.Builder
	payload.WriteString(strconv.FormatInt(ts, 10))
	payload.WriteString(method)
	payload.WriteString("/v2/")
	payload.WriteString(resource)
	if body != nil {
		payload.Write(body)
	}

	mac := hmac.New(sha256.New, []byte(s.creds.SecretKey))
	mac.Write([]byte(payload.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
