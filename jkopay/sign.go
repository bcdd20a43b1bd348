package jkopay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload keyed by secret.
// The gateway recomputes it over the bytes it receives, so payload must be
// exactly what goes on the wire.
func Sign(payload []byte, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) digest(payload []byte) string {
	return Sign(payload, c.secretKey)
}

// marshalPayload encodes v without HTML escaping and without the trailing
// newline json.Encoder appends.
func marshalPayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
