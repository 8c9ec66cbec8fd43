// Package qrkey extracts the private key that links a relative's account to
// an elderly user's account from a scanned QR payload.
package qrkey

import (
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrEmptyPayload = errors.New("qr payload is empty")
	ErrInvalidKey   = errors.New("qr payload does not contain a valid private key")
)

const schemePrefix = "viegrand:"

var (
	keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,128}$`)
	keyFields  = []string{"private_key", "privateKey", "key"}
)

// Extract returns the private key carried by data. Accepted payloads, tried
// in order: a JSON object, a URL or deep link with a key query parameter,
// a "viegrand:<key>" string, or the bare key.
func Extract(data string) (string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", ErrEmptyPayload
	}

	candidate := data
	switch {
	case strings.HasPrefix(data, "{"):
		candidate = fromJSON(data)
	case strings.Contains(data, "://") || strings.Contains(data, "?"):
		candidate = fromURL(data)
	case strings.HasPrefix(strings.ToLower(data), schemePrefix):
		candidate = data[len(schemePrefix):]
	}

	candidate = strings.TrimSpace(candidate)
	if !keyPattern.MatchString(candidate) {
		return "", ErrInvalidKey
	}
	return candidate, nil
}

func fromJSON(data string) string {
	var obj map[string]any
	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return ""
	}
	for _, f := range keyFields {
		if v, ok := obj[f].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func fromURL(data string) string {
	u, err := url.Parse(data)
	if err != nil {
		return ""
	}
	q := u.Query()
	for _, f := range keyFields {
		if v := q.Get(f); v != "" {
			return v
		}
	}
	return ""
}
