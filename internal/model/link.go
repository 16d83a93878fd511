package model

// LinkMapping maps a short code to its target URL.
type LinkMapping map[string]string

// Clone returns a shallow copy that can be handed to callers outside the store lock.
func (m LinkMapping) Clone() LinkMapping {
	out := make(LinkMapping, len(m))
	for code, target := range m {
		out[code] = target
	}
	return out
}

// ShortenRequest is the body accepted by POST /shorten.
type ShortenRequest struct {
	URL       string `json:"url"`
	ShortCode string `json:"shortCode,omitempty"`
}

// ShortenResponse is returned after a mapping has been stored.
type ShortenResponse struct {
	Success   bool   `json:"success"`
	ShortCode string `json:"shortCode"`
}

// ErrorResponse carries a machine-readable error for rejected payloads.
type ErrorResponse struct {
	Error string `json:"error"`
}
