// Package format renders identity payloads in the representation a client
// asked for: plain JSON, JSON:API, CSV or XML. It is pure; transport
// concerns like status codes stay in the handlers.
package format

import "strings"

// Format identifies one of the supported output representations.
type Format string

const (
	JSON    Format = "json"
	JSONAPI Format = "jsonapi"
	CSV     Format = "csv"
	XML     Format = "xml"
)

// Negotiate picks the output format from an Accept preference string.
// Matching is by substring, first hit in a fixed priority order; anything
// unrecognized falls back to plain JSON.
func Negotiate(accept string) Format {
	switch {
	case strings.Contains(accept, "application/vnd.api+json"):
		return JSONAPI
	case strings.Contains(accept, "text/csv"):
		return CSV
	case strings.Contains(accept, "application/xml"):
		return XML
	default:
		return JSON
	}
}

// ContentType returns the response Content-Type for a format.
func ContentType(f Format) string {
	switch f {
	case JSONAPI:
		return "application/vnd.api+json"
	case CSV:
		return "text/csv; charset=utf-8"
	case XML:
		return "application/xml; charset=utf-8"
	default:
		return "application/json"
	}
}

// MarshalIdentity renders a single identity.
func MarshalIdentity(f Format, v IdentityView, selfURL string) ([]byte, error) {
	switch f {
	case JSONAPI:
		return jsonapiIdentity(v, selfURL)
	case CSV:
		return csvIdentities([]IdentityView{v})
	case XML:
		return xmlIdentity(v), nil
	default:
		return jsonIdentity(v)
	}
}

// MarshalIdentityList renders a list of identities. hasMore, when non-nil,
// is surfaced by the formats that can carry it (JSON and JSON:API).
func MarshalIdentityList(f Format, items []IdentityView, selfURL string, hasMore *bool) ([]byte, error) {
	switch f {
	case JSONAPI:
		return jsonapiIdentityList(items, selfURL, hasMore)
	case CSV:
		return csvIdentities(items)
	case XML:
		return xmlIdentityList(items), nil
	default:
		return jsonIdentityList(items, hasMore)
	}
}

// MarshalError renders an error message in the negotiated format so that
// failed requests degrade the same way successful ones render.
func MarshalError(f Format, message string) []byte {
	switch f {
	case JSONAPI:
		return jsonapiError(message)
	case CSV:
		return csvError(message)
	case XML:
		return xmlError(message)
	default:
		return jsonError(message)
	}
}
