package format

import "encoding/json"

type jsonListEnvelope struct {
	Primary    *string        `json:"primary,omitempty"`
	Identities []IdentityView `json:"identities"`
	HasMore    *bool          `json:"hasMore,omitempty"`
}

type jsonErrorEnvelope struct {
	Error string `json:"error"`
}

func jsonIdentity(v IdentityView) ([]byte, error) {
	return json.Marshal(v)
}

func jsonIdentityList(items []IdentityView, hasMore *bool) ([]byte, error) {
	return json.Marshal(jsonListEnvelope{
		Primary:    primaryID(items),
		Identities: items,
		HasMore:    hasMore,
	})
}

func jsonError(message string) []byte {
	// Marshaling a flat string envelope cannot fail.
	b, _ := json.Marshal(jsonErrorEnvelope{Error: message})
	return b
}
