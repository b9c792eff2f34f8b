package format

import (
	"encoding/json"
	"strings"
)

// jsonapiAttributes mirrors IdentityView minus the id, which JSON:API
// carries at the resource level.
type jsonapiAttributes struct {
	PersonalName   string            `json:"personalName"`
	Context        string            `json:"context"`
	OtherNames     []string          `json:"otherNames"`
	Pronouns       *string           `json:"pronouns,omitempty"`
	Title          *string           `json:"title,omitempty"`
	AvatarURL      *string           `json:"avatarUrl,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks"`
	IsPrimary      *bool             `json:"isPrimary,omitempty"`
	IsDiscoverable *bool             `json:"isDiscoverable,omitempty"`
	CreatedAt      *string           `json:"createdAt,omitempty"`
	UpdatedAt      *string           `json:"updatedAt,omitempty"`
}

type jsonapiResource struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes jsonapiAttributes `json:"attributes"`
	Links      jsonapiLinks      `json:"links"`
}

type jsonapiLinks struct {
	Self string `json:"self"`
}

type jsonapiListMeta struct {
	Total   int     `json:"total"`
	Primary *string `json:"primary"`
	HasMore *bool   `json:"hasMore,omitempty"`
}

type jsonapiSingleDoc struct {
	Data  jsonapiResource `json:"data"`
	Links jsonapiLinks    `json:"links"`
}

type jsonapiListDoc struct {
	Data  []jsonapiResource `json:"data"`
	Meta  jsonapiListMeta   `json:"meta"`
	Links jsonapiLinks      `json:"links"`
}

type jsonapiErrorDoc struct {
	Errors []jsonapiErrorObject `json:"errors"`
}

type jsonapiErrorObject struct {
	Detail string `json:"detail"`
}

func jsonapiIdentity(v IdentityView, selfURL string) ([]byte, error) {
	return json.Marshal(jsonapiSingleDoc{
		Data:  toResource(v, selfURL),
		Links: jsonapiLinks{Self: selfURL},
	})
}

func jsonapiIdentityList(items []IdentityView, selfURL string, hasMore *bool) ([]byte, error) {
	resources := make([]jsonapiResource, 0, len(items))
	for _, v := range items {
		resources = append(resources, toResource(v, resourceSelf(selfURL, v.ID)))
	}

	return json.Marshal(jsonapiListDoc{
		Data: resources,
		Meta: jsonapiListMeta{
			Total:   len(items),
			Primary: primaryID(items),
			HasMore: hasMore,
		},
		Links: jsonapiLinks{Self: selfURL},
	})
}

func jsonapiError(message string) []byte {
	b, _ := json.Marshal(jsonapiErrorDoc{
		Errors: []jsonapiErrorObject{{Detail: message}},
	})
	return b
}

func toResource(v IdentityView, self string) jsonapiResource {
	attrs := jsonapiAttributes{
		PersonalName:   v.PersonalName,
		Context:        v.Context,
		OtherNames:     v.OtherNames,
		Pronouns:       v.Pronouns,
		Title:          v.Title,
		AvatarURL:      v.AvatarURL,
		SocialLinks:    v.SocialLinks,
		IsPrimary:      v.IsPrimary,
		IsDiscoverable: v.IsDiscoverable,
	}
	if v.CreatedAt != nil {
		s := v.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
		attrs.CreatedAt = &s
	}
	if v.UpdatedAt != nil {
		s := v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
		attrs.UpdatedAt = &s
	}

	return jsonapiResource{
		Type:       "identity",
		ID:         v.ID,
		Attributes: attrs,
		Links:      jsonapiLinks{Self: self},
	}
}

// resourceSelf derives a per-resource self link from the collection URL by
// dropping the query string and appending the resource id.
func resourceSelf(selfURL, id string) string {
	base := selfURL
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	if strings.HasSuffix(base, "/"+id) {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + id
}
