package domain

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Identity is one context-scoped profile owned by an account.
type Identity struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	PersonalName   string
	Context        IdentityContext
	OtherNames     []string
	Pronouns       *string
	Title          *string
	AvatarURL      *string
	SocialLinks    map[string]string
	IsPrimary      bool
	IsDiscoverable bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PublicIdentity is the discovery projection of an Identity. It is a
// separate struct rather than a redacted Identity so private fields
// (owner, discoverability, primary flag, timestamps) cannot leak by
// accident: the whitelist is enforced by construction.
type PublicIdentity struct {
	ID           uuid.UUID
	PersonalName string
	Context      IdentityContext
	OtherNames   []string
	Pronouns     *string
	Title        *string
	AvatarURL    *string
	SocialLinks  map[string]string
}

// Public returns the whitelisted projection of the identity.
func (i *Identity) Public() PublicIdentity {
	return PublicIdentity{
		ID:           i.ID,
		PersonalName: i.PersonalName,
		Context:      i.Context,
		OtherNames:   i.OtherNames,
		Pronouns:     i.Pronouns,
		Title:        i.Title,
		AvatarURL:    i.AvatarURL,
		SocialLinks:  i.SocialLinks,
	}
}

// IdentityUpdateParams carries a partial update. nil = leave unchanged.
type IdentityUpdateParams struct {
	PersonalName   *string
	Context        *IdentityContext
	OtherNames     *[]string
	Pronouns       **string
	Title          **string
	AvatarURL      **string
	SocialLinks    *map[string]string
	IsPrimary      *bool
	IsDiscoverable *bool
}

// IsZero reports whether the patch changes nothing.
func (p IdentityUpdateParams) IsZero() bool {
	return p.PersonalName == nil && p.Context == nil && p.OtherNames == nil &&
		p.Pronouns == nil && p.Title == nil && p.AvatarURL == nil &&
		p.SocialLinks == nil && p.IsPrimary == nil && p.IsDiscoverable == nil
}

// ValidateURL reports whether s is a well-formed absolute http(s) URL.
func ValidateURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
