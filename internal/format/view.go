package format

import (
	"time"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

// IdentityView is the serialization shape shared by every output format.
// Owner-facing views carry the flags and timestamps; public views leave
// those pointers nil and the formats omit them.
type IdentityView struct {
	ID             string            `json:"id"`
	PersonalName   string            `json:"personalName"`
	Context        string            `json:"context"`
	OtherNames     []string          `json:"otherNames"`
	Pronouns       *string           `json:"pronouns,omitempty"`
	Title          *string           `json:"title,omitempty"`
	AvatarURL      *string           `json:"avatarUrl,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks"`
	IsPrimary      *bool             `json:"isPrimary,omitempty"`
	IsDiscoverable *bool             `json:"isDiscoverable,omitempty"`
	CreatedAt      *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}

// NewIdentityView builds the owner-facing view of an identity.
func NewIdentityView(identity *domain.Identity) IdentityView {
	isPrimary := identity.IsPrimary
	isDiscoverable := identity.IsDiscoverable
	createdAt := identity.CreatedAt
	updatedAt := identity.UpdatedAt
	return IdentityView{
		ID:             identity.ID.String(),
		PersonalName:   identity.PersonalName,
		Context:        identity.Context.String(),
		OtherNames:     emptyIfNil(identity.OtherNames),
		Pronouns:       identity.Pronouns,
		Title:          identity.Title,
		AvatarURL:      identity.AvatarURL,
		SocialLinks:    emptyMapIfNil(identity.SocialLinks),
		IsPrimary:      &isPrimary,
		IsDiscoverable: &isDiscoverable,
		CreatedAt:      &createdAt,
		UpdatedAt:      &updatedAt,
	}
}

// NewIdentityViews builds owner-facing views for a list.
func NewIdentityViews(identities []*domain.Identity) []IdentityView {
	views := make([]IdentityView, 0, len(identities))
	for _, identity := range identities {
		views = append(views, NewIdentityView(identity))
	}
	return views
}

// NewPublicIdentityView builds the public view: no ownership, flags or
// timestamps, matching the public projection field for field.
func NewPublicIdentityView(identity domain.PublicIdentity) IdentityView {
	return IdentityView{
		ID:           identity.ID.String(),
		PersonalName: identity.PersonalName,
		Context:      identity.Context.String(),
		OtherNames:   emptyIfNil(identity.OtherNames),
		Pronouns:     identity.Pronouns,
		Title:        identity.Title,
		AvatarURL:    identity.AvatarURL,
		SocialLinks:  emptyMapIfNil(identity.SocialLinks),
	}
}

// NewPublicIdentityViews builds public views for a list.
func NewPublicIdentityViews(identities []domain.PublicIdentity) []IdentityView {
	views := make([]IdentityView, 0, len(identities))
	for _, identity := range identities {
		views = append(views, NewPublicIdentityView(identity))
	}
	return views
}

// primaryID returns the id of the primary identity in a list, or nil when
// none is flagged. Public views never carry the flag, so public lists never
// report a primary.
func primaryID(items []IdentityView) *string {
	for _, v := range items {
		if v.IsPrimary != nil && *v.IsPrimary {
			id := v.ID
			return &id
		}
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyMapIfNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
