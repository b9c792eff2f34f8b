package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxPronounsLen = 50
	maxOtherNames  = 20
	maxSocialLinks = 20
)

// CreateIdentityInput holds the parameters for creating an identity.
type CreateIdentityInput struct {
	PersonalName   string
	Context        domain.IdentityContext
	OtherNames     []string
	Pronouns       *string
	Title          *string
	AvatarURL      *string
	SocialLinks    map[string]string
	IsPrimary      bool
	IsDiscoverable bool
}

// Validate checks all fields and collects all errors.
func (i CreateIdentityInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.PersonalName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "personalName", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "personalName", Message: "max 200 characters"})
	}

	if !i.Context.IsValid() {
		errs = append(errs, domain.FieldError{Field: "context", Message: "must be one of: legal, work, social, gaming"})
	}

	errs = append(errs, validateOtherNames(i.OtherNames)...)
	errs = append(errs, validateSocialLinks(i.SocialLinks)...)

	if i.Pronouns != nil && len(strings.TrimSpace(*i.Pronouns)) > maxPronounsLen {
		errs = append(errs, domain.FieldError{Field: "pronouns", Message: "max 50 characters"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.AvatarURL != nil && strings.TrimSpace(*i.AvatarURL) != "" && !domain.ValidateURL(*i.AvatarURL) {
		errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "must be a valid http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateIdentityInput holds the parameters for a partial identity update.
// Nil fields are left untouched; for optional text fields a pointer to ""
// clears the stored value.
type UpdateIdentityInput struct {
	IdentityID     uuid.UUID
	PersonalName   *string
	Context        *domain.IdentityContext
	OtherNames     *[]string
	Pronouns       *string
	Title          *string
	AvatarURL      *string
	SocialLinks    *map[string]string
	IsPrimary      *bool
	IsDiscoverable *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateIdentityInput) Validate() error {
	var errs []domain.FieldError

	if i.IdentityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "identity_id", Message: "required"})
	}
	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.PersonalName != nil {
		name := strings.TrimSpace(*i.PersonalName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "personalName", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "personalName", Message: "max 200 characters"})
		}
	}
	if i.Context != nil && !i.Context.IsValid() {
		errs = append(errs, domain.FieldError{Field: "context", Message: "must be one of: legal, work, social, gaming"})
	}
	if i.OtherNames != nil {
		errs = append(errs, validateOtherNames(*i.OtherNames)...)
	}
	if i.SocialLinks != nil {
		errs = append(errs, validateSocialLinks(*i.SocialLinks)...)
	}
	if i.Pronouns != nil && len(strings.TrimSpace(*i.Pronouns)) > maxPronounsLen {
		errs = append(errs, domain.FieldError{Field: "pronouns", Message: "max 50 characters"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.AvatarURL != nil && strings.TrimSpace(*i.AvatarURL) != "" && !domain.ValidateURL(*i.AvatarURL) {
		errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "must be a valid http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateIdentityInput) isEmpty() bool {
	return i.PersonalName == nil &&
		i.Context == nil &&
		i.OtherNames == nil &&
		i.Pronouns == nil &&
		i.Title == nil &&
		i.AvatarURL == nil &&
		i.SocialLinks == nil &&
		i.IsPrimary == nil &&
		i.IsDiscoverable == nil
}

func validateOtherNames(names []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(names) > maxOtherNames {
		errs = append(errs, domain.FieldError{Field: "otherNames", Message: "max 20 entries"})
	}
	for _, n := range names {
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: "otherNames", Message: "entries must not be empty"})
			break
		}
		if len(trimmed) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "otherNames", Message: "entries max 200 characters"})
			break
		}
	}
	return errs
}

func validateSocialLinks(links map[string]string) []domain.FieldError {
	var errs []domain.FieldError
	if len(links) > maxSocialLinks {
		errs = append(errs, domain.FieldError{Field: "socialLinks", Message: "max 20 entries"})
	}
	for platform, url := range links {
		if strings.TrimSpace(platform) == "" {
			errs = append(errs, domain.FieldError{Field: "socialLinks", Message: "platform keys must not be empty"})
			break
		}
		if !domain.ValidateURL(url) {
			errs = append(errs, domain.FieldError{Field: "socialLinks", Message: "values must be valid http(s) URLs"})
			break
		}
	}
	return errs
}
