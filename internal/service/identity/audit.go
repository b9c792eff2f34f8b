package identity

import "github.com/heartmarshall/personas-backend/internal/domain"

// auditSnapshot flattens an identity into the audit changes payload. All
// fields are included so the audit trail can reconstruct the record as it
// stood at the time of the operation.
func auditSnapshot(identity *domain.Identity) map[string]any {
	return map[string]any{
		"id":             identity.ID.String(),
		"personalName":   identity.PersonalName,
		"context":        identity.Context.String(),
		"otherNames":     identity.OtherNames,
		"pronouns":       identity.Pronouns,
		"title":          identity.Title,
		"avatarUrl":      identity.AvatarURL,
		"socialLinks":    identity.SocialLinks,
		"isPrimary":      identity.IsPrimary,
		"isDiscoverable": identity.IsDiscoverable,
		"createdAt":      identity.CreatedAt,
		"updatedAt":      identity.UpdatedAt,
	}
}
