package domain

// IdentityContext is the scope a profile applies to.
type IdentityContext string

const (
	ContextLegal  IdentityContext = "legal"
	ContextWork   IdentityContext = "work"
	ContextSocial IdentityContext = "social"
	ContextGaming IdentityContext = "gaming"
)

func (c IdentityContext) String() string { return string(c) }

func (c IdentityContext) IsValid() bool {
	switch c {
	case ContextLegal, ContextWork, ContextSocial, ContextGaming:
		return true
	}
	return false
}

// IdentityContexts lists all valid contexts in display order.
func IdentityContexts() []IdentityContext {
	return []IdentityContext{ContextLegal, ContextWork, ContextSocial, ContextGaming}
}

// AuditOperation is the kind of action recorded in the audit log.
// Values match the wire format stored in the audit_log table.
type AuditOperation string

const (
	AuditOpCreate          AuditOperation = "create"
	AuditOpUpdate          AuditOperation = "update"
	AuditOpDelete          AuditOperation = "delete"
	AuditOpSetPrimary      AuditOperation = "set-primary"
	AuditOpCrossUserAccess AuditOperation = "cross-user-access"
)

func (o AuditOperation) String() string { return string(o) }

func (o AuditOperation) IsValid() bool {
	switch o {
	case AuditOpCreate, AuditOpUpdate, AuditOpDelete, AuditOpSetPrimary, AuditOpCrossUserAccess:
		return true
	}
	return false
}

// AuditEntityIdentity is the only entity kind the audit log currently records.
const AuditEntityIdentity = "identity"
