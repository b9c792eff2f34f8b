package search

import (
	"strings"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

// SearchInput holds the parameters for a discovery search. Limit 0 means
// "use the service default".
type SearchInput struct {
	Context domain.IdentityContext
	Query   *string
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(string(i.Context)) == "" {
		errs = append(errs, domain.FieldError{Field: "context", Message: "required"})
	} else if !i.Context.IsValid() {
		errs = append(errs, domain.FieldError{Field: "context", Message: "must be one of: legal, work, social, gaming"})
	}

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result is one page of discovery matches. HasMore reports whether another
// page exists beyond this one.
type Result struct {
	Identities []domain.PublicIdentity
	HasMore    bool
}
