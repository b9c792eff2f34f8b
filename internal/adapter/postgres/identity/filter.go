package identity

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

// searchFilter narrows a discovery search. context is mandatory; query is an
// optional case-insensitive substring matched against personal_name, title
// and other_names. The caller is responsible for clamping limit.
type searchFilter struct {
	context domain.IdentityContext
	query   *string
	limit   int
}

func (f searchFilter) toQuery() sq.SelectBuilder {
	query := builder.Select(identityColumns).
		From("identities").
		Where("is_discoverable").
		Where(sq.Eq{"context": string(f.context)}).
		OrderBy("created_at DESC").
		Limit(uint64(f.limit))

	if f.query != nil && *f.query != "" {
		pattern := "%" + escapeLike(*f.query) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"personal_name": pattern},
			sq.ILike{"title": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM unnest(other_names) AS n WHERE n ILIKE ?)", pattern),
		})
	}

	return query
}

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
