package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// csvHeader is fixed: consumers key on positions, so the column set never
// varies with the data.
var csvHeader = []string{
	"id", "personalName", "context", "otherNames", "pronouns", "title",
	"avatarUrl", "socialLinks", "isPrimary", "createdAt", "updatedAt",
}

// csvIdentities renders identities as CSV rows. CSV has no natural way to
// express "nothing matched", so an empty list degrades to the error
// envelope.
func csvIdentities(items []IdentityView) ([]byte, error) {
	if len(items) == 0 {
		return csvError("No identities found"), nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, v := range items {
		links, err := json.Marshal(v.SocialLinks)
		if err != nil {
			return nil, err
		}
		row := []string{
			v.ID,
			escapeFormula(v.PersonalName),
			v.Context,
			escapeFormula(strings.Join(v.OtherNames, ";")),
			escapeFormula(deref(v.Pronouns)),
			escapeFormula(deref(v.Title)),
			escapeFormula(deref(v.AvatarURL)),
			escapeFormula(string(links)),
			csvBool(v.IsPrimary),
			csvTime(v.CreatedAt),
			csvTime(v.UpdatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvError always quotes the message, even when CSV quoting rules would not
// require it, so consumers can parse the envelope without sniffing.
func csvError(message string) []byte {
	quoted := strings.ReplaceAll(escapeFormula(message), `"`, `""`)
	return []byte("error\n\"" + quoted + "\"\n")
}

// escapeFormula prefixes values a spreadsheet would evaluate as formulas so
// an exported cell can never execute.
func escapeFormula(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
