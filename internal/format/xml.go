package format

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
	"time"
)

// The XML output is built by hand: encoding/xml cannot emit CDATA sections
// split around "]]>", and the contract requires every text value inside
// CDATA.

func xmlIdentity(v IdentityView) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	writeIdentityElement(&buf, v)
	return buf.Bytes()
}

func xmlIdentityList(items []IdentityView) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteString("<identities>")
	for _, v := range items {
		writeIdentityElement(&buf, v)
	}
	buf.WriteString("</identities>")
	return buf.Bytes()
}

func xmlError(message string) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteString("<response><error><message>")
	writeCData(&buf, message)
	buf.WriteString("</message></error></response>")
	return buf.Bytes()
}

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

func writeIdentityElement(buf *bytes.Buffer, v IdentityView) {
	buf.WriteString("<identity>")

	writeLeaf(buf, "id", v.ID)
	writeLeaf(buf, "personalName", v.PersonalName)
	writeLeaf(buf, "context", v.Context)

	if len(v.OtherNames) > 0 {
		buf.WriteString("<otherNames>")
		for _, name := range v.OtherNames {
			writeLeaf(buf, "name", name)
		}
		buf.WriteString("</otherNames>")
	}

	if v.Pronouns != nil {
		writeLeaf(buf, "pronouns", *v.Pronouns)
	}
	if v.Title != nil {
		writeLeaf(buf, "title", *v.Title)
	}
	if v.AvatarURL != nil {
		writeLeaf(buf, "avatarUrl", *v.AvatarURL)
	}

	if len(v.SocialLinks) > 0 {
		buf.WriteString("<socialLinks>")
		for _, platform := range sortedKeys(v.SocialLinks) {
			buf.WriteString(`<link platform="`)
			buf.WriteString(escapeAttr(platform))
			buf.WriteString(`">`)
			writeCData(buf, v.SocialLinks[platform])
			buf.WriteString("</link>")
		}
		buf.WriteString("</socialLinks>")
	}

	if v.IsPrimary != nil {
		writeLeaf(buf, "isPrimary", strconv.FormatBool(*v.IsPrimary))
	}
	if v.IsDiscoverable != nil {
		writeLeaf(buf, "isDiscoverable", strconv.FormatBool(*v.IsDiscoverable))
	}
	if v.CreatedAt != nil {
		writeLeaf(buf, "createdAt", v.CreatedAt.Format(time.RFC3339))
	}
	if v.UpdatedAt != nil {
		writeLeaf(buf, "updatedAt", v.UpdatedAt.Format(time.RFC3339))
	}

	buf.WriteString("</identity>")
}

func writeLeaf(buf *bytes.Buffer, name, value string) {
	buf.WriteByte('<')
	buf.WriteString(name)
	buf.WriteByte('>')
	writeCData(buf, value)
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

// writeCData wraps value in a CDATA section. A literal "]]>" inside the
// value would terminate the section early, so it is split across two
// adjacent sections at that point.
func writeCData(buf *bytes.Buffer, value string) {
	buf.WriteString("<![CDATA[")
	buf.WriteString(strings.ReplaceAll(value, "]]>", "]]]]><![CDATA[>"))
	buf.WriteString("]]>")
}

// escapeAttr entity-escapes an attribute value; CDATA is not available in
// attribute position.
func escapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
