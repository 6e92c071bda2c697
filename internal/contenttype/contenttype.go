// Package contenttype parses MIME-style content types leniently, the way
// they appear in HTTP headers and container metadata.
package contenttype

import (
	"maps"
	"slices"
	"strings"

	"github.com/simonhull/commontags/internal/types"
)

// ContentType is a parsed content type. Type, Subtype, Suffix and
// parameter names are lowercase; parameter values keep their case.
type ContentType struct {
	Type       string            `json:"type"`
	Subtype    string            `json:"subtype"`
	Suffix     string            `json:"suffix,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// Parse parses a content type such as `Text/HTML; charset="utf-8"` or
// `application/xhtml+xml`.
//
// The head before the first ';' must contain a '/', or Parse returns a
// *types.MalformedContentTypeError. A '+' in the subtype splits off a
// structured syntax suffix at its last occurrence. Parameter segments
// split at their first '='; one pair of surrounding double quotes is
// removed from the value, and a repeated name keeps its last value.
// Segments without '=' are ignored.
func Parse(raw string) (ContentType, error) {
	head, params, _ := strings.Cut(raw, ";")

	typ, sub, ok := strings.Cut(head, "/")
	if !ok {
		return ContentType{}, &types.MalformedContentTypeError{Raw: raw}
	}

	ct := ContentType{
		Type:    strings.ToLower(strings.TrimSpace(typ)),
		Subtype: strings.ToLower(strings.TrimSpace(sub)),
	}
	if i := strings.LastIndexByte(ct.Subtype, '+'); i >= 0 {
		ct.Subtype, ct.Suffix = ct.Subtype[:i], ct.Subtype[i+1:]
	}

	if params == "" {
		return ct, nil
	}
	for _, seg := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if ct.Parameters == nil {
			ct.Parameters = make(map[string]string)
		}
		ct.Parameters[key] = unquote(strings.TrimSpace(value))
	}
	return ct, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// MediaType returns "type/subtype", with "+suffix" when present.
func (ct ContentType) MediaType() string {
	if ct.Suffix != "" {
		return ct.Type + "/" + ct.Subtype + "+" + ct.Suffix
	}
	return ct.Type + "/" + ct.Subtype
}

// Param returns the value of a parameter. Names are case-insensitive.
func (ct ContentType) Param(name string) (string, bool) {
	v, ok := ct.Parameters[strings.ToLower(name)]
	return v, ok
}

// String renders the content type with parameters sorted by name. Values
// containing separators are quoted.
func (ct ContentType) String() string {
	var b strings.Builder
	b.WriteString(ct.MediaType())
	for _, k := range slices.Sorted(maps.Keys(ct.Parameters)) {
		v := ct.Parameters[k]
		b.WriteString("; ")
		b.WriteString(k)
		b.WriteByte('=')
		if v == "" || strings.ContainsAny(v, " ;=\t\"") {
			b.WriteString(`"` + v + `"`)
		} else {
			b.WriteString(v)
		}
	}
	return b.String()
}
