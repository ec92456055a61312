// Where: internal/model/ref.go
// What: Model reference type and list parsing.
// Why: Keep artifact naming rules in one place for descriptor and checks.
package model

import "strings"

// LabelPrefix is prepended to every per-model image label key.
const LabelPrefix = "ai.modelbake.model."

// Ref identifies a downloadable model artifact, usually in org/name form.
// Deeper paths are allowed; the last path segment names the artifact
// directory inside the image.
type Ref string

// SplitList splits a comma-separated model list into an ordered sequence.
// Entries are passed through verbatim: no trimming, no deduplication, and
// empty entries survive the split. Callers reject empty entries before any
// engine invocation.
func SplitList(list string) []Ref {
	parts := strings.Split(list, ",")
	refs := make([]Ref, len(parts))
	for i, part := range parts {
		refs[i] = Ref(part)
	}
	return refs
}

func (r Ref) String() string {
	return string(r)
}

// Dir returns the artifact directory name for the reference: the last
// /-separated segment. A bare name maps to itself.
func (r Ref) Dir() string {
	s := string(r)
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// LabelKey returns the image label key for the reference. Slashes are not
// valid in label keys, so every "/" becomes ".".
func (r Ref) LabelKey() string {
	return LabelPrefix + strings.ReplaceAll(string(r), "/", ".")
}

// Empty reports whether the reference carries no usable name, which happens
// when the input list contains stray commas.
func (r Ref) Empty() bool {
	return strings.TrimSpace(string(r)) == ""
}
