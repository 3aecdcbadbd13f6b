package tsvutil

import (
	"path"
	"strings"
)

// PathRewrite rewrites manifest audio paths: duplicate slashes are collapsed,
// a matching OldRoot prefix is swapped for NewRoot, and the final segment's
// extension is forced to ForceExt.
//
// When OldRoot is not a prefix of the path, the FallbackOld substring is
// replaced with FallbackNew instead. Paths containing neither come through
// with only slash and extension normalization; the fallback is a documented
// heuristic, not a strict match.
type PathRewrite struct {
	OldRoot  string
	NewRoot  string
	ForceExt string

	FallbackOld string
	FallbackNew string
}

// Apply rewrites one path. Empty input (after trimming) is returned as is.
func (p PathRewrite) Apply(raw string) string {
	original := strings.TrimSpace(raw)
	if original == "" {
		return original
	}

	oldRoot := NormalizePath(strings.TrimRight(p.OldRoot, "/"))
	newRoot := NormalizePath(strings.TrimRight(p.NewRoot, "/"))
	normalized := NormalizePath(original)

	var replaced string
	if oldRoot != "" && strings.HasPrefix(normalized, oldRoot) {
		replaced = newRoot + normalized[len(oldRoot):]
	} else if p.FallbackOld != "" {
		replaced = strings.ReplaceAll(normalized, p.FallbackOld, p.FallbackNew)
	} else {
		replaced = normalized
	}

	if p.ForceExt != "" {
		dir, base := path.Split(replaced)
		stem := strings.TrimSuffix(base, path.Ext(base))
		if stem == "" {
			// Dotfiles have no extension to strip.
			stem = base
		}
		replaced = dir + stem + p.ForceExt
	}

	return NormalizePath(replaced)
}

// NormalizePath collapses repeated slashes while preserving a leading "/" or
// "//". Relative paths stay relative.
func NormalizePath(p string) string {
	var prefix, rest string
	switch {
	case strings.HasPrefix(p, "//"):
		prefix, rest = "//", p[2:]
	case strings.HasPrefix(p, "/"):
		prefix, rest = "/", p[1:]
	default:
		rest = p
	}
	segments := strings.Split(rest, "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg != "" {
			kept = append(kept, seg)
		}
	}
	return prefix + strings.Join(kept, "/")
}
