package token

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"zugzwang/internal/model"
)

// Canonical renders a subtree as a deterministic string: two trees produce
// identical strings if and only if they are structurally and semantically
// identical (same shape, same variable references, same memory targets).
// Used for the mutator's structural-difference check and for offspring
// content-hash uniqueness.
func Canonical(node *model.Node) string {
	var b strings.Builder
	writeCanonical(&b, node)
	return b.String()
}

func writeCanonical(b *strings.Builder, node *model.Node) {
	if node == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	b.WriteString(node.Kind.String())
	if node.Kind == model.NodeVariable {
		b.WriteByte(':')
		b.WriteString(node.Variable.String())
	}
	if node.Kind == model.NodeWrite {
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(node.MemoryIndex))
	}
	for _, child := range node.Args {
		b.WriteByte(' ')
		writeCanonical(b, child)
	}
	b.WriteByte(')')
}

// Fingerprint sha1-hashes a canonical string and hex-encodes the first eight
// bytes.
func Fingerprint(canonical string) string {
	sum := sha1.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}
