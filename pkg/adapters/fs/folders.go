package fs

import (
	"strings"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/google/uuid"
)

// TokenFunc generates a fresh folder-name suffix.
type TokenFunc func() string

// UUIDToken returns a dashless random UUID.
func UUIDToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ResolveFolderNames walks f in pre-order and assigns a generated folder name
// to every basket whose current name is unusable: empty, a dot entry,
// containing a path separator, or already taken by an earlier basket. Usable
// names are left as they are, so resolving an already-resolved forest is a
// no-op. It returns how many baskets were renamed.
func ResolveFolderNames(f core.Forest, token TokenFunc) int {
	if token == nil {
		token = UUIDToken
	}
	seen := make(map[string]bool)
	renamed := 0
	_ = f.Walk(func(b *core.Basket, _ int) error {
		name := b.FolderName()
		if !usableFolderName(name) || seen[name] {
			name = FolderTokenPrefix + token()
			for seen[name] {
				name = FolderTokenPrefix + token()
			}
			b.AssignFolderName(name)
			renamed++
		}
		seen[name] = true
		return nil
	})
	return renamed
}

func usableFolderName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
