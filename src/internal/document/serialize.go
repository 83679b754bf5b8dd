package document

import "github.com/horizon-nth/vault/internal/tree"

// SerializeVault renders a vault root directory as a <vault> document:
// the root's own name and attributes use the "vault" tag while every
// descendant uses "directory"/"file", matching spec.md §4.3 step 1.
func SerializeVault(root *tree.Directory) string {
	b := NewBuilder()
	b.OpenVault(root.Name(), func() {
		for _, child := range root.Children() {
			child.SerializeInto(b)
		}
	})
	return b.String()
}
