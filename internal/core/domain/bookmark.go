package domain

// BookmarkNode is a node of a bookmark tree.
// A node with a URL is a bookmark; a node without one is a folder.
type BookmarkNode struct {
	// ID is the source's identifier for the node.
	ID string

	// Title is the node name. May be empty.
	Title string

	// URL is the bookmarked address. Empty for folders.
	URL string

	// Children are the nested nodes of a folder.
	Children []*BookmarkNode
}

// IsFolder returns true if the node carries no URL.
func (n *BookmarkNode) IsFolder() bool {
	return n.URL == ""
}

// FlattenBookmarks walks the trees depth-first and returns every node
// that carries a URL, in pre-order. Folders are skipped but their
// children are still visited.
func FlattenBookmarks(roots []*BookmarkNode) []*BookmarkNode {
	var out []*BookmarkNode
	var walk func(nodes []*BookmarkNode)
	walk = func(nodes []*BookmarkNode) {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			if !n.IsFolder() {
				out = append(out, n)
			}
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}
