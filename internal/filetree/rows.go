package filetree

import "strings"

// Row is one line of the explorer.
type Row struct {
	// ID is the node the row acts on: the deepest directory of a
	// compacted chain.
	ID       NodeID
	Label    string
	Depth    int
	Kind     Kind
	Expanded bool
	// Chain holds every node merged into the row, outermost first.
	Chain []NodeID
}

// Rows walks the visible part of the tree, loading directories as it
// reaches them. A non-root directory whose only child is a directory is
// shown together with that child as "a/b".
func (t *Tree) Rows() []Row {
	var rows []Row
	t.walk(t.root, 0, nil, &rows)
	return rows
}

func (t *Tree) walk(id NodeID, depth int, prefix []NodeID, rows *[]Row) {
	t.LoadChildren(id)
	n := t.get(id)
	if n == nil {
		return
	}
	if n.kind == File {
		*rows = append(*rows, Row{ID: id, Label: t.Name(id), Depth: depth, Kind: File, Chain: []NodeID{id}})
		return
	}

	chain := append(append([]NodeID(nil), prefix...), id)
	if id != t.root && len(n.children) == 1 && t.Kind(n.children[0]) == Dir {
		t.walk(n.children[0], depth, chain, rows)
		return
	}

	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = t.Name(c)
	}
	*rows = append(*rows, Row{
		ID:       id,
		Label:    strings.Join(names, "/"),
		Depth:    depth,
		Kind:     Dir,
		Expanded: n.expanded,
		Chain:    chain,
	})
	if !n.expanded {
		return
	}
	for _, c := range t.Children(id) {
		t.walk(c, depth+1, nil, rows)
	}
}
