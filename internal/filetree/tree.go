// Package filetree models the explorer: a lazily loaded directory tree
// stored in an arena and addressed by NodeID.
package filetree

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"codeshell/internal/log"
	"codeshell/internal/platform"

	"github.com/gobwas/glob"
)

// NodeID addresses a node in a Tree.
type NodeID int

// NoNode is the parent of the root and the result of failed lookups.
const NoNode NodeID = -1

// Kind orders directories before files.
type Kind int

const (
	Dir Kind = iota
	File
)

func (k Kind) String() string {
	if k == Dir {
		return "dir"
	}
	return "file"
}

// LoadState tracks whether a directory has been listed.
type LoadState int

const (
	Unloaded LoadState = iota
	Loading
	Loaded
)

type node struct {
	kind     Kind
	path     string
	parent   NodeID
	children []NodeID
	expanded bool
	state    LoadState
	detached bool
}

// Tree is the explorer model for one opened folder.
type Tree struct {
	nodes      []node
	root       NodeID
	fs         platform.FileSystem
	exclude    []glob.Glob
	showHidden bool
}

// Option configures a Tree.
type Option func(*Tree) error

// WithFileSystem lists directories through fs instead of the local disk.
func WithFileSystem(fs platform.FileSystem) Option {
	return func(t *Tree) error {
		t.fs = fs
		return nil
	}
}

// WithExclude hides entries whose base name matches one of the globs.
func WithExclude(patterns ...string) Option {
	return func(t *Tree) error {
		for _, p := range patterns {
			g, err := glob.Compile(p)
			if err != nil {
				return err
			}
			t.exclude = append(t.exclude, g)
		}
		return nil
	}
}

// WithShowHidden controls whether dot files are listed.
func WithShowHidden(show bool) Option {
	return func(t *Tree) error {
		t.showHidden = show
		return nil
	}
}

// New creates a tree whose root is an expanded, unloaded directory. A
// relative root is resolved against the working directory.
func New(root string, opts ...Option) (*Tree, error) {
	t := &Tree{fs: platform.OSFileSystem{}, showHidden: true}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	t.root = t.add(node{kind: Dir, path: filepath.Clean(root), parent: NoNode, expanded: true})
	return t, nil
}

func (t *Tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || t.nodes[id].detached {
		return nil
	}
	return &t.nodes[id]
}

// Root returns the root directory.
func (t *Tree) Root() NodeID { return t.root }

// RootPath returns the folder the tree was opened on.
func (t *Tree) RootPath() string { return t.nodes[t.root].path }

// Valid reports whether id addresses a live node.
func (t *Tree) Valid(id NodeID) bool { return t.get(id) != nil }

func (t *Tree) Kind(id NodeID) Kind {
	if n := t.get(id); n != nil {
		return n.kind
	}
	return File
}

func (t *Tree) Path(id NodeID) string {
	if n := t.get(id); n != nil {
		return n.path
	}
	return ""
}

func (t *Tree) Name(id NodeID) string {
	if n := t.get(id); n != nil {
		return filepath.Base(n.path)
	}
	return ""
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// Children returns the ordered children of id.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.get(id); n != nil {
		return slices.Clone(n.children)
	}
	return nil
}

func (t *Tree) IsExpanded(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.expanded
}

func (t *Tree) State(id NodeID) LoadState {
	if n := t.get(id); n != nil {
		return n.state
	}
	return Unloaded
}

// Len counts the live nodes.
func (t *Tree) Len() int {
	count := 0
	for _, n := range t.nodes {
		if !n.detached {
			count++
		}
	}
	return count
}

// Find returns the live node at path.
func (t *Tree) Find(path string) NodeID {
	path = filepath.Clean(path)
	for i, n := range t.nodes {
		if !n.detached && n.path == path {
			return NodeID(i)
		}
	}
	return NoNode
}

// Expand sets the expansion of a directory. Files are left alone.
func (t *Tree) Expand(id NodeID, expanded bool) {
	if n := t.get(id); n != nil && n.kind == Dir {
		n.expanded = expanded
	}
}

// Toggle flips the expansion of a directory.
func (t *Tree) Toggle(id NodeID) {
	t.Expand(id, !t.IsExpanded(id))
}

// NeedLoadChildren reports whether id is a directory that was never listed.
func (t *Tree) NeedLoadChildren(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.kind == Dir && n.state == Unloaded
}

// LoadChildren lists an expanded, unloaded directory. Listing errors
// leave it loaded with no children.
func (t *Tree) LoadChildren(id NodeID) {
	n := t.get(id)
	if n == nil || n.kind != Dir || !n.expanded || n.state != Unloaded {
		return
	}
	n.state = Loading
	dir := n.path

	entries, err := t.fs.ReadDir(dir)
	if err != nil {
		log.LogWithFields(log.F("path", dir), log.F("error", err.Error())).Debug("Cannot list directory")
	}

	var kids []node
	for _, e := range entries {
		var kind Kind
		switch {
		case e.Type().IsDir():
			kind = Dir
		case e.Type().IsRegular():
			kind = File
		default:
			continue
		}
		if t.hidden(e.Name()) {
			continue
		}
		kids = append(kids, node{kind: kind, path: filepath.Join(dir, e.Name()), parent: id})
	}
	slices.SortFunc(kids, func(a, b node) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})
	kids = slices.CompactFunc(kids, func(a, b node) bool { return a.kind == b.kind && a.path == b.path })

	children := make([]NodeID, 0, len(kids))
	for _, k := range kids {
		children = append(children, t.add(k))
	}
	// t.add may have moved the arena.
	n = &t.nodes[id]
	n.children = children
	n.state = Loaded
}

func (t *Tree) hidden(name string) bool {
	if !t.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range t.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Refresh drops the listing of a directory so it is read again on the
// next load. Ids of the dropped subtree stop being valid.
func (t *Tree) Refresh(id NodeID) {
	n := t.get(id)
	if n == nil || n.kind != Dir {
		return
	}
	for _, c := range n.children {
		t.detach(c)
	}
	n.children = nil
	n.state = Unloaded
}

func (t *Tree) detach(id NodeID) {
	n := &t.nodes[id]
	n.detached = true
	for _, c := range n.children {
		t.detach(c)
	}
}
