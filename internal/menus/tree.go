package menus

import (
	"cmp"
	"slices"
	"strconv"
)

// rootKey is the sentinel parent key. Keeping it out of the numeric id space
// means a real item id can never collide with it.
const rootKey = "root"

// BuildTree groups a flat item batch into a parent-indexed forest and
// materializes it in sibling order (position ascending, id ascending). Items
// whose parent is not part of the batch are promoted to root. Cycles among
// present ids cannot be reached from any root; their members are demoted to
// root level in deterministic order instead of recursing forever.
func BuildTree(items []*MenuItem) []MenuNode {
	if len(items) == 0 {
		return []MenuNode{}
	}

	known := make(map[int64]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}

	children := make(map[string][]*MenuItem, len(items))
	for _, item := range items {
		key := parentKey(effectiveParent(item, known))
		children[key] = append(children[key], item)
	}
	for _, group := range children {
		sortSiblings(group)
	}

	visited := make(map[int64]struct{}, len(items))
	nodes := buildNodes(children, rootKey, visited)

	if len(visited) < len(items) {
		nodes = append(nodes, demoteCycles(items, children, visited)...)
	}
	return nodes
}

func buildNodes(children map[string][]*MenuItem, key string, visited map[int64]struct{}) []MenuNode {
	group := children[key]
	nodes := make([]MenuNode, 0, len(group))
	for _, item := range group {
		if _, seen := visited[item.ID]; seen {
			continue
		}
		visited[item.ID] = struct{}{}
		node := toNode(item)
		node.Children = buildNodes(children, parentKey(&item.ID), visited)
		nodes = append(nodes, node)
	}
	return nodes
}

// demoteCycles materializes items unreachable from any root. Each unvisited
// item starts a new root-level subtree; members already consumed by an
// earlier demotion are skipped, so every item appears exactly once.
func demoteCycles(items []*MenuItem, children map[string][]*MenuItem, visited map[int64]struct{}) []MenuNode {
	remaining := make([]*MenuItem, 0, len(items)-len(visited))
	for _, item := range items {
		if _, seen := visited[item.ID]; !seen {
			remaining = append(remaining, item)
		}
	}
	sortSiblings(remaining)

	nodes := make([]MenuNode, 0, len(remaining))
	for _, item := range remaining {
		if _, seen := visited[item.ID]; seen {
			continue
		}
		visited[item.ID] = struct{}{}
		node := toNode(item)
		node.Children = buildNodes(children, parentKey(&item.ID), visited)
		nodes = append(nodes, node)
	}
	return nodes
}

// effectiveParent folds dangling parent references to the root sentinel.
func effectiveParent(item *MenuItem, known map[int64]struct{}) *int64 {
	if item.ParentID == nil {
		return nil
	}
	if _, ok := known[*item.ParentID]; !ok {
		return nil
	}
	return item.ParentID
}

func parentKey(id *int64) string {
	if id == nil {
		return rootKey
	}
	return strconv.FormatInt(*id, 10)
}

func sortSiblings(group []*MenuItem) {
	slices.SortFunc(group, func(a, b *MenuItem) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func toNode(item *MenuItem) MenuNode {
	node := MenuNode{
		ID:            item.ID,
		Label:         item.Label,
		Href:          item.Href,
		Icon:          item.Icon,
		Layout:        item.Layout,
		DetailTitle:   item.DetailTitle,
		DetailText:    item.DetailText,
		DetailSubline: item.DetailSubline,
		Position:      item.Position,
		IsExternal:    item.IsExternal,
		Locale:        item.Locale,
		IsStartpage:   item.IsStartpage,
	}
	if item.ParentID != nil {
		parent := *item.ParentID
		node.ParentID = &parent
	}
	return node
}
