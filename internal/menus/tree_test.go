package menus_test

import (
	"testing"

	"github.com/eventfabrik/go-cms-nav/internal/menus"
)

func item(id int64, parentID *int64, position int) *menus.MenuItem {
	return &menus.MenuItem{
		ID:       id,
		MenuID:   1,
		ParentID: parentID,
		Label:    "item",
		Position: position,
		IsActive: true,
	}
}

func ref(id int64) *int64 {
	return &id
}

func TestBuildTree_OrdersRootsAndNestsChildren(t *testing.T) {
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(1, nil, 2),
		item(2, nil, 1),
		item(3, ref(2), 1),
	})

	if len(nodes) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(nodes))
	}
	if nodes[0].ID != 2 || nodes[1].ID != 1 {
		t.Fatalf("root order: got %d, %d", nodes[0].ID, nodes[1].ID)
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].ID != 3 {
		t.Fatalf("expected item 3 under item 2, got %+v", nodes[0].Children)
	}
	if len(nodes[1].Children) != 0 {
		t.Fatalf("expected no children under item 1")
	}
}

func TestBuildTree_TieBreaksByID(t *testing.T) {
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(9, nil, 5),
		item(3, nil, 5),
		item(7, nil, 5),
	})

	want := []int64{3, 7, 9}
	for i, id := range want {
		if nodes[i].ID != id {
			t.Fatalf("position ties must order by id: got %d at %d, want %d", nodes[i].ID, i, id)
		}
	}
}

func TestBuildTree_PromotesOrphansToRoot(t *testing.T) {
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(1, nil, 1),
		item(2, ref(99), 2),
	})

	if len(nodes) != 2 {
		t.Fatalf("orphan must surface at root, got %d roots", len(nodes))
	}
	if nodes[1].ID != 2 {
		t.Fatalf("expected orphan 2 at root, got %d", nodes[1].ID)
	}
	if nodes[1].ParentID == nil || *nodes[1].ParentID != 99 {
		t.Fatal("orphan must keep its original parent reference")
	}
}

func TestBuildTree_DeepNesting(t *testing.T) {
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(1, nil, 1),
		item(2, ref(1), 1),
		item(3, ref(2), 1),
		item(4, ref(3), 1),
	})

	if len(nodes) != 1 {
		t.Fatalf("expected single root, got %d", len(nodes))
	}
	node := nodes[0]
	for _, want := range []int64{2, 3, 4} {
		if len(node.Children) != 1 {
			t.Fatalf("expected chain to continue at %d", want)
		}
		node = node.Children[0]
		if node.ID != want {
			t.Fatalf("expected %d in chain, got %d", want, node.ID)
		}
	}
}

func TestBuildTree_BreaksCyclesDeterministically(t *testing.T) {
	// 1 and 2 reference each other; both are present so neither folds to
	// root via the orphan rule.
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(1, ref(2), 2),
		item(2, ref(1), 1),
		item(3, nil, 1),
	})

	if len(nodes) != 2 {
		t.Fatalf("expected root item plus demoted cycle head, got %d roots", len(nodes))
	}
	if nodes[0].ID != 3 {
		t.Fatalf("expected regular root first, got %d", nodes[0].ID)
	}
	// item 2 sorts ahead of item 1, so it heads the demoted subtree
	if nodes[1].ID != 2 {
		t.Fatalf("expected item 2 to head the cycle subtree, got %d", nodes[1].ID)
	}
	if len(nodes[1].Children) != 1 || nodes[1].Children[0].ID != 1 {
		t.Fatalf("expected item 1 nested under item 2, got %+v", nodes[1].Children)
	}
	if len(nodes[1].Children[0].Children) != 0 {
		t.Fatal("cycle must not recurse past its first repetition")
	}
}

func TestBuildTree_SelfReferenceBecomesRoot(t *testing.T) {
	nodes := menus.BuildTree([]*menus.MenuItem{
		item(1, ref(1), 1),
	})

	if len(nodes) != 1 || nodes[0].ID != 1 {
		t.Fatalf("self-referencing item must surface at root, got %+v", nodes)
	}
	if len(nodes[0].Children) != 0 {
		t.Fatal("self-referencing item must not become its own child")
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	if nodes := menus.BuildTree(nil); len(nodes) != 0 {
		t.Fatalf("expected empty forest, got %+v", nodes)
	}
}

func TestBuildTree_CopiesScalarFields(t *testing.T) {
	source := &menus.MenuItem{
		ID:            5,
		MenuID:        1,
		Label:         "Kontakt",
		Href:          "/kontakt",
		Icon:          "mail",
		Layout:        "detail",
		DetailTitle:   "Kontaktieren Sie uns",
		DetailText:    "Wir helfen gerne weiter.",
		DetailSubline: "Support",
		Position:      3,
		IsExternal:    true,
		Locale:        "de",
		IsActive:      true,
		IsStartpage:   true,
	}

	nodes := menus.BuildTree([]*menus.MenuItem{source})
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}
	node := nodes[0]
	if node.Label != source.Label || node.Href != source.Href || node.Icon != source.Icon {
		t.Fatalf("scalar copy mismatch: %+v", node)
	}
	if node.DetailTitle != source.DetailTitle || node.DetailText != source.DetailText || node.DetailSubline != source.DetailSubline {
		t.Fatalf("detail copy mismatch: %+v", node)
	}
	if node.Layout != source.Layout || node.Position != source.Position || node.Locale != source.Locale {
		t.Fatalf("layout copy mismatch: %+v", node)
	}
	if !node.IsExternal || !node.IsStartpage {
		t.Fatalf("flag copy mismatch: %+v", node)
	}
}
