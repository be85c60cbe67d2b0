package menus

import (
	"context"
	"strconv"
	"sync"
)

// MemoryStore is an in-memory AdminStore used by tests and bootstrap
// scenarios. Records are cloned on the way in and out so callers can never
// mutate shared state.
type MemoryStore struct {
	mu          sync.RWMutex
	menus       map[int64]*Menu
	items       map[int64]*MenuItem
	assignments map[int64]*MenuAssignment
	nextID      int64
}

var _ AdminStore = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menus:       make(map[int64]*Menu),
		items:       make(map[int64]*MenuItem),
		assignments: make(map[int64]*MenuAssignment),
	}
}

func (m *MemoryStore) allocateID(id int64) int64 {
	if id > 0 {
		if id > m.nextID {
			m.nextID = id
		}
		return id
	}
	m.nextID++
	return m.nextID
}

func (m *MemoryStore) CreateMenu(_ context.Context, menu *Menu) (*Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneMenu(menu)
	cloned.ID = m.allocateID(cloned.ID)
	m.menus[cloned.ID] = cloned
	return cloneMenu(cloned), nil
}

func (m *MemoryStore) UpdateMenu(_ context.Context, menu *Menu) (*Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.menus[menu.ID]
	if !ok || existing.Namespace != menu.Namespace {
		return nil, &NotFoundError{Resource: "menu", Key: strconv.FormatInt(menu.ID, 10)}
	}
	cloned := cloneMenu(menu)
	m.menus[cloned.ID] = cloned
	return cloneMenu(cloned), nil
}

func (m *MemoryStore) GetMenuByID(_ context.Context, ns string, id int64) (*Menu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.menus[id]
	if !ok || record.Namespace != ns {
		return nil, &NotFoundError{Resource: "menu", Key: strconv.FormatInt(id, 10)}
	}
	return cloneMenu(record), nil
}

func (m *MemoryStore) GetMenuItemByID(_ context.Context, ns string, id int64) (*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.items[id]
	if !ok || record.Namespace != ns {
		return nil, &NotFoundError{Resource: "menu_item", Key: strconv.FormatInt(id, 10)}
	}
	return cloneMenuItem(record), nil
}

func (m *MemoryStore) CreateMenuItem(_ context.Context, item *MenuItem) (*MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneMenuItem(item)
	cloned.ID = m.allocateID(cloned.ID)
	m.items[cloned.ID] = cloned
	return cloneMenuItem(cloned), nil
}

func (m *MemoryStore) CreateAssignment(_ context.Context, assignment *MenuAssignment) (*MenuAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneAssignment(assignment)
	cloned.ID = m.allocateID(cloned.ID)
	m.assignments[cloned.ID] = cloned
	return cloneAssignment(cloned), nil
}

func (m *MemoryStore) DeleteAssignment(_ context.Context, ns string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.assignments[id]
	if !ok || record.Namespace != ns {
		return &NotFoundError{Resource: "menu_assignment", Key: strconv.FormatInt(id, 10)}
	}
	delete(m.assignments, id)
	return nil
}

func (m *MemoryStore) GetAssignmentForSlot(_ context.Context, ns, slot, locale string, pageID *int64, onlyActive bool) (*MenuAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var match *MenuAssignment
	for _, record := range m.assignments {
		if record.Namespace != ns || record.Slot != slot || record.Locale != locale {
			continue
		}
		if !pageScopeEqual(record.PageID, pageID) {
			continue
		}
		if onlyActive && !record.IsActive {
			continue
		}
		// lowest id wins so repeated calls are deterministic
		if match == nil || record.ID < match.ID {
			match = record
		}
	}
	if match == nil {
		return nil, &NotFoundError{Resource: "menu_assignment", Key: ns + "/" + slot}
	}
	return cloneAssignment(match), nil
}

func (m *MemoryStore) HasAssignmentsForSlot(_ context.Context, ns, slot string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.assignments {
		if record.Namespace == ns && record.Slot == slot {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) GetMenuItemsForMenu(_ context.Context, ns string, menuID int64, locale string, onlyActive bool) ([]*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*MenuItem, 0)
	for _, record := range m.items {
		if record.Namespace != ns || record.MenuID != menuID || record.Locale != locale {
			continue
		}
		if onlyActive && !record.IsActive {
			continue
		}
		records = append(records, cloneMenuItem(record))
	}
	sortSiblings(records)
	return records, nil
}

// MemoryLegacyProvider serves canned legacy menus keyed by namespace/locale.
type MemoryLegacyProvider struct {
	mu    sync.RWMutex
	menus map[string][]MenuNode
}

var _ LegacyMenuProvider = (*MemoryLegacyProvider)(nil)

// NewMemoryLegacyProvider constructs an empty legacy provider.
func NewMemoryLegacyProvider() *MemoryLegacyProvider {
	return &MemoryLegacyProvider{menus: make(map[string][]MenuNode)}
}

// Set registers the legacy tree served for a namespace/locale pair.
func (p *MemoryLegacyProvider) Set(ns, locale string, nodes []MenuNode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menus[legacyKey(ns, locale)] = cloneNodes(nodes)
}

func (p *MemoryLegacyProvider) GetMenuForNamespace(_ context.Context, ns, locale string) ([]MenuNode, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneNodes(p.menus[legacyKey(ns, locale)]), nil
}

func legacyKey(ns, locale string) string {
	return ns + "|" + locale
}

func cloneMenu(menu *Menu) *Menu {
	if menu == nil {
		return nil
	}
	cloned := *menu
	cloned.Items = nil
	return &cloned
}

func cloneMenuItem(item *MenuItem) *MenuItem {
	if item == nil {
		return nil
	}
	cloned := *item
	cloned.Menu = nil
	if item.ParentID != nil {
		parent := *item.ParentID
		cloned.ParentID = &parent
	}
	return &cloned
}

func cloneAssignment(assignment *MenuAssignment) *MenuAssignment {
	if assignment == nil {
		return nil
	}
	cloned := *assignment
	cloned.Menu = nil
	if assignment.PageID != nil {
		page := *assignment.PageID
		cloned.PageID = &page
	}
	return &cloned
}

func cloneNodes(nodes []MenuNode) []MenuNode {
	if nodes == nil {
		return nil
	}
	cloned := make([]MenuNode, len(nodes))
	for i, node := range nodes {
		cloned[i] = node
		if node.ParentID != nil {
			parent := *node.ParentID
			cloned[i].ParentID = &parent
		}
		cloned[i].Children = cloneNodes(node.Children)
	}
	return cloned
}

func pageScopeEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
