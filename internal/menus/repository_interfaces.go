package menus

import (
	"context"
	"fmt"
)

// AssignmentStore exposes the read operations the resolver needs. Lookups
// are exact: locale and page scope must match the candidate being probed.
// Absence is reported via NotFoundError, not nil results.
type AssignmentStore interface {
	// GetAssignmentForSlot returns the assignment binding slot within the
	// exact (namespace, locale, pageID) scope. A nil pageID matches only
	// global assignments.
	GetAssignmentForSlot(ctx context.Context, namespace, slot, locale string, pageID *int64, onlyActive bool) (*MenuAssignment, error)
	// HasAssignmentsForSlot reports whether any assignment exists for the
	// slot, regardless of locale, page scope, or active state.
	HasAssignmentsForSlot(ctx context.Context, namespace, slot string) (bool, error)
	GetMenuByID(ctx context.Context, namespace string, id int64) (*Menu, error)
	GetMenuItemsForMenu(ctx context.Context, namespace string, menuID int64, locale string, onlyActive bool) ([]*MenuItem, error)
}

// LegacyMenuProvider serves pre-migration flat menus. The returned nodes are
// already nested; the resolver uses them as-is.
type LegacyMenuProvider interface {
	GetMenuForNamespace(ctx context.Context, namespace, locale string) ([]MenuNode, error)
}

// AdminStore extends the read contract with the write operations backing the
// admin service.
type AdminStore interface {
	AssignmentStore

	CreateMenu(ctx context.Context, menu *Menu) (*Menu, error)
	UpdateMenu(ctx context.Context, menu *Menu) (*Menu, error)
	GetMenuItemByID(ctx context.Context, namespace string, id int64) (*MenuItem, error)
	CreateMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	CreateAssignment(ctx context.Context, assignment *MenuAssignment) (*MenuAssignment, error)
	DeleteAssignment(ctx context.Context, namespace string, id int64) error
}

// NotFoundError is returned when a menu resource cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
