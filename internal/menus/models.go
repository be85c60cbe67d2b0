package menus

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Menu represents a namespaced collection of navigation items. A menu must be
// active before any assignment pointing at it can serve navigation.
type Menu struct {
	bun.BaseModel `bun:"table:cms_menus,alias:m"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Namespace string    `bun:"namespace,notnull" json:"namespace"`
	Name      string    `bun:"name,notnull" json:"name"`
	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedBy uuid.UUID `bun:"created_by,type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID `bun:"updated_by,type:uuid" json:"updated_by"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Items []*MenuItem `bun:"rel:has-many,join:id=menu_id" json:"items,omitempty"`
}

// MenuItem describes a single navigational entry with optional hierarchy.
// ParentID, when set, references another item within the same menu; dangling
// references are promoted to root during tree building.
type MenuItem struct {
	bun.BaseModel `bun:"table:cms_menu_items,alias:mi"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	MenuID        int64     `bun:"menu_id,notnull" json:"menu_id"`
	Namespace     string    `bun:"namespace,notnull" json:"namespace"`
	ParentID      *int64    `bun:"parent_id" json:"parent_id,omitempty"`
	Label         string    `bun:"label,notnull" json:"label"`
	Href          string    `bun:"href" json:"href"`
	Icon          string    `bun:"icon" json:"icon,omitempty"`
	Layout        string    `bun:"layout" json:"layout,omitempty"`
	DetailTitle   string    `bun:"detail_title" json:"detail_title,omitempty"`
	DetailText    string    `bun:"detail_text" json:"detail_text,omitempty"`
	DetailSubline string    `bun:"detail_subline" json:"detail_subline,omitempty"`
	Position      int       `bun:"position,notnull,default:0" json:"position"`
	IsExternal    bool      `bun:"is_external,notnull,default:false" json:"is_external"`
	Locale        string    `bun:"locale,notnull" json:"locale"`
	IsActive      bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	IsStartpage   bool      `bun:"is_startpage,notnull,default:false" json:"is_startpage"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Menu *Menu `bun:"rel:belongs-to,join:menu_id=id" json:"menu,omitempty"`
}

// MenuAssignment binds a named slot within a namespace/locale/page scope to
// one menu. PageID is nil for global (namespace-wide) assignments.
type MenuAssignment struct {
	bun.BaseModel `bun:"table:cms_menu_assignments,alias:ma"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	MenuID    int64     `bun:"menu_id,notnull" json:"menu_id"`
	Namespace string    `bun:"namespace,notnull" json:"namespace"`
	Slot      string    `bun:"slot,notnull" json:"slot"`
	Locale    string    `bun:"locale,notnull" json:"locale"`
	PageID    *int64    `bun:"page_id" json:"page_id,omitempty"`
	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedBy uuid.UUID `bun:"created_by,type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID `bun:"updated_by,type:uuid" json:"updated_by"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Menu *Menu `bun:"rel:belongs-to,join:menu_id=id" json:"menu,omitempty"`
}

// LegacyMenuEntry is a row of the pre-migration flat menu table. Entries are
// only read through the legacy fallback and never written by this module.
type LegacyMenuEntry struct {
	bun.BaseModel `bun:"table:cms_legacy_menu_entries,alias:lme"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	Namespace  string `bun:"namespace,notnull" json:"namespace"`
	Locale     string `bun:"locale,notnull" json:"locale"`
	ParentID   *int64 `bun:"parent_id" json:"parent_id,omitempty"`
	Label      string `bun:"label,notnull" json:"label"`
	Href       string `bun:"href" json:"href"`
	Icon       string `bun:"icon" json:"icon,omitempty"`
	Position   int    `bun:"position,notnull,default:0" json:"position"`
	IsExternal bool   `bun:"is_external,notnull,default:false" json:"is_external"`
	IsActive   bool   `bun:"is_active,notnull,default:true" json:"is_active"`
}
