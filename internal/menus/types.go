package menus

// Source identifies which rung of the fallback chain produced a resolution
// result.
type Source string

const (
	SourceInvalid             Source = "invalid"
	SourcePageLocale          Source = "page_locale"
	SourcePageDefaultLocale   Source = "page_default_locale"
	SourceGlobalLocale        Source = "global_locale"
	SourceGlobalDefaultLocale Source = "global_default_locale"
	SourceDefaultMenu         Source = "default_menu"
	SourceLegacyFallback      Source = "legacy_fallback"
	SourceNone                Source = "none"
)

// MenuNode is a menu item materialized for presentation, with its children
// nested in sibling order. Nodes are built fresh on every resolution call and
// never persisted.
type MenuNode struct {
	ID            int64      `json:"id"`
	ParentID      *int64     `json:"parent_id,omitempty"`
	Label         string     `json:"label"`
	Href          string     `json:"href"`
	Icon          string     `json:"icon,omitempty"`
	Layout        string     `json:"layout,omitempty"`
	DetailTitle   string     `json:"detail_title,omitempty"`
	DetailText    string     `json:"detail_text,omitempty"`
	DetailSubline string     `json:"detail_subline,omitempty"`
	Position      int        `json:"position"`
	IsExternal    bool       `json:"is_external,omitempty"`
	Locale        string     `json:"locale,omitempty"`
	IsStartpage   bool       `json:"is_startpage,omitempty"`
	Children      []MenuNode `json:"children,omitempty"`
}

// ResolvedMenu is the outcome of a slot resolution. Absence is expressed via
// the Source tag and empty Items, never as an error, so callers can keep
// rendering a page shell with no navigation.
type ResolvedMenu struct {
	MenuID       *int64     `json:"menu_id,omitempty"`
	AssignmentID *int64     `json:"assignment_id,omitempty"`
	Items        []MenuNode `json:"items"`
	Source       Source     `json:"source"`
}
