package menus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// BunStore implements AdminStore backed by a bun database. It works against
// both the SQLite and Postgres dialects; every lookup is a point or range
// read with no multi-statement transaction requirement.
type BunStore struct {
	db *bun.DB
}

var _ AdminStore = (*BunStore)(nil)

// NewBunStore creates a store over the provided bun handle.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// NewDB wraps an opened database handle with the bun dialect matching the
// driver name and registers the menu models.
func NewDB(sqlDB *sql.DB, driverName string) *bun.DB {
	var db *bun.DB
	switch driverName {
	case "postgres", "pg", "pgx":
		db = bun.NewDB(sqlDB, pgdialect.New())
	default:
		db = bun.NewDB(sqlDB, sqlitedialect.New())
	}
	RegisterModels(db)
	return db
}

// RegisterModels registers the menu models with bun, required before
// relation-aware queries and table creation.
func RegisterModels(db *bun.DB) {
	db.RegisterModel(
		(*Menu)(nil),
		(*MenuItem)(nil),
		(*MenuAssignment)(nil),
		(*LegacyMenuEntry)(nil),
	)
}

// CreateTables creates the menu tables when missing. Intended for tests and
// embedded deployments; production schemas are managed by migrations.
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Menu)(nil),
		(*MenuItem)(nil),
		(*MenuAssignment)(nil),
		(*LegacyMenuEntry)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("menus: create table for %T: %w", model, err)
		}
	}
	return nil
}

func (s *BunStore) GetAssignmentForSlot(ctx context.Context, ns, slot, locale string, pageID *int64, onlyActive bool) (*MenuAssignment, error) {
	assignment := new(MenuAssignment)
	query := s.db.NewSelect().
		Model(assignment).
		Where("ma.namespace = ?", ns).
		Where("ma.slot = ?", slot).
		Where("ma.locale = ?", locale)

	if pageID == nil {
		query = query.Where("ma.page_id IS NULL")
	} else {
		query = query.Where("ma.page_id = ?", *pageID)
	}
	if onlyActive {
		query = query.Where("ma.is_active = ?", true)
	}

	if err := query.Order("ma.id ASC").Limit(1).Scan(ctx); err != nil {
		return nil, mapStoreError(err, "menu_assignment", ns+"/"+slot)
	}
	return assignment, nil
}

func (s *BunStore) HasAssignmentsForSlot(ctx context.Context, ns, slot string) (bool, error) {
	count, err := s.db.NewSelect().
		Model((*MenuAssignment)(nil)).
		Where("ma.namespace = ?", ns).
		Where("ma.slot = ?", slot).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("menu_assignment count error: %w", err)
	}
	return count > 0, nil
}

func (s *BunStore) GetMenuByID(ctx context.Context, ns string, id int64) (*Menu, error) {
	menu := new(Menu)
	err := s.db.NewSelect().
		Model(menu).
		Where("m.namespace = ?", ns).
		Where("m.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapStoreError(err, "menu", strconv.FormatInt(id, 10))
	}
	return menu, nil
}

func (s *BunStore) GetMenuItemByID(ctx context.Context, ns string, id int64) (*MenuItem, error) {
	item := new(MenuItem)
	err := s.db.NewSelect().
		Model(item).
		Where("mi.namespace = ?", ns).
		Where("mi.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapStoreError(err, "menu_item", strconv.FormatInt(id, 10))
	}
	return item, nil
}

func (s *BunStore) GetMenuItemsForMenu(ctx context.Context, ns string, menuID int64, locale string, onlyActive bool) ([]*MenuItem, error) {
	items := make([]*MenuItem, 0)
	query := s.db.NewSelect().
		Model(&items).
		Where("mi.namespace = ?", ns).
		Where("mi.menu_id = ?", menuID).
		Where("mi.locale = ?", locale)
	if onlyActive {
		query = query.Where("mi.is_active = ?", true)
	}

	if err := query.Order("mi.position ASC", "mi.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("menu_item list error: %w", err)
	}
	return items, nil
}

func (s *BunStore) CreateMenu(ctx context.Context, menu *Menu) (*Menu, error) {
	if _, err := s.db.NewInsert().Model(menu).Exec(ctx); err != nil {
		return nil, fmt.Errorf("menu insert error: %w", err)
	}
	return menu, nil
}

func (s *BunStore) UpdateMenu(ctx context.Context, menu *Menu) (*Menu, error) {
	result, err := s.db.NewUpdate().
		Model(menu).
		WherePK().
		Where("m.namespace = ?", menu.Namespace).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu update error: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, &NotFoundError{Resource: "menu", Key: strconv.FormatInt(menu.ID, 10)}
	}
	return menu, nil
}

func (s *BunStore) CreateMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error) {
	if _, err := s.db.NewInsert().Model(item).Exec(ctx); err != nil {
		return nil, fmt.Errorf("menu_item insert error: %w", err)
	}
	return item, nil
}

func (s *BunStore) CreateAssignment(ctx context.Context, assignment *MenuAssignment) (*MenuAssignment, error) {
	if _, err := s.db.NewInsert().Model(assignment).Exec(ctx); err != nil {
		return nil, fmt.Errorf("menu_assignment insert error: %w", err)
	}
	return assignment, nil
}

func (s *BunStore) DeleteAssignment(ctx context.Context, ns string, id int64) error {
	result, err := s.db.NewDelete().
		Model((*MenuAssignment)(nil)).
		Where("ma.namespace = ?", ns).
		Where("ma.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("menu_assignment delete error: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &NotFoundError{Resource: "menu_assignment", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

// BunLegacyMenuProvider reads the pre-migration flat menu table and nests its
// rows by parent reference. Rows are served in (position, id) order; dangling
// parents surface at root, matching the historical renderer.
type BunLegacyMenuProvider struct {
	db *bun.DB
}

var _ LegacyMenuProvider = (*BunLegacyMenuProvider)(nil)

// NewBunLegacyMenuProvider creates a legacy provider over the bun handle.
func NewBunLegacyMenuProvider(db *bun.DB) *BunLegacyMenuProvider {
	return &BunLegacyMenuProvider{db: db}
}

func (p *BunLegacyMenuProvider) GetMenuForNamespace(ctx context.Context, ns, locale string) ([]MenuNode, error) {
	entries := make([]*LegacyMenuEntry, 0)
	err := p.db.NewSelect().
		Model(&entries).
		Where("lme.namespace = ?", ns).
		Where("lme.locale = ?", locale).
		Where("lme.is_active = ?", true).
		Order("lme.position ASC", "lme.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("legacy menu list error: %w", err)
	}

	items := make([]*MenuItem, len(entries))
	for i, entry := range entries {
		items[i] = &MenuItem{
			ID:         entry.ID,
			Namespace:  entry.Namespace,
			ParentID:   entry.ParentID,
			Label:      entry.Label,
			Href:       entry.Href,
			Icon:       entry.Icon,
			Position:   entry.Position,
			IsExternal: entry.IsExternal,
			Locale:     entry.Locale,
			IsActive:   entry.IsActive,
		}
	}
	return BuildTree(items), nil
}

func mapStoreError(err error, resource, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s lookup error: %w", resource, err)
}
