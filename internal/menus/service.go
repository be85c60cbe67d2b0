package menus

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/internal/namespace"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
	"github.com/google/uuid"
)

// Service describes the admin write paths for menus and slot assignments.
// Unlike the resolver, these operations validate loudly: a malformed
// namespace or missing field rejects the call instead of degrading.
type Service interface {
	CreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error)
	SetMenuActive(ctx context.Context, input SetMenuActiveInput) (*Menu, error)
	AddMenuItem(ctx context.Context, input AddMenuItemInput) (*MenuItem, error)
	AssignMenu(ctx context.Context, input AssignMenuInput) (*MenuAssignment, error)
	UnassignMenu(ctx context.Context, input UnassignMenuInput) error
}

// CreateMenuInput captures the information required to register a menu.
type CreateMenuInput struct {
	Namespace string
	Name      string
	Actor     uuid.UUID
}

// SetMenuActiveInput toggles whether a menu may serve navigation.
type SetMenuActiveInput struct {
	Namespace string
	MenuID    int64
	Active    bool
	Actor     uuid.UUID
}

// AddMenuItemInput captures the data required to register a new menu item.
type AddMenuItemInput struct {
	Namespace     string
	MenuID        int64
	ParentID      *int64
	Label         string
	Href          string
	Icon          string
	Layout        string
	DetailTitle   string
	DetailText    string
	DetailSubline string
	Position      int
	IsExternal    bool
	Locale        string
	IsStartpage   bool
}

// AssignMenuInput binds a slot within a namespace/locale/page scope to a menu.
type AssignMenuInput struct {
	Namespace string
	Slot      string
	Locale    string
	MenuID    int64
	PageID    *int64
	Actor     uuid.UUID
}

// UnassignMenuInput removes an assignment by id.
type UnassignMenuInput struct {
	Namespace    string
	AssignmentID int64
	Actor        uuid.UUID
}

var (
	ErrMenuNameRequired   = errors.New("menus: name is required")
	ErrSlotRequired       = errors.New("menus: slot is required")
	ErrLocaleRequired     = errors.New("menus: locale is required")
	ErrLabelRequired      = errors.New("menus: label is required")
	ErrMenuInactive       = errors.New("menus: menu is not active")
	ErrMenuItemPosition   = errors.New("menus: position must be zero or positive")
	ErrMenuItemParent     = errors.New("menus: parent menu item invalid")
	ErrPageScopeInvalid   = errors.New("menus: page id must be greater than zero")
	ErrAssignmentRequired = errors.New("menus: assignment id is required")
)

// ServiceOption configures admin service behaviour.
type ServiceOption func(*service)

// WithClock overrides the internal time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithServiceLogger injects the logger used by write paths.
func WithServiceLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	store  AdminStore
	now    func() time.Time
	logger interfaces.Logger
}

// NewService constructs an admin menu service instance.
func NewService(store AdminStore, opts ...ServiceOption) Service {
	s := &service{
		store:  store,
		now:    time.Now,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error) {
	ns := namespace.Normalize(input.Namespace)
	if err := namespace.AssertValid(ns); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMenuNameRequired
	}

	now := s.now()
	created, err := s.store.CreateMenu(ctx, &Menu{
		Namespace: ns,
		Name:      name,
		IsActive:  true,
		CreatedBy: input.Actor,
		UpdatedBy: input.Actor,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("menus.menu.created", "namespace", ns, "menu_id", created.ID)
	return created, nil
}

func (s *service) SetMenuActive(ctx context.Context, input SetMenuActiveInput) (*Menu, error) {
	ns := namespace.Normalize(input.Namespace)
	if err := namespace.AssertValid(ns); err != nil {
		return nil, err
	}

	menu, err := s.store.GetMenuByID(ctx, ns, input.MenuID)
	if err != nil {
		return nil, err
	}

	menu.IsActive = input.Active
	menu.UpdatedBy = input.Actor
	menu.UpdatedAt = s.now()
	return s.store.UpdateMenu(ctx, menu)
}

func (s *service) AddMenuItem(ctx context.Context, input AddMenuItemInput) (*MenuItem, error) {
	ns := namespace.Normalize(input.Namespace)
	if err := namespace.AssertValid(ns); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Label) == "" {
		return nil, ErrLabelRequired
	}
	if input.Position < 0 {
		return nil, ErrMenuItemPosition
	}
	locale := normalizeLocale(input.Locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	menu, err := s.store.GetMenuByID(ctx, ns, input.MenuID)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.store.GetMenuItemByID(ctx, ns, *input.ParentID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrMenuItemParent
			}
			return nil, err
		}
		if parent.MenuID != menu.ID {
			return nil, ErrMenuItemParent
		}
	}

	now := s.now()
	item := &MenuItem{
		MenuID:        menu.ID,
		Namespace:     ns,
		ParentID:      input.ParentID,
		Label:         strings.TrimSpace(input.Label),
		Href:          strings.TrimSpace(input.Href),
		Icon:          input.Icon,
		Layout:        input.Layout,
		DetailTitle:   input.DetailTitle,
		DetailText:    input.DetailText,
		DetailSubline: input.DetailSubline,
		Position:      input.Position,
		IsExternal:    input.IsExternal,
		Locale:        locale,
		IsActive:      true,
		IsStartpage:   input.IsStartpage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.store.CreateMenuItem(ctx, item)
}

func (s *service) AssignMenu(ctx context.Context, input AssignMenuInput) (*MenuAssignment, error) {
	ns := namespace.Normalize(input.Namespace)
	if err := namespace.AssertValid(ns); err != nil {
		return nil, err
	}
	slot := strings.TrimSpace(input.Slot)
	if slot == "" {
		return nil, ErrSlotRequired
	}
	locale := normalizeLocale(input.Locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	if input.PageID != nil && *input.PageID <= 0 {
		return nil, ErrPageScopeInvalid
	}

	menu, err := s.store.GetMenuByID(ctx, ns, input.MenuID)
	if err != nil {
		return nil, err
	}
	if !menu.IsActive {
		return nil, ErrMenuInactive
	}

	now := s.now()
	created, err := s.store.CreateAssignment(ctx, &MenuAssignment{
		MenuID:    menu.ID,
		Namespace: ns,
		Slot:      slot,
		Locale:    locale,
		PageID:    input.PageID,
		IsActive:  true,
		CreatedBy: input.Actor,
		UpdatedBy: input.Actor,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("menus.assignment.created",
		"namespace", ns,
		"slot", slot,
		"locale", locale,
		"menu_id", menu.ID,
	)
	return created, nil
}

func (s *service) UnassignMenu(ctx context.Context, input UnassignMenuInput) error {
	ns := namespace.Normalize(input.Namespace)
	if err := namespace.AssertValid(ns); err != nil {
		return err
	}
	if input.AssignmentID <= 0 {
		return ErrAssignmentRequired
	}
	if err := s.store.DeleteAssignment(ctx, ns, input.AssignmentID); err != nil {
		return err
	}

	s.logger.Info("menus.assignment.removed", "namespace", ns, "assignment_id", input.AssignmentID)
	return nil
}
