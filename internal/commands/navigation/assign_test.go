package navigationcmd_test

import (
	"context"
	"errors"
	"testing"

	navigationcmd "github.com/eventfabrik/go-cms-nav/internal/commands/navigation"
	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/internal/menus"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

func newNavigationFixture(t *testing.T) (menus.Service, *menus.MemoryStore, *menus.Menu) {
	t.Helper()

	store := menus.NewMemoryStore()
	service := menus.NewService(store)
	menu, err := service.CreateMenu(context.Background(), menus.CreateMenuInput{
		Namespace: "acme",
		Name:      "main",
		Actor:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("create menu: %v", err)
	}
	return service, store, menu
}

func TestAssignMenuHandlerExecute(t *testing.T) {
	service, store, menu := newNavigationFixture(t)
	handler := navigationcmd.NewAssignMenuHandler(service, logging.NoOp())

	err := handler.Execute(context.Background(), navigationcmd.AssignMenuCommand{
		Namespace: "acme",
		Slot:      "header",
		Locale:    "de",
		MenuID:    menu.ID,
		Actor:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	assignment, err := store.GetAssignmentForSlot(context.Background(), "acme", "header", "de", nil, true)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if assignment.MenuID != menu.ID {
		t.Fatalf("expected assignment for menu %d, got %d", menu.ID, assignment.MenuID)
	}
}

func TestAssignMenuHandlerRejectsInvalidMessage(t *testing.T) {
	service, _, _ := newNavigationFixture(t)
	handler := navigationcmd.NewAssignMenuHandler(service, logging.NoOp())

	err := handler.Execute(context.Background(), navigationcmd.AssignMenuCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestAssignMenuCommandValidate(t *testing.T) {
	badPage := int64(-1)
	cases := []struct {
		name string
		msg  navigationcmd.AssignMenuCommand
		ok   bool
	}{
		{
			name: "valid",
			msg:  navigationcmd.AssignMenuCommand{Namespace: "acme", Slot: "header", Locale: "de", MenuID: 1},
			ok:   true,
		},
		{
			name: "missing namespace",
			msg:  navigationcmd.AssignMenuCommand{Slot: "header", Locale: "de", MenuID: 1},
		},
		{
			name: "missing slot",
			msg:  navigationcmd.AssignMenuCommand{Namespace: "acme", Locale: "de", MenuID: 1},
		},
		{
			name: "missing locale",
			msg:  navigationcmd.AssignMenuCommand{Namespace: "acme", Slot: "header", MenuID: 1},
		},
		{
			name: "zero menu id",
			msg:  navigationcmd.AssignMenuCommand{Namespace: "acme", Slot: "header", Locale: "de"},
		},
		{
			name: "negative page id",
			msg:  navigationcmd.AssignMenuCommand{Namespace: "acme", Slot: "header", Locale: "de", MenuID: 1, PageID: &badPage},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid message, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation failure")
			}
		})
	}
}

func TestAssignMenuHandlerSurfacesServiceErrors(t *testing.T) {
	service, _, menu := newNavigationFixture(t)
	if _, err := service.SetMenuActive(context.Background(), menus.SetMenuActiveInput{
		Namespace: "acme",
		MenuID:    menu.ID,
		Active:    false,
	}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	handler := navigationcmd.NewAssignMenuHandler(service, logging.NoOp())
	err := handler.Execute(context.Background(), navigationcmd.AssignMenuCommand{
		Namespace: "acme",
		Slot:      "header",
		Locale:    "de",
		MenuID:    menu.ID,
	})
	if !errors.Is(err, menus.ErrMenuInactive) {
		t.Fatalf("expected inactive menu error, got %v", err)
	}
}

func TestUnassignMenuHandlerExecute(t *testing.T) {
	service, store, menu := newNavigationFixture(t)

	assignment, err := service.AssignMenu(context.Background(), menus.AssignMenuInput{
		Namespace: "acme",
		Slot:      "header",
		Locale:    "de",
		MenuID:    menu.ID,
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	handler := navigationcmd.NewUnassignMenuHandler(service, logging.NoOp())
	if err := handler.Execute(context.Background(), navigationcmd.UnassignMenuCommand{
		Namespace:    "acme",
		AssignmentID: assignment.ID,
		Actor:        uuid.New(),
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	migrated, err := store.HasAssignmentsForSlot(context.Background(), "acme", "header")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if migrated {
		t.Fatal("assignment still present after unassign")
	}
}

func TestUnassignMenuCommandValidate(t *testing.T) {
	if err := (navigationcmd.UnassignMenuCommand{Namespace: "acme", AssignmentID: 1}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
	if err := (navigationcmd.UnassignMenuCommand{AssignmentID: 1}).Validate(); err == nil {
		t.Fatal("expected namespace failure")
	}
	if err := (navigationcmd.UnassignMenuCommand{Namespace: "acme"}).Validate(); err == nil {
		t.Fatal("expected assignment id failure")
	}
}
