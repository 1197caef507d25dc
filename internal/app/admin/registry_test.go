package admin

import (
	"testing"

	"github.com/otabek/juniorhub/internal/app/models/dto"
)

func TestRegistry_CoversAllEntities(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"months", "heroes", "mentors", "directions", "news"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("missing admin configuration for %q", name)
		}
	}
	if _, ok := registry.Get("users"); ok {
		t.Error("users are managed by the identity collaborator and must not be registered")
	}
	if got := len(registry.All()); got != 5 {
		t.Errorf("expected 5 configured entities, got %d", got)
	}
}

func TestRegistry_BulkActions(t *testing.T) {
	registry := NewRegistry()

	heroes, _ := registry.Get("heroes")
	if !heroes.SupportsBulkAction(dto.BulkActionSetTeacher) {
		t.Error("heroes should support set_teacher")
	}
	if heroes.SupportsBulkAction(dto.BulkActionDuplicate) {
		t.Error("heroes should not support duplicate")
	}

	news, _ := registry.Get("news")
	if !news.SupportsBulkAction(dto.BulkActionDuplicate) {
		t.Error("news should support duplicate")
	}
	if news.SupportsBulkAction(dto.BulkActionSetStudent) {
		t.Error("news should not support set_student")
	}

	for name, cfg := range registry.All() {
		if !cfg.SupportsBulkAction(dto.BulkActionActivate) || !cfg.SupportsBulkAction(dto.BulkActionDeactivate) {
			t.Errorf("%s should support activate and deactivate", name)
		}
	}
}

func TestRegistry_Filters(t *testing.T) {
	registry := NewRegistry()

	heroes, _ := registry.Get("heroes")
	if !heroes.SupportsFilter("type") || !heroes.SupportsFilter("month") {
		t.Error("heroes should be filterable by type and month")
	}

	months, _ := registry.Get("months")
	if months.SupportsFilter("type") {
		t.Error("months have no type facet")
	}

	mentors, _ := registry.Get("mentors")
	if !mentors.SupportsFilter("direction") {
		t.Error("mentors should be filterable by direction")
	}
}
