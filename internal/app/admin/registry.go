package admin

import "github.com/otabek/juniorhub/internal/app/models/dto"

// EntityConfig is the static per-entity admin configuration: which columns
// the list view shows, which fields are searchable and filterable, the
// default ordering and the bulk actions the entity supports. The registry
// is assembled once at startup and never mutated afterwards.
type EntityConfig struct {
	Name           string
	DisplayColumns []string
	SearchFields   []string
	FilterFields   []string
	DefaultOrder   string
	BulkActions    []string
}

// SupportsBulkAction reports whether the entity allows the given bulk action.
func (c EntityConfig) SupportsBulkAction(action string) bool {
	for _, a := range c.BulkActions {
		if a == action {
			return true
		}
	}
	return false
}

// SupportsFilter reports whether the entity allows the given facet filter.
func (c EntityConfig) SupportsFilter(field string) bool {
	for _, f := range c.FilterFields {
		if f == field {
			return true
		}
	}
	return false
}

// Registry holds the admin configuration for every managed entity.
type Registry struct {
	entities map[string]EntityConfig
}

// NewRegistry builds the full admin configuration set.
func NewRegistry() *Registry {
	configs := []EntityConfig{
		{
			Name:           "months",
			DisplayColumns: []string{"name", "is_active", "hero_count", "created_at"},
			SearchFields:   []string{"name"},
			FilterFields:   []string{"is_active", "created_at"},
			DefaultOrder:   "-created_at",
			BulkActions:    []string{dto.BulkActionActivate, dto.BulkActionDeactivate},
		},
		{
			Name:           "heroes",
			DisplayColumns: []string{"month", "user", "type", "is_active", "created_at"},
			SearchFields:   []string{"user__username", "month__name"},
			FilterFields:   []string{"type", "is_active", "month", "created_at"},
			DefaultOrder:   "-created_at",
			BulkActions: []string{
				dto.BulkActionActivate, dto.BulkActionDeactivate,
				dto.BulkActionSetStudent, dto.BulkActionSetTeacher,
			},
		},
		{
			Name:           "mentors",
			DisplayColumns: []string{"full_name", "direction", "is_active", "created_at"},
			SearchFields:   []string{"full_name", "description", "bio"},
			FilterFields:   []string{"is_active", "direction", "created_at"},
			DefaultOrder:   "full_name",
			BulkActions:    []string{dto.BulkActionActivate, dto.BulkActionDeactivate},
		},
		{
			Name:           "directions",
			DisplayColumns: []string{"title", "is_active", "mentor_count", "created_at"},
			SearchFields:   []string{"title"},
			FilterFields:   []string{"is_active", "created_at"},
			DefaultOrder:   "title",
			BulkActions:    []string{dto.BulkActionActivate, dto.BulkActionDeactivate},
		},
		{
			Name:           "news",
			DisplayColumns: []string{"title", "is_active", "created_at"},
			SearchFields:   []string{"title"},
			FilterFields:   []string{"is_active", "created_at"},
			DefaultOrder:   "-created_at",
			BulkActions: []string{
				dto.BulkActionActivate, dto.BulkActionDeactivate, dto.BulkActionDuplicate,
			},
		},
	}

	entities := make(map[string]EntityConfig, len(configs))
	for _, c := range configs {
		entities[c.Name] = c
	}
	return &Registry{entities: entities}
}

// Get returns the configuration for an entity name.
func (r *Registry) Get(name string) (EntityConfig, bool) {
	c, ok := r.entities[name]
	return c, ok
}

// All returns every entity configuration keyed by entity name.
func (r *Registry) All() map[string]EntityConfig {
	out := make(map[string]EntityConfig, len(r.entities))
	for name, c := range r.entities {
		out[name] = c
	}
	return out
}
