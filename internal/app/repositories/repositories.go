package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otabek/juniorhub/internal/app/models"
)

// ListParams carries the filtering, search and pagination inputs shared by
// the entity list queries. Each repository reads only the fields that apply
// to its entity; search is a substring match over that entity's searchable
// columns.
type ListParams struct {
	// ActiveOnly restricts the result to is_active = true rows (public API).
	ActiveOnly bool
	// IsActive is an exact-match facet filter (admin and public query param).
	IsActive *bool

	Search string

	// Type filters hero awards by role.
	Type *models.HeroType
	// MonthID filters hero awards by month.
	MonthID *int64
	// DirectionID filters mentors by direction.
	DirectionID *int64

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Offset uint64
	Limit  int
}

// MonthRepository handles month persistence.
type MonthRepository interface {
	Create(ctx context.Context, month *models.Month) error
	GetByID(ctx context.Context, id int64) (*models.Month, error)
	List(ctx context.Context, params ListParams) ([]*models.Month, int64, error)
	Update(ctx context.Context, month *models.Month) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
	// CountActiveHeroes returns the active hero count per month id,
	// computed per request and never stored.
	CountActiveHeroes(ctx context.Context, monthIDs []int64) (map[int64]int64, error)
}

// DirectionRepository handles direction persistence.
type DirectionRepository interface {
	Create(ctx context.Context, direction *models.Direction) error
	GetByID(ctx context.Context, id int64) (*models.Direction, error)
	List(ctx context.Context, params ListParams) ([]*models.Direction, int64, error)
	Update(ctx context.Context, direction *models.Direction) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
}

// MentorRepository handles mentor persistence.
type MentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
	List(ctx context.Context, params ListParams) ([]*models.Mentor, int64, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
	// ListByDirectionIDs returns mentors grouped by direction id for
	// nested serialization.
	ListByDirectionIDs(ctx context.Context, directionIDs []int64, activeOnly bool) (map[int64][]*models.Mentor, error)
	// CountActiveByDirection returns the active mentor count per direction id.
	CountActiveByDirection(ctx context.Context, directionIDs []int64) (map[int64]int64, error)
}

// NewsRepository handles news persistence.
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id int64) (*models.News, error)
	List(ctx context.Context, params ListParams) ([]*models.News, int64, error)
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
	// Duplicate clones the addressed rows into new independent records with
	// the copy marker appended to the title. Returns the number of rows cloned.
	Duplicate(ctx context.Context, ids []int64) (int64, error)
}

// HeroRepository handles month hero persistence.
type HeroRepository interface {
	Create(ctx context.Context, hero *models.MonthHero) error
	GetByID(ctx context.Context, id int64) (*models.MonthHero, error)
	List(ctx context.Context, params ListParams) ([]*models.MonthHero, int64, error)
	Update(ctx context.Context, hero *models.MonthHero) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
	// SetType reclassifies the addressed awards to the given role.
	SetType(ctx context.Context, ids []int64, heroType models.HeroType) (int64, error)
	// ListByMonthIDs returns heroes grouped by month id for nested serialization.
	ListByMonthIDs(ctx context.Context, monthIDs []int64, activeOnly bool) (map[int64][]*models.MonthHero, error)
}

// UserRepository reads the external account entity. Accounts are managed by
// the identity collaborator; this application only references them.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// Repositories bundles all entity repositories for dependency injection.
type Repositories struct {
	Months     MonthRepository
	Directions DirectionRepository
	Mentors    MentorRepository
	News       NewsRepository
	Heroes     HeroRepository
	Users      UserRepository
}

// New creates the pgx-backed repository set.
func New(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Months:     NewMonthRepository(pool),
		Directions: NewDirectionRepository(pool),
		Mentors:    NewMentorRepository(pool),
		News:       NewNewsRepository(pool),
		Heroes:     NewHeroRepository(pool),
		Users:      NewUserRepository(pool),
	}
}
