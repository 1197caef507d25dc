// Package repositorytest provides in-memory repository and storage
// implementations for service and handler tests.
package repositorytest

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

// ── Mock MonthRepository ──

type MonthRepo struct {
	Months     []*models.Month
	nextID     int64
	HeroCounts map[int64]int64
}

func NewMonthRepo() *MonthRepo {
	return &MonthRepo{nextID: 1, HeroCounts: make(map[int64]int64)}
}

func (m *MonthRepo) Create(_ context.Context, month *models.Month) error {
	for _, existing := range m.Months {
		if existing.Name == month.Name {
			return apperrors.ErrMonthNameExists
		}
	}
	month.ID = m.nextID
	m.nextID++
	month.CreatedAt = time.Now()
	m.Months = append(m.Months, month)
	return nil
}

func (m *MonthRepo) GetByID(_ context.Context, id int64) (*models.Month, error) {
	for _, month := range m.Months {
		if month.ID == id {
			copy := *month
			return &copy, nil
		}
	}
	return nil, apperrors.ErrMonthNotFound
}

func (m *MonthRepo) List(_ context.Context, params repositories.ListParams) ([]*models.Month, int64, error) {
	var filtered []*models.Month
	// Newest first.
	for i := len(m.Months) - 1; i >= 0; i-- {
		month := m.Months[i]
		if params.IsActive != nil && month.IsActive != *params.IsActive {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(month.Name), strings.ToLower(params.Search)) {
			continue
		}
		copy := *month
		filtered = append(filtered, &copy)
	}
	return paginate(filtered, params)
}

func (m *MonthRepo) Update(_ context.Context, month *models.Month) error {
	for i, existing := range m.Months {
		if existing.ID == month.ID {
			for _, other := range m.Months {
				if other.ID != month.ID && other.Name == month.Name {
					return apperrors.ErrMonthNameExists
				}
			}
			month.CreatedAt = existing.CreatedAt
			m.Months[i] = month
			return nil
		}
	}
	return apperrors.ErrMonthNotFound
}

func (m *MonthRepo) Delete(_ context.Context, id int64) error {
	for i, month := range m.Months {
		if month.ID == id {
			m.Months = append(m.Months[:i], m.Months[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMonthNotFound
}

func (m *MonthRepo) SetActive(_ context.Context, ids []int64, active bool) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, month := range m.Months {
			if month.ID == id {
				month.IsActive = active
				matched++
			}
		}
	}
	return matched, nil
}

func (m *MonthRepo) CountActiveHeroes(_ context.Context, monthIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64)
	for _, id := range monthIDs {
		if n, ok := m.HeroCounts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

// ── Mock HeroRepository ──

type HeroRepo struct {
	Heroes []*models.MonthHero
	nextID int64
}

func NewHeroRepo() *HeroRepo {
	return &HeroRepo{nextID: 1}
}

func (m *HeroRepo) Create(_ context.Context, hero *models.MonthHero) error {
	for _, existing := range m.Heroes {
		if existing.MonthID == hero.MonthID && existing.UserID == hero.UserID && existing.Type == hero.Type {
			return apperrors.ErrHeroAlreadyExists
		}
	}
	hero.ID = m.nextID
	m.nextID++
	hero.CreatedAt = time.Now()
	m.Heroes = append(m.Heroes, hero)
	return nil
}

func (m *HeroRepo) GetByID(_ context.Context, id int64) (*models.MonthHero, error) {
	for _, hero := range m.Heroes {
		if hero.ID == id {
			copy := *hero
			return &copy, nil
		}
	}
	return nil, apperrors.ErrHeroNotFound
}

func (m *HeroRepo) List(_ context.Context, params repositories.ListParams) ([]*models.MonthHero, int64, error) {
	var filtered []*models.MonthHero
	for i := len(m.Heroes) - 1; i >= 0; i-- {
		hero := m.Heroes[i]
		if params.ActiveOnly && !hero.IsActive {
			continue
		}
		if params.IsActive != nil && hero.IsActive != *params.IsActive {
			continue
		}
		if params.Type != nil && hero.Type != *params.Type {
			continue
		}
		if params.MonthID != nil && hero.MonthID != *params.MonthID {
			continue
		}
		copy := *hero
		filtered = append(filtered, &copy)
	}
	return paginate(filtered, params)
}

func (m *HeroRepo) Update(_ context.Context, hero *models.MonthHero) error {
	for i, existing := range m.Heroes {
		if existing.ID == hero.ID {
			hero.CreatedAt = existing.CreatedAt
			m.Heroes[i] = hero
			return nil
		}
	}
	return apperrors.ErrHeroNotFound
}

func (m *HeroRepo) Delete(_ context.Context, id int64) error {
	for i, hero := range m.Heroes {
		if hero.ID == id {
			m.Heroes = append(m.Heroes[:i], m.Heroes[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrHeroNotFound
}

func (m *HeroRepo) SetActive(_ context.Context, ids []int64, active bool) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, hero := range m.Heroes {
			if hero.ID == id {
				hero.IsActive = active
				matched++
			}
		}
	}
	return matched, nil
}

func (m *HeroRepo) SetType(_ context.Context, ids []int64, heroType models.HeroType) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, hero := range m.Heroes {
			if hero.ID == id {
				hero.Type = heroType
				matched++
			}
		}
	}
	return matched, nil
}

func (m *HeroRepo) ListByMonthIDs(_ context.Context, monthIDs []int64, activeOnly bool) (map[int64][]*models.MonthHero, error) {
	wanted := make(map[int64]bool, len(monthIDs))
	for _, id := range monthIDs {
		wanted[id] = true
	}

	out := make(map[int64][]*models.MonthHero)
	for _, hero := range m.Heroes {
		if !wanted[hero.MonthID] {
			continue
		}
		if activeOnly && !hero.IsActive {
			continue
		}
		copy := *hero
		out[hero.MonthID] = append(out[hero.MonthID], &copy)
	}
	return out, nil
}

// ── Mock DirectionRepository ──

type DirectionRepo struct {
	Directions []*models.Direction
	nextID     int64
}

func NewDirectionRepo() *DirectionRepo {
	return &DirectionRepo{nextID: 1}
}

func (m *DirectionRepo) Create(_ context.Context, direction *models.Direction) error {
	direction.ID = m.nextID
	m.nextID++
	direction.CreatedAt = time.Now()
	m.Directions = append(m.Directions, direction)
	return nil
}

func (m *DirectionRepo) GetByID(_ context.Context, id int64) (*models.Direction, error) {
	for _, direction := range m.Directions {
		if direction.ID == id {
			copy := *direction
			return &copy, nil
		}
	}
	return nil, apperrors.ErrDirectionNotFound
}

func (m *DirectionRepo) List(_ context.Context, params repositories.ListParams) ([]*models.Direction, int64, error) {
	var filtered []*models.Direction
	for _, direction := range m.Directions {
		if params.ActiveOnly && !direction.IsActive {
			continue
		}
		if params.IsActive != nil && direction.IsActive != *params.IsActive {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(direction.Title), strings.ToLower(params.Search)) {
			continue
		}
		copy := *direction
		filtered = append(filtered, &copy)
	}
	return paginate(filtered, params)
}

func (m *DirectionRepo) Update(_ context.Context, direction *models.Direction) error {
	for i, existing := range m.Directions {
		if existing.ID == direction.ID {
			direction.CreatedAt = existing.CreatedAt
			m.Directions[i] = direction
			return nil
		}
	}
	return apperrors.ErrDirectionNotFound
}

func (m *DirectionRepo) Delete(_ context.Context, id int64) error {
	for i, direction := range m.Directions {
		if direction.ID == id {
			m.Directions = append(m.Directions[:i], m.Directions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrDirectionNotFound
}

func (m *DirectionRepo) SetActive(_ context.Context, ids []int64, active bool) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, direction := range m.Directions {
			if direction.ID == id {
				direction.IsActive = active
				matched++
			}
		}
	}
	return matched, nil
}

// ── Mock MentorRepository ──

type MentorRepo struct {
	Mentors []*models.Mentor
	nextID  int64
}

func NewMentorRepo() *MentorRepo {
	return &MentorRepo{nextID: 1}
}

func (m *MentorRepo) Create(_ context.Context, mentor *models.Mentor) error {
	mentor.ID = m.nextID
	m.nextID++
	mentor.CreatedAt = time.Now()
	m.Mentors = append(m.Mentors, mentor)
	return nil
}

func (m *MentorRepo) GetByID(_ context.Context, id int64) (*models.Mentor, error) {
	for _, mentor := range m.Mentors {
		if mentor.ID == id {
			copy := *mentor
			return &copy, nil
		}
	}
	return nil, apperrors.ErrMentorNotFound
}

func (m *MentorRepo) List(_ context.Context, params repositories.ListParams) ([]*models.Mentor, int64, error) {
	var filtered []*models.Mentor
	for _, mentor := range m.Mentors {
		if params.ActiveOnly && !mentor.IsActive {
			continue
		}
		if params.IsActive != nil && mentor.IsActive != *params.IsActive {
			continue
		}
		if params.DirectionID != nil && (mentor.DirectionID == nil || *mentor.DirectionID != *params.DirectionID) {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(mentor.FullName), strings.ToLower(params.Search)) {
			continue
		}
		copy := *mentor
		filtered = append(filtered, &copy)
	}
	return paginate(filtered, params)
}

func (m *MentorRepo) Update(_ context.Context, mentor *models.Mentor) error {
	for i, existing := range m.Mentors {
		if existing.ID == mentor.ID {
			mentor.CreatedAt = existing.CreatedAt
			m.Mentors[i] = mentor
			return nil
		}
	}
	return apperrors.ErrMentorNotFound
}

func (m *MentorRepo) Delete(_ context.Context, id int64) error {
	for i, mentor := range m.Mentors {
		if mentor.ID == id {
			m.Mentors = append(m.Mentors[:i], m.Mentors[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMentorNotFound
}

func (m *MentorRepo) SetActive(_ context.Context, ids []int64, active bool) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, mentor := range m.Mentors {
			if mentor.ID == id {
				mentor.IsActive = active
				matched++
			}
		}
	}
	return matched, nil
}

func (m *MentorRepo) ListByDirectionIDs(_ context.Context, directionIDs []int64, activeOnly bool) (map[int64][]*models.Mentor, error) {
	wanted := make(map[int64]bool, len(directionIDs))
	for _, id := range directionIDs {
		wanted[id] = true
	}

	out := make(map[int64][]*models.Mentor)
	for _, mentor := range m.Mentors {
		if mentor.DirectionID == nil || !wanted[*mentor.DirectionID] {
			continue
		}
		if activeOnly && !mentor.IsActive {
			continue
		}
		copy := *mentor
		out[*mentor.DirectionID] = append(out[*mentor.DirectionID], &copy)
	}
	return out, nil
}

func (m *MentorRepo) CountActiveByDirection(_ context.Context, directionIDs []int64) (map[int64]int64, error) {
	grouped, _ := m.ListByDirectionIDs(context.Background(), directionIDs, true)
	out := make(map[int64]int64, len(grouped))
	for id, Mentors := range grouped {
		out[id] = int64(len(Mentors))
	}
	return out, nil
}

// ── Mock NewsRepository ──

type NewsRepo struct {
	News   []*models.News
	nextID int64
}

func NewNewsRepo() *NewsRepo {
	return &NewsRepo{nextID: 1}
}

func (m *NewsRepo) Create(_ context.Context, article *models.News) error {
	article.ID = m.nextID
	m.nextID++
	article.CreatedAt = time.Now()
	m.News = append(m.News, article)
	return nil
}

func (m *NewsRepo) GetByID(_ context.Context, id int64) (*models.News, error) {
	for _, article := range m.News {
		if article.ID == id {
			copy := *article
			return &copy, nil
		}
	}
	return nil, apperrors.ErrNewsNotFound
}

func (m *NewsRepo) List(_ context.Context, params repositories.ListParams) ([]*models.News, int64, error) {
	var filtered []*models.News
	for i := len(m.News) - 1; i >= 0; i-- {
		article := m.News[i]
		if params.ActiveOnly && !article.IsActive {
			continue
		}
		if params.IsActive != nil && article.IsActive != *params.IsActive {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(article.Title), strings.ToLower(params.Search)) {
			continue
		}
		copy := *article
		filtered = append(filtered, &copy)
	}
	return paginate(filtered, params)
}

func (m *NewsRepo) Update(_ context.Context, article *models.News) error {
	for i, existing := range m.News {
		if existing.ID == article.ID {
			article.CreatedAt = existing.CreatedAt
			m.News[i] = article
			return nil
		}
	}
	return apperrors.ErrNewsNotFound
}

func (m *NewsRepo) Delete(_ context.Context, id int64) error {
	for i, article := range m.News {
		if article.ID == id {
			m.News = append(m.News[:i], m.News[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNewsNotFound
}

func (m *NewsRepo) SetActive(_ context.Context, ids []int64, active bool) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, article := range m.News {
			if article.ID == id {
				article.IsActive = active
				matched++
			}
		}
	}
	return matched, nil
}

func (m *NewsRepo) Duplicate(_ context.Context, ids []int64) (int64, error) {
	var matched int64
	for _, id := range ids {
		for _, article := range m.News {
			if article.ID == id {
				clone := *article
				clone.ID = m.nextID
				m.nextID++
				clone.Title = article.Title + repositories.CopyMarker
				clone.CreatedAt = time.Now()
				m.News = append(m.News, &clone)
				matched++
				break
			}
		}
	}
	return matched, nil
}

// ── Mock UserRepository ──

type UserRepo struct {
	Users  []*models.User
	nextID int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{nextID: 1}
}

func (m *UserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range m.Users {
		if user.ID == id {
			copy := *user
			return &copy, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *UserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range m.Users {
		if user.Username == username {
			copy := *user
			return &copy, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *UserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return apperrors.NewConflictError("username", "username already exists")
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.Users = append(m.Users, user)
	return nil
}

// ── Mock ImageStorage ──

type ImageStorage struct {
	Saved   []string
	Deleted []string
}

func NewImageStorage() *ImageStorage {
	return &ImageStorage{}
}

func (m *ImageStorage) SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	path := subPath + "/" + fileHeader.Filename
	m.Saved = append(m.Saved, path)
	return path, nil
}

func (m *ImageStorage) DeleteImage(path string) error {
	m.Deleted = append(m.Deleted, path)
	return nil
}

func (m *ImageStorage) ResolveURL(path *string) *string {
	if path == nil {
		return nil
	}
	url := "/media/" + *path
	return &url
}

// paginate applies offset/limit to an already filtered slice and reports
// the pre-slice total, matching the repository contract.
func paginate[T any](items []T, params repositories.ListParams) ([]T, int64, error) {
	total := int64(len(items))
	if params.Offset >= uint64(len(items)) {
		return nil, total, nil
	}
	items = items[params.Offset:]
	if params.Limit > 0 && params.Limit < len(items) {
		items = items[:params.Limit]
	}
	return items, total, nil
}
