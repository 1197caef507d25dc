package services

import (
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/auth"
	"github.com/otabek/juniorhub/internal/pkg/filestorage"
)

// Services bundles all application services for dependency injection.
type Services struct {
	Months     *MonthService
	Directions *DirectionService
	Mentors    *MentorService
	News       *NewsService
	Heroes     *HeroService
	Auth       *AuthService
}

// New wires the service set over the repository set.
func New(repos *repositories.Repositories, images filestorage.ImageStorage, jwtService *auth.JWTService) *Services {
	return &Services{
		Months:     NewMonthService(repos.Months, repos.Heroes),
		Directions: NewDirectionService(repos.Directions, repos.Mentors, images),
		Mentors:    NewMentorService(repos.Mentors, repos.Directions, images),
		News:       NewNewsService(repos.News, images),
		Heroes:     NewHeroService(repos.Heroes, repos.Months, repos.Users),
		Auth:       NewAuthService(repos.Users, jwtService),
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
