package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/controllers"
	"github.com/otabek/juniorhub/internal/middleware"
)

// Controllers bundles everything SetupRouter needs to register.
type Controllers struct {
	Index      *controllers.IndexController
	Months     *controllers.MonthController
	Heroes     *controllers.HeroController
	Mentors    *controllers.MentorController
	Directions *controllers.DirectionController
	News       *controllers.NewsController
	Auth       *controllers.AuthController
	Admin      *controllers.AdminController
}

// SetupRouter registers every route. The public surface under /api is
// read-only; hitting it with a write method yields 405 rather than 404.
// The admin surface lives under /api/admin behind JWT auth.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowedHandler())
	router.NoRoute(middleware.NotFoundHandler())

	api := router.Group("/api")
	{
		api.GET("", c.Index.Index)

		api.GET("/months", c.Months.List)
		api.GET("/months/:id", c.Months.Get)

		api.GET("/heroes", c.Heroes.List)
		api.GET("/heroes/:id", c.Heroes.Get)

		api.GET("/mentors", c.Mentors.List)
		api.GET("/mentors/:id", c.Mentors.Get)

		api.GET("/directions", c.Directions.List)
		api.GET("/directions/:id", c.Directions.Get)

		api.GET("/news", c.News.List)
		api.GET("/news/:id", c.News.Get)
	}

	admin := router.Group("/api/admin")
	admin.POST("/login", c.Auth.Login)

	protected := admin.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.GET("/schema", c.Admin.Schema)

		months := protected.Group("/months")
		{
			months.GET("", c.Months.AdminList)
			months.GET("/:id", c.Months.AdminGet)
			months.POST("", c.Months.Create)
			months.PUT("/:id", c.Months.Update)
			months.DELETE("/:id", c.Months.Delete)
			months.POST("/bulk", c.Months.Bulk)
		}

		heroes := protected.Group("/heroes")
		{
			heroes.GET("", c.Heroes.AdminList)
			heroes.GET("/:id", c.Heroes.AdminGet)
			heroes.POST("", c.Heroes.Create)
			heroes.PUT("/:id", c.Heroes.Update)
			heroes.DELETE("/:id", c.Heroes.Delete)
			heroes.POST("/bulk", c.Heroes.Bulk)
		}

		mentors := protected.Group("/mentors")
		{
			mentors.GET("", c.Mentors.AdminList)
			mentors.GET("/:id", c.Mentors.AdminGet)
			mentors.POST("", c.Mentors.Create)
			mentors.PUT("/:id", c.Mentors.Update)
			mentors.DELETE("/:id", c.Mentors.Delete)
			mentors.POST("/bulk", c.Mentors.Bulk)
		}

		directions := protected.Group("/directions")
		{
			directions.GET("", c.Directions.AdminList)
			directions.GET("/:id", c.Directions.AdminGet)
			directions.POST("", c.Directions.Create)
			directions.PUT("/:id", c.Directions.Update)
			directions.DELETE("/:id", c.Directions.Delete)
			directions.POST("/bulk", c.Directions.Bulk)
		}

		news := protected.Group("/news")
		{
			news.GET("", c.News.AdminList)
			news.GET("/:id", c.News.AdminGet)
			news.POST("", c.News.Create)
			news.PUT("/:id", c.News.Update)
			news.DELETE("/:id", c.News.Delete)
			news.POST("/bulk", c.News.Bulk)
		}
	}
}
