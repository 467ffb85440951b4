package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/handlers"
	"github.com/saranyasailakshmi/DIV-Tech/middleware"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

func SetupRoutes(h *handlers.HandlerManager, db *gorm.DB, tokens *utils.TokenManager) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api/v1")
	{
		api.POST("/signup", h.AuthenticationHandler.SignUp)
		api.POST("/login", h.AuthenticationHandler.Login)
		api.POST("/token/refresh", h.AuthenticationHandler.Refresh)

		// new group with authentication
		auth := api.Group("")
		auth.Use(middleware.AuthMiddleware(db, tokens))
		{
			auth.POST("/logout", h.AuthenticationHandler.Logout)

			orgs := auth.Group("/organizations")
			{
				orgs.POST("/create", h.OrganizationHandler.Create)
				orgs.GET("/get", h.OrganizationHandler.List)
				orgs.GET("/update/:id", h.OrganizationHandler.Get)
				orgs.PUT("/update/:id", h.OrganizationHandler.Update)
				orgs.GET("/delete/:id", h.OrganizationHandler.Get)
				orgs.DELETE("/delete/:id", h.OrganizationHandler.Delete)
			}

			members := auth.Group("/members")
			{
				members.POST("/create", h.MemberHandler.Add)
				members.GET("/get", h.MemberHandler.List)
				members.GET("/update/:id", h.MemberHandler.Get)
				members.PUT("/update/:id", h.MemberHandler.Update)
				members.GET("/delete/:id", h.MemberHandler.Get)
				members.DELETE("/delete/:id", h.MemberHandler.Remove)
			}
		}
	}

	return r
}
