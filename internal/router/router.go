package router

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/handler"
)

// Setup configures the Gin engine and routes around a handler set.
// templateGlob may be empty in tests that install their own renderer.
func Setup(api *handler.API, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("lawsite_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	r.Static("/static", "./web/static")

	// Public pages
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServicesIndex)
	r.GET("/services/:category", api.ShowServiceCategory)
	r.GET("/services/:category/:sub", api.ShowSubService)
	r.GET("/blog", api.ShowBlogIndex)
	r.GET("/blog/:slug", api.ShowBlogDetail)
	r.GET("/attorneys", api.ShowAttorneys)
	r.GET("/contact", api.ShowContactPage)
	r.POST("/contact", api.SubmitContact)
	r.GET("/sitemap.xml", api.ShowSitemap)

	// Admin console
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		pages := admin.Group("")
		pages.Use(handler.AuthRequired())
		{
			pages.GET("/dashboard", api.ShowDashboard)
			pages.GET("/blogs", api.ShowBlogAdmin)
			pages.GET("/attorneys", api.ShowAttorneyAdmin)
			pages.GET("/contacts", api.ShowContactAdmin)
		}

		apiGroup := admin.Group("/api")
		apiGroup.Use(handler.AuthRequiredAPI())
		{
			apiGroup.GET("/blogs", api.GetBlogs)
			apiGroup.GET("/blogs/:id", api.GetBlog)
			apiGroup.POST("/blogs", api.CreateBlog)
			apiGroup.PUT("/blogs/:id", api.UpdateBlog)
			apiGroup.DELETE("/blogs/:id", api.DeleteBlog)

			apiGroup.GET("/attorneys", api.GetAttorneys)
			apiGroup.GET("/attorneys/:id", api.GetAttorney)
			apiGroup.POST("/attorneys", api.CreateAttorney)
			apiGroup.PUT("/attorneys/:id", api.UpdateAttorney)
			apiGroup.DELETE("/attorneys/:id", api.DeleteAttorney)

			apiGroup.GET("/contacts", api.GetContacts)
			apiGroup.GET("/contacts/:id", api.GetContact)
			apiGroup.PATCH("/contacts/:id", api.UpdateContactStatus)
			apiGroup.DELETE("/contacts/:id", api.DeleteContact)
		}
	}

	return r
}
