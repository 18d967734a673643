package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/db"
)

// ShowDashboard renders the admin overview with entity counts.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	email := session.Get("email")

	var blogCount, attorneyCount, newContactCount int64
	a.db.Model(&db.Blog{}).Count(&blogCount)
	a.db.Model(&db.Attorney{}).Count(&attorneyCount)
	a.db.Model(&db.ContactSubmission{}).
		Where("status = ?", db.ContactStatusNew).
		Count(&newContactCount)

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":           "Dashboard",
		"email":           email,
		"blogCount":       blogCount,
		"attorneyCount":   attorneyCount,
		"newContactCount": newContactCount,
	})
}

// ShowBlogAdmin renders the blog management page.
func (a *API) ShowBlogAdmin(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_blogs.html", gin.H{
		"title": "Manage Blogs",
	})
}

// ShowAttorneyAdmin renders the attorney management page.
func (a *API) ShowAttorneyAdmin(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_attorneys.html", gin.H{
		"title": "Manage Attorneys",
	})
}

// ShowContactAdmin renders the submission triage page.
func (a *API) ShowContactAdmin(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_contacts.html", gin.H{
		"title": "Contact Submissions",
	})
}
