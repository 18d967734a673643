package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/db"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// loginErrorMessage is deliberately the same for bad credentials and tripped
// honeypots so the rejection reveals nothing about which check failed.
const loginErrorMessage = "Invalid email or password"

// honeypotField is a hidden input legitimate users never fill in. The login
// template positions it off-layout rather than display:none so naive bots
// still populate it.
const honeypotField = "website"

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login checks submitted credentials and starts an admin session.
func (a *API) Login(c *gin.Context) {
	if strings.TrimSpace(c.PostForm(honeypotField)) != "" {
		a.logger.Info("login honeypot tripped", zap.String("ip", c.ClientIP()))
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": loginErrorMessage,
		})
		return
	}

	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": loginErrorMessage,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": loginErrorMessage,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("email", user.Email)
	if err := session.Save(); err != nil {
		a.logger.Error("failed to save session", zap.Error(err))
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not start a session, please try again",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// AuthRequired guards admin pages; unauthenticated requests are redirected
// to the login form.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRequiredAPI guards the admin JSON API; unauthenticated requests get a
// 401 instead of a redirect.
func AuthRequiredAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
