package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/db"
	"github.com/harborlaw/website/internal/service"
	"gorm.io/gorm"
)

func setupAdminAPITest(t *testing.T) (*gorm.DB, *gin.Engine, []*http.Cookie) {
	t.Helper()

	gdb := setupHandlerTestDB(t)
	api := newTestAPI(t, gdb, nil)
	seedAdmin(t, gdb, "admin@example.com", "correct-horse")

	engine, _ := newTestEngine()
	engine.POST("/admin/login", api.Login)

	apiGroup := engine.Group("/admin/api")
	apiGroup.Use(AuthRequiredAPI())
	{
		apiGroup.GET("/blogs", api.GetBlogs)
		apiGroup.GET("/blogs/:id", api.GetBlog)
		apiGroup.POST("/blogs", api.CreateBlog)
		apiGroup.PUT("/blogs/:id", api.UpdateBlog)
		apiGroup.DELETE("/blogs/:id", api.DeleteBlog)

		apiGroup.GET("/attorneys", api.GetAttorneys)
		apiGroup.POST("/attorneys", api.CreateAttorney)
		apiGroup.DELETE("/attorneys/:id", api.DeleteAttorney)

		apiGroup.GET("/contacts", api.GetContacts)
		apiGroup.PATCH("/contacts/:id", api.UpdateContactStatus)
		apiGroup.DELETE("/contacts/:id", api.DeleteContact)
	}

	cookies := loginCookies(t, engine, "admin@example.com", "correct-horse")
	return gdb, engine, cookies
}

func doJSON(engine *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

func TestAdminAPIRejectsUnauthenticatedRequests(t *testing.T) {
	_, engine, _ := setupAdminAPITest(t)

	rr := doJSON(engine, http.MethodGet, "/admin/api/blogs", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rr.Code)
	}
}

func TestBlogCRUDOverAPI(t *testing.T) {
	_, engine, cookies := setupAdminAPITest(t)

	rr := doJSON(engine, http.MethodPost, "/admin/api/blogs", map[string]interface{}{
		"title":  "Hello, World! 2024",
		"author": "Jane Doe",
	}, cookies)
	if rr.Code != http.StatusOK {
		t.Fatalf("create failed with %d: %s", rr.Code, rr.Body.String())
	}

	var created struct {
		Blog db.Blog `json:"blog"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	if created.Blog.Slug != "hello-world-2024" {
		t.Fatalf("expected auto-derived slug, got %q", created.Blog.Slug)
	}

	rr = doJSON(engine, http.MethodPost, "/admin/api/blogs", map[string]interface{}{
		"title":  "Hello, World! 2024",
		"author": "Someone Else",
	}, cookies)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slug, got %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodPut, "/admin/api/blogs/999", map[string]interface{}{
		"title": "X", "slug": "x", "author": "Y",
	}, cookies)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 updating missing blog, got %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodDelete, "/admin/api/blogs/999", nil, cookies)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting missing blog, got %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodGet, "/admin/api/blogs", nil, cookies)
	if rr.Code != http.StatusOK {
		t.Fatalf("list failed with %d", rr.Code)
	}
	var listed struct {
		Blogs []db.Blog `json:"blogs"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list response: %v", err)
	}
	if len(listed.Blogs) != 1 {
		t.Fatalf("expected list unchanged with 1 blog, got %d", len(listed.Blogs))
	}
}

func TestAttorneyDeleteMissingLeavesListUnchanged(t *testing.T) {
	_, engine, cookies := setupAdminAPITest(t)

	rr := doJSON(engine, http.MethodPost, "/admin/api/attorneys", map[string]interface{}{
		"name": "Dana Whitfield", "role": "Partner", "specialization": "Family Law",
	}, cookies)
	if rr.Code != http.StatusOK {
		t.Fatalf("create failed with %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodDelete, "/admin/api/attorneys/4242", nil, cookies)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodGet, "/admin/api/attorneys", nil, cookies)
	var listed struct {
		Attorneys []db.Attorney `json:"attorneys"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("bad list response: %v", err)
	}
	if len(listed.Attorneys) != 1 {
		t.Fatalf("expected list unchanged with 1 attorney, got %d", len(listed.Attorneys))
	}
}

func TestContactTriageOverAPI(t *testing.T) {
	gdb, engine, cookies := setupAdminAPITest(t)

	contacts := service.NewContactService(gdb, nil, nil)
	submission, err := contacts.Submit(service.ContactInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	path := fmt.Sprintf("/admin/api/contacts/%d", submission.ID)
	rr := doJSON(engine, http.MethodPatch, path, map[string]interface{}{
		"status": "resolved",
	}, cookies)
	if rr.Code != http.StatusOK {
		t.Fatalf("patch failed with %d: %s", rr.Code, rr.Body.String())
	}

	var updated struct {
		Contact db.ContactSubmission `json:"contact"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad patch response: %v", err)
	}
	if updated.Contact.Status != db.ContactStatusResolved {
		t.Fatalf("expected resolved, got %q", updated.Contact.Status)
	}

	rr = doJSON(engine, http.MethodPatch, path, map[string]interface{}{
		"status": "archived",
	}, cookies)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rr.Code)
	}

	rr = doJSON(engine, http.MethodDelete, "/admin/api/contacts/999", nil, cookies)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting missing submission, got %d", rr.Code)
	}
}
