package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/harborlaw/website/internal/catalog"
	"github.com/harborlaw/website/internal/db"
	"github.com/harborlaw/website/internal/notify"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingHTMLRender satisfies gin's HTMLRender without template files and
// remembers what was rendered last.
type recordingHTMLRender struct {
	lastName string
	lastData map[string]interface{}
}

type recordingHTMLInstance struct {
	parent *recordingHTMLRender
	name   string
	data   interface{}
}

func (r *recordingHTMLRender) Instance(name string, data interface{}) render.Render {
	return &recordingHTMLInstance{parent: r, name: name, data: data}
}

func (r *recordingHTMLInstance) Render(http.ResponseWriter) error {
	r.parent.lastName = r.name
	if h, ok := r.data.(gin.H); ok {
		r.parent.lastData = h
	}
	return nil
}

func (r *recordingHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Blog{}, &db.Attorney{}, &db.ContactSubmission{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func newTestAPI(t *testing.T, gdb *gorm.DB, notifier notify.Notifier) *API {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return NewAPI(gdb, cat, notifier, nil, "https://www.example.com")
}

// newTestEngine builds a gin engine with session middleware and the
// recording renderer, leaving route registration to the caller.
func newTestEngine() (*gin.Engine, *recordingHTMLRender) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("lawsite_session", store))

	rec := &recordingHTMLRender{}
	r.HTMLRender = rec
	return r, rec
}

func seedAdmin(t *testing.T, gdb *gorm.DB, email, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Email: email, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

// loginCookies runs a real login request and returns the session cookies.
func loginCookies(t *testing.T, engine *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("login failed with status %d", rr.Code)
	}
	return rr.Result().Cookies()
}
