package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mahimx/inkblog/config"
	"github.com/mahimx/inkblog/models"
	"github.com/mahimx/inkblog/routes"
	"github.com/mahimx/inkblog/utils"
)

// stubSender records the last message instead of talking to an SMTP relay.
type stubSender struct {
	to      string
	subject string
	body    string
	err     error
	calls   int
}

func (s *stubSender) Send(to, subject, body string) error {
	s.calls++
	s.to = to
	s.subject = subject
	s.body = body
	return s.err
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    config.AppConfig
	mail   *stubSender
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.AppConfig{
		SessionSecret:    "test-secret",
		DatabaseURI:      "sqlite://" + filepath.Join(t.TempDir(), "test.db"),
		TemplateGlob:     "../templates/*.html",
		GinMode:          "test",
		LogLevel:         "error",
		ContactRecipient: "owner@example.com",
	}
	require.NoError(t, utils.InitLogger(cfg))

	db, err := config.OpenDatabase(cfg, &models.User{}, &models.Post{}, &models.Comment{})
	require.NoError(t, err)

	mail := &stubSender{}
	return &testApp{
		router: routes.SetupRouter(cfg, db, mail),
		db:     db,
		cfg:    cfg,
		mail:   mail,
	}
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its session cookie.
func (a *testApp) register(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()
	w := a.postForm("/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "register should establish a session")
	return cookie
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName && c.Value != "" {
			return c
		}
	}
	return nil
}
