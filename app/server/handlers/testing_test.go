package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kidney-care-ai/app/server/classifier"
	"kidney-care-ai/app/server/constants"
	"kidney-care-ai/app/server/models"
	"kidney-care-ai/app/server/sessions"

	"github.com/alexedwards/argon2id"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testPassword = "Sup3r-Secret-Pass!"

type sentMail struct {
	to, subject, body string
}

// recordingMailer captures outbound mail instead of delivering it.
type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// testModel is a toy logistic regression whose label flips on serum
// creatinine alone: above 2.0 mg/dL predicts CKD.
func testModel() *classifier.Model {
	weights := make([]float64, classifier.NumFeatures)
	weights[6] = 1

	scales := make([]float64, classifier.NumFeatures)
	for i := range scales {
		scales[i] = 1
	}

	return &classifier.Model{
		Features:  classifier.FeatureOrder[:],
		Means:     make([]float64, classifier.NumFeatures),
		Scales:    scales,
		Weights:   weights,
		Intercept: -2,
	}
}

func newTestApp(t *testing.T) (*App, *echo.Echo, *sessions.MemoryStore, *recordingMailer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DetectionResult{},
		&models.Inquiry{},
		&models.GeneralInfo{},
		&models.Recommendation{},
	))

	store := sessions.NewMemoryStore()
	mail := &recordingMailer{}
	app := NewApp(zap.NewNop(), db, store, testModel(), mail)

	e := echo.New()
	app.RegisterRoutes(e)

	return app, e, store, mail
}

func createUser(t *testing.T, app *App, username, role string) *models.User {
	t.Helper()

	hash, err := argon2id.CreateHash(testPassword, argon2id.DefaultParams)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
		Password: hash,
	}
	require.NoError(t, app.db.Create(user).Error)
	return user
}

func openSession(t *testing.T, store sessions.Store, user *models.User) string {
	t.Helper()

	token, err := store.Create(context.Background(), &sessions.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	require.NoError(t, err)
	return token
}

func doJSON(e *echo.Echo, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	return nil
}
