package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"itemBack/internal/models"
	"itemBack/internal/repositories"
	"itemBack/internal/services"
	"itemBack/utils"
)

func newUserHandler(t *testing.T) (*UserHandler, sqlmock.Sqlmock, *utils.Manager) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens, err := utils.NewManager("test-secret", 20*time.Hour)
	if err != nil {
		t.Fatalf("failed to build token manager: %v", err)
	}
	h := &UserHandler{Service: &services.UserService{
		UserRepo: &repositories.UserRepository{DB: db},
		Tokens:   tokens,
	}}
	return h, mock, tokens
}

func TestToken(t *testing.T) {
	h, mock, _ := newUserHandler(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	now := time.Now()
	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "created_at", "updated_at"}).
			AddRow(1, "alice", string(hash), now, now))

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp.ResultCode != 0 {
		t.Errorf("expected resultCode 0, got %d", resp.ResultCode)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected token payload, got %T", resp.Data)
	}
	if data["token"] == "" || data["expiresIn"] != "20h" {
		t.Errorf("unexpected payload: %v", data)
	}
}

func TestToken_BadCredentials(t *testing.T) {
	h, mock, _ := newUserHandler(t)

	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"ghost","password":"x"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.ResultCode != models.CodeInvalidCredentials {
		t.Errorf("expected resultCode %d, got %d", models.CodeInvalidCredentials, resp.ResultCode)
	}
}

func TestValidateToken(t *testing.T) {
	h, _, tokens := newUserHandler(t)

	token, err := tokens.NewJWT(42, "alice")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/validate", strings.NewReader(`{"token":"`+token+`"}`))
	rec := httptest.NewRecorder()
	h.ValidateToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.ResultMessage != "Token is valid." {
		t.Errorf("unexpected message %q", resp.ResultMessage)
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/validate", strings.NewReader(`{"token":"garbage"}`))
	rec = httptest.NewRecorder()
	h.ValidateToken(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp = decodeEnvelope(t, rec)
	if resp.ResultCode != models.CodeInvalidToken {
		t.Errorf("expected resultCode %d, got %d", models.CodeInvalidToken, resp.ResultCode)
	}
}
