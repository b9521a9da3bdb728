package services

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"itemBack/internal/models"
	"itemBack/internal/repositories"
	"itemBack/utils"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
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
	return &UserService{
		UserRepo: &repositories.UserRepository{DB: db},
		Tokens:   tokens,
	}, mock
}

func userRow(id int, username, passwordHash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "password", "created_at", "updated_at"}).
		AddRow(id, username, passwordHash, now, now)
}

func TestSignUp_RequiresCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.SignUp(context.Background(), "", "secret")
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != models.CodeInvalidParam {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestSignUp_HidesPasswordHash(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, username, password").
		WithArgs(1).
		WillReturnRows(userRow(1, "alice", "$2a$10$hash"))

	user, err := svc.SignUp(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Password != "" {
		t.Errorf("password hash must never leave the service")
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestSignIn_SameAnswerForUnknownUserAndWrongPassword(t *testing.T) {
	svc, mock := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)
	_, err = svc.SignIn(context.Background(), "ghost", "whatever")
	unknownErr := apiError(t, err)

	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("alice").
		WillReturnRows(userRow(1, "alice", string(hash)))
	_, err = svc.SignIn(context.Background(), "alice", "wrong")
	wrongErr := apiError(t, err)

	if unknownErr.Status != http.StatusUnauthorized || unknownErr.Code != models.CodeInvalidCredentials {
		t.Errorf("unknown user: got status %d code %d", unknownErr.Status, unknownErr.Code)
	}
	if *unknownErr != *wrongErr {
		t.Errorf("unknown user and wrong password must be indistinguishable: %+v vs %+v", unknownErr, wrongErr)
	}
}

func TestSignIn_IssuesVerifiableToken(t *testing.T) {
	svc, mock := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("alice").
		WillReturnRows(userRow(42, "alice", string(hash)))

	resp, err := svc.SignIn(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExpiresIn != "20h" {
		t.Errorf("unexpected expiry %q", resp.ExpiresIn)
	}

	user, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if user.ID != 42 || user.Username != "alice" {
		t.Errorf("token carries wrong identity: %+v", user)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.ValidateToken("not-a-token")
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusUnauthorized || apiErr.Code != models.CodeInvalidToken {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}

	_, err = svc.ValidateToken("")
	apiErr = apiError(t, err)
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != models.CodeInvalidParam {
		t.Errorf("empty token: got status %d code %d", apiErr.Status, apiErr.Code)
	}
}
