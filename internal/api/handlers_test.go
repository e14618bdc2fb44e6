package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ignite/listserv/internal/auth"
	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/render"
	"github.com/ignite/listserv/internal/repository/memory"
	"github.com/ignite/listserv/internal/service/mailing"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/subscriber"
	"github.com/ignite/listserv/internal/service/template"
	"github.com/ignite/listserv/internal/service/user"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse"

type testAPI struct {
	t       *testing.T
	handler http.Handler
	store   *memory.Store
}

func newTestAPI(t *testing.T, revoked auth.Revocations) *testAPI {
	t.Helper()
	store := memory.NewStore()

	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)

	users := user.NewService(store.Users(), hasher)
	lists := mailinglist.NewService(store.MailingLists())
	templates := template.NewService(store.Templates(), render.NewLiquid())

	h := NewHandlers(Deps{
		Users:         users,
		MailingLists:  lists,
		Subscribers:   subscriber.NewService(store.Subscribers(), lists),
		Templates:     templates,
		Mailings:      mailing.NewService(store.Mailings(), lists, templates),
		Tokens:        tokens,
		Authenticator: auth.NewAuthenticator(tokens, users, revoked),
	})
	return &testAPI{
		t:       t,
		handler: SetupRoutes(h, NewHealthChecker(nil, nil), []string{"*"}),
		store:   store,
	}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) register(username string, admin bool) domain.User {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/users", "", map[string]any{
		"username": username,
		"password": testPassword,
		"email":    username + "@example.com",
		"is_admin": admin,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[domain.User](a.t, rec)
}

func (a *testAPI) login(username string) string {
	a.t.Helper()
	form := url.Values{"username": {username}, "password": {testPassword}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[TokenResponse](a.t, rec).AccessToken
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["detail"]
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestAPI(t, nil)

	u := a.register("alice", false)
	assert.NotZero(t, u.ID)
	assert.True(t, u.IsActive)
	assert.Empty(t, u.HashedPassword)

	rec := a.do(http.MethodPost, "/users", "", map[string]any{
		"username": "alice", "password": "x", "email": "other@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPost, "/token", "", credentials{Username: "alice", Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decode[TokenResponse](t, rec)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, int(auth.TokenTTL.Seconds()), tok.ExpiresIn)

	rec = a.do(http.MethodPost, "/token", "", credentials{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = a.do(http.MethodPost, "/token", "", credentials{Username: "nobody", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPost, "/token", "", credentials{Username: "alice"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodPost, "/users", "", map[string]any{"username": "bob"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCurrentUser(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	token := a.login("alice")

	rec := a.do(http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", detail(t, rec))

	rec = a.do(http.MethodGet, "/users/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", detail(t, rec))

	rec = a.do(http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode[domain.User](t, rec).Username)
	assert.NotContains(t, rec.Body.String(), "hashed_password")
}

func TestUnauthorizedResponsesAreIdentical(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("root", true)
	bob := a.register("bob", false)
	rootTok := a.login("root")
	bobTok := a.login("bob")

	sign := func(secret string, expiresAt time.Time) string {
		id := bob.ID
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			UserID: &id,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
				ID:        "hand-signed",
			},
		}).SignedString([]byte(secret))
		require.NoError(t, err)
		return raw
	}
	expired := sign("test-secret", time.Now().Add(-time.Minute))
	foreign := sign("some-other-secret", time.Now().Add(time.Minute))

	rec := a.do(http.MethodDelete, fmt.Sprintf("/users/%d", bob.ID), rootTok, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	withHeader := func(value string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		if value != "" {
			req.Header.Set("Authorization", value)
		}
		rec := httptest.NewRecorder()
		a.handler.ServeHTTP(rec, req)
		return rec
	}

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic cm9vdDpwdw==",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer garbage",
		"expired token":  "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
		"deleted user":   "Bearer " + bobTok,
	}
	want := `{"detail":"Could not validate credentials"}`
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := withHeader(header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, want, rec.Body.String())
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("root", true)
	bob := a.register("bob", false)
	rootTok := a.login("root")
	bobTok := a.login("bob")

	rec := a.do(http.MethodGet, "/users", bobTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/users", rootTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.User](t, rec), 2)

	path := fmt.Sprintf("/users/%d", bob.ID)
	rec = a.do(http.MethodPut, path, rootTok, map[string]any{"username": "", "email": "robert@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.User](t, rec)
	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "robert@example.com", updated.Email)

	rec = a.do(http.MethodPut, "/users/9999", rootTok, map[string]any{"email": "x@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, path, bobTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodDelete, path, rootTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, "/users/me", bobTok, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodDelete, path, rootTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMailingListOwnership(t *testing.T) {
	a := newTestAPI(t, nil)
	alice := a.register("alice", false)
	a.register("bob", false)
	aliceTok := a.login("alice")
	bobTok := a.login("bob")

	rec := a.do(http.MethodPost, "/mailing_lists", aliceTok, map[string]string{"name": "News"})
	require.Equal(t, http.StatusCreated, rec.Code)
	list := decode[domain.MailingList](t, rec)
	assert.Equal(t, alice.ID, list.UserID)

	path := fmt.Sprintf("/mailing_lists/%d", list.ID)

	rec = a.do(http.MethodGet, path, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Mailing list not found", detail(t, rec))

	rec = a.do(http.MethodPut, path, bobTok, map[string]string{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, path, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, path, aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "News", decode[domain.MailingList](t, rec).Name)

	rec = a.do(http.MethodGet, "/mailing_lists", bobTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = a.do(http.MethodPut, path, aliceTok, map[string]string{"name": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "News", decode[domain.MailingList](t, rec).Name)

	rec = a.do(http.MethodPut, path, aliceTok, map[string]string{"name": "Weekly"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Weekly", decode[domain.MailingList](t, rec).Name)

	rec = a.do(http.MethodDelete, path, aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, path, aliceTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidPathParam(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	token := a.login("alice")

	for _, path := range []string{"/mailing_lists/abc", "/mailing_lists/0", "/templates/-4", "/mailings/x"} {
		rec := a.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
	}
}

func TestSubscribers(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	a.register("bob", false)
	aliceTok := a.login("alice")
	bobTok := a.login("bob")

	first := decode[domain.MailingList](t, a.do(http.MethodPost, "/mailing_lists", aliceTok, map[string]string{"name": "A"}))
	second := decode[domain.MailingList](t, a.do(http.MethodPost, "/mailing_lists", aliceTok, map[string]string{"name": "B"}))

	rec := a.do(http.MethodPost, "/subscribers", aliceTok, map[string]any{"email": "Reader@Example.com", "mailing_list_id": first.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	sub := decode[domain.Subscriber](t, rec)
	assert.Equal(t, "reader@example.com", sub.Email)

	rec = a.do(http.MethodPost, "/subscribers", aliceTok, map[string]any{"email": "reader@example.com", "mailing_list_id": second.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPost, "/subscribers", aliceTok, map[string]any{"email": "not-an-email", "mailing_list_id": first.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(http.MethodPost, "/subscribers", bobTok, map[string]any{"email": "b@example.com", "mailing_list_id": first.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, fmt.Sprintf("/subscribers/%d", first.ID), aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Subscriber](t, rec), 1)

	rec = a.do(http.MethodGet, fmt.Sprintf("/subscribers/%d", first.ID), bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	subPath := fmt.Sprintf("/subscribers/%d", sub.ID)
	rec = a.do(http.MethodPut, subPath, aliceTok, map[string]string{"email": "new@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new@example.com", decode[domain.Subscriber](t, rec).Email)

	rec = a.do(http.MethodDelete, subPath, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, subPath, aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodDelete, subPath, aliceTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Subscriber not found", detail(t, rec))
}

func TestTemplates(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	a.register("bob", false)
	aliceTok := a.login("alice")
	bobTok := a.login("bob")

	rec := a.do(http.MethodPost, "/templates", aliceTok, map[string]string{"name": "Welcome", "content": "Hello {{ name }}"})
	require.Equal(t, http.StatusCreated, rec.Code)
	tpl := decode[domain.Template](t, rec)
	path := fmt.Sprintf("/templates/%d", tpl.ID)

	rec = a.do(http.MethodPut, path, aliceTok, map[string]string{"name": "Hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.Template](t, rec)
	assert.Equal(t, "Hi", updated.Name)
	assert.Equal(t, "Hello {{ name }}", updated.Content)

	rec = a.do(http.MethodPost, path+"/preview", aliceTok, PreviewRequest{Variables: map[string]any{"name": "Ann"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello Ann", decode[PreviewResponse](t, rec).Rendered)

	rec = a.do(http.MethodPost, path+"/preview", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello ", decode[PreviewResponse](t, rec).Rendered)

	rec = a.do(http.MethodGet, path, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, path, bobTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You are not allowed to delete this template", detail(t, rec))

	rec = a.do(http.MethodDelete, "/templates/9999", bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, path, aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMailings(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("root", true)
	a.register("alice", false)
	a.register("bob", false)
	rootTok := a.login("root")
	aliceTok := a.login("alice")
	bobTok := a.login("bob")

	list := decode[domain.MailingList](t, a.do(http.MethodPost, "/mailing_lists", aliceTok, map[string]string{"name": "L"}))
	tpl := decode[domain.Template](t, a.do(http.MethodPost, "/templates", aliceTok, map[string]string{"name": "T", "content": "c"}))
	at := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	rec := a.do(http.MethodPost, "/mailings", aliceTok, map[string]any{
		"mailing_list_id": list.ID, "template_id": tpl.ID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(http.MethodPost, "/mailings", bobTok, map[string]any{
		"mailing_list_id": list.ID, "template_id": tpl.ID, "scheduled_at": at,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPost, "/mailings", aliceTok, map[string]any{
		"mailing_list_id": list.ID, "template_id": tpl.ID, "scheduled_at": at,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	m := decode[domain.Mailing](t, rec)
	require.NotNil(t, m.ScheduledAt)
	assert.True(t, at.Equal(*m.ScheduledAt))
	assert.Nil(t, m.SentAt)

	path := fmt.Sprintf("/mailings/%d", m.ID)

	rec = a.do(http.MethodGet, path, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPost, path+"/send", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decode[domain.Mailing](t, rec).SentAt)

	rec = a.do(http.MethodPost, path+"/send", aliceTok, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodGet, "/mailings/all", aliceTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/mailings/all", rootTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Mailing](t, rec), 1)

	rec = a.do(http.MethodGet, "/mailings", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Mailing](t, rec), 1)

	rec = a.do(http.MethodDelete, path, aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodDelete, fmt.Sprintf("/mailing_lists/%d", list.ID), aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeletingListOrTemplateRemovesMailings(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	tok := a.login("alice")
	at := time.Now().Add(time.Hour).UTC()

	newMailing := func(listID, tplID int64) domain.Mailing {
		rec := a.do(http.MethodPost, "/mailings", tok, map[string]any{
			"mailing_list_id": listID, "template_id": tplID, "scheduled_at": at,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		return decode[domain.Mailing](t, rec)
	}

	listA := decode[domain.MailingList](t, a.do(http.MethodPost, "/mailing_lists", tok, map[string]string{"name": "A"}))
	listB := decode[domain.MailingList](t, a.do(http.MethodPost, "/mailing_lists", tok, map[string]string{"name": "B"}))
	tplA := decode[domain.Template](t, a.do(http.MethodPost, "/templates", tok, map[string]string{"name": "TA", "content": "a"}))
	tplB := decode[domain.Template](t, a.do(http.MethodPost, "/templates", tok, map[string]string{"name": "TB", "content": "b"}))

	onListA := newMailing(listA.ID, tplA.ID)
	onTplB := newMailing(listB.ID, tplB.ID)
	survivor := newMailing(listB.ID, tplA.ID)

	rec := a.do(http.MethodDelete, fmt.Sprintf("/mailing_lists/%d", listA.ID), tok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = a.do(http.MethodGet, fmt.Sprintf("/mailings/%d", onListA.ID), tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, fmt.Sprintf("/templates/%d", tplB.ID), tok, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = a.do(http.MethodGet, fmt.Sprintf("/mailings/%d", onTplB.ID), tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/mailings", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decode[[]domain.Mailing](t, rec)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)
}

func TestRevokeToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	a := newTestAPI(t, auth.NewRedisRevocations(client))
	a.register("alice", false)
	token := a.login("alice")
	other := a.login("alice")

	rec := a.do(http.MethodPost, "/token/revoke", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodGet, "/users/me", other, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRevokeWithoutStore(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice", false)
	token := a.login("alice")

	rec := a.do(http.MethodPost, "/token/revoke", token, nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = a.do(http.MethodPost, "/token/revoke", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthWithoutDependencies(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[HealthStatus](t, rec).Status)

	rec = a.do(http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
