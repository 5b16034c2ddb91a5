package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/store"
	"fantasy-squad-service/internal/testutil"
)

func newAdminFixture(t *testing.T, token string) (*AdminHandler, *testutil.StubPoolProvider, *store.MemoryStore) {
	t.Helper()
	provider := &testutil.StubPoolProvider{
		Players:  []domain.Player{{ID: 1}, {ID: 2}, {ID: 3}},
		Gameweek: domain.Gameweek{ID: 8},
	}
	st := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	return NewAdminHandler(provider, st, token, logger), provider, st
}

func TestRefreshPoolRequiresToken(t *testing.T) {
	admin, provider, _ := newAdminFixture(t, "admin-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/pool/refresh", nil)
	rec := httptest.NewRecorder()
	admin.RefreshPool(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if provider.PlayerCalls != 0 {
		t.Fatalf("unauthorized refresh must not hit upstream")
	}
}

func TestRefreshPoolRejectsWrongToken(t *testing.T) {
	admin, _, _ := newAdminFixture(t, "admin-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/pool/refresh", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	admin.RefreshPool(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}
}

func TestRefreshPoolUpdatesStore(t *testing.T) {
	admin, provider, st := newAdminFixture(t, "admin-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/pool/refresh", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	rec := httptest.NewRecorder()
	admin.RefreshPool(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if provider.PlayerCalls != 1 || provider.GameweekCalls != 1 {
		t.Fatalf("expected one fetch of each, got players=%d gameweeks=%d", provider.PlayerCalls, provider.GameweekCalls)
	}
	if st.PoolSize() != 3 {
		t.Fatalf("pool not updated: size %d", st.PoolSize())
	}
	if st.Gameweek().ID != 8 {
		t.Fatalf("gameweek not updated: %+v", st.Gameweek())
	}
}

func TestRefreshPoolDisabledWithoutConfiguredToken(t *testing.T) {
	admin, provider, _ := newAdminFixture(t, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/pool/refresh", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	admin.RefreshPool(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when admin disabled, got %d", rec.Code)
	}
	if provider.PlayerCalls != 0 {
		t.Fatalf("disabled admin must not hit upstream")
	}
}
