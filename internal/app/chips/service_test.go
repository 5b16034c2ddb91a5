package chips

import (
	"context"
	"errors"
	"testing"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/store"
	"fantasy-squad-service/internal/testutil"
)

func newTestService(chips *testutil.StubChipProvider) *Service {
	st := store.NewMemoryStore()
	st.SetGameweek(domain.Gameweek{ID: 7})
	logger, _ := testutil.NewBufferLogger()
	return NewService(st, chips, nil, logger, nil)
}

func TestStatusRequiresToken(t *testing.T) {
	svc := newTestService(&testutil.StubChipProvider{})
	if _, err := svc.Status(context.Background(), ""); !errors.Is(err, providers.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestStatusPassesThrough(t *testing.T) {
	provider := &testutil.StubChipProvider{
		Status: domain.ChipStatus{
			Active: domain.ChipBenchBoost,
			Used:   []domain.ChipName{domain.ChipWildcard},
		},
	}
	svc := newTestService(provider)

	status, err := svc.Status(context.Background(), "user-token")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.IsActive(domain.ChipBenchBoost) || !status.WasUsed(domain.ChipWildcard) {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestActivateRejectsUnknownChip(t *testing.T) {
	provider := &testutil.StubChipProvider{}
	svc := newTestService(provider)

	err := svc.Activate(context.Background(), "user-token", domain.ChipName("MYSTERY"))
	if !errors.Is(err, ErrUnknownChip) {
		t.Fatalf("expected ErrUnknownChip, got %v", err)
	}
	if len(provider.Activated) != 0 {
		t.Fatalf("unknown chip must not reach upstream")
	}
}

func TestActivateForwardsUpstream(t *testing.T) {
	provider := &testutil.StubChipProvider{}
	svc := newTestService(provider)

	if err := svc.Activate(context.Background(), "user-token", domain.ChipTripleCaptain); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if len(provider.Activated) != 1 || provider.Activated[0] != domain.ChipTripleCaptain {
		t.Fatalf("unexpected activations: %+v", provider.Activated)
	}
}

func TestActivateSurfacesUpstreamRejection(t *testing.T) {
	provider := &testutil.StubChipProvider{
		ActivateErr: &providers.UpstreamError{StatusCode: 409, Message: "chip already used"},
	}
	svc := newTestService(provider)

	err := svc.Activate(context.Background(), "user-token", domain.ChipWildcard)
	upErr, ok := providers.AsUpstreamError(err)
	if !ok || upErr.Message != "chip already used" {
		t.Fatalf("expected upstream rejection, got %v", err)
	}
}
