package snapshots

import (
	"os"
	"strings"
	"testing"

	"fantasy-squad-service/internal/domain"
)

func sampleSnapshot(gw int) domain.SquadSnapshot {
	return domain.SquadSnapshot{
		TeamName: "Archive XI",
		Players: []domain.Player{
			{ID: 1, Position: domain.PositionGK},
			{ID: 2, Position: domain.PositionDEF, IsBenched: true},
		},
		FreeTransfers: 1,
		Gameweek:      gw,
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 6)

	if err := w.WriteSquadSnapshot("userkey1", 7, sampleSnapshot(7)); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadSquad("userkey1", 7)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TeamName != "Archive XI" || got.Gameweek != 7 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if len(got.Players) != 2 || !got.Players[1].IsBenched {
		t.Fatalf("players not preserved: %+v", got.Players)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadSquad("userkey1", 3); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}

func TestLoadRequiresUserKey(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadSquad("", 3); err == nil {
		t.Fatalf("expected error for empty user key")
	}
}

func TestRetentionPrunesOldGameweeks(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 2)

	for gw := 1; gw <= 5; gw++ {
		if err := w.WriteSquadSnapshot("userkey1", gw, sampleSnapshot(gw)); err != nil {
			t.Fatalf("write gw %d: %v", gw, err)
		}
	}

	store := NewFSStore(dir)
	if _, err := store.LoadSquad("userkey1", 1); err == nil {
		t.Fatalf("expected gw 1 pruned")
	}
	if _, err := store.LoadSquad("userkey1", 3); err != nil {
		t.Fatalf("expected gw 3 retained: %v", err)
	}
	if _, err := store.LoadSquad("userkey1", 5); err != nil {
		t.Fatalf("expected gw 5 retained: %v", err)
	}
}

func TestWriterTouchesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 6)

	if err := w.WriteSquadSnapshot("userkey1", 4, sampleSnapshot(4)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteSquadSnapshot("userkey2", 5, sampleSnapshot(5)); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(dir + "/manifest.json")
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	content := string(data)
	for _, want := range []string{"userkey1", "userkey2", `"lastGameweek": 5`} {
		if !strings.Contains(content, want) {
			t.Fatalf("manifest missing %q:\n%s", want, content)
		}
	}
}
