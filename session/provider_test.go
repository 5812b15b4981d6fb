package session

import (
	"errors"
	"testing"
)

type failingStorage struct{}

func (failingStorage) Load() (string, bool) { return "", false }
func (failingStorage) Save(string) error    { return errors.New("disk full") }

func TestSessionIDIsStable(t *testing.T) {
	p := NewProvider(NewMemoryStorage())

	first := p.SessionID()
	if first == "" {
		t.Fatal("SessionID returned empty id")
	}
	if second := p.SessionID(); second != first {
		t.Errorf("SessionID not stable: %q then %q", first, second)
	}
}

func TestSessionIDLoadsPersistedID(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Save("existing-session"); err != nil {
		t.Fatal(err)
	}

	p := NewProvider(storage)
	if got := p.SessionID(); got != "existing-session" {
		t.Errorf("SessionID = %q, want the persisted id", got)
	}
}

func TestSessionIDSurvivesStorageFailure(t *testing.T) {
	p := NewProvider(failingStorage{})

	first := p.SessionID()
	if first == "" {
		t.Fatal("SessionID returned empty id despite storage failure")
	}
	if second := p.SessionID(); second != first {
		t.Errorf("id not held in memory across storage failure: %q then %q", first, second)
	}
}

func TestResetMintsFreshID(t *testing.T) {
	storage := NewMemoryStorage()
	p := NewProvider(storage)

	before := p.SessionID()
	after := p.Reset()
	if after == before {
		t.Fatal("Reset returned the old id")
	}
	if got := p.SessionID(); got != after {
		t.Errorf("SessionID after Reset = %q, want %q", got, after)
	}
	if stored, ok := storage.Load(); !ok || stored != after {
		t.Errorf("storage holds %q, want the rotated id %q", stored, after)
	}
}
