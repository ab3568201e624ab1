package challenge_service

import (
	"fmt"
	"sync"
	"testing"
)

func TestChallengeStorePutGetHistory(t *testing.T) {
	store, err := NewChallengeStore(0)
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}

	challenge := Challenge{
		ID:          "c1",
		Title:       "Two Sum",
		Description: "desc",
		Difficulty:  DifficultyEasy,
		Hints:       []string{"h1", "h2"},
	}
	store.PutHistory(challenge)

	got, ok := store.Get("c1")
	if !ok {
		t.Fatal("expected challenge c1 in store")
	}
	// hints are stored, stripping happens only at response shaping
	if len(got.Hints) != 2 {
		t.Errorf("stored hints = %d, want 2", len(got.Hints))
	}
	if got.Title != challenge.Title || got.Difficulty != challenge.Difficulty {
		t.Errorf("stored challenge differs from inserted one: %+v", got)
	}
}

func TestChallengeStoreReadThroughCache(t *testing.T) {
	store, err := NewChallengeStore(4)
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}

	store.PutCache(Challenge{ID: "batch-1", Title: "Batch"})

	if _, ok := store.Get("batch-1"); !ok {
		t.Error("expected cache entry to be visible through Get")
	}
}

func TestChallengeStoreMissingId(t *testing.T) {
	store, err := NewChallengeStore(0)
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}

	if _, ok := store.Get("nope"); ok {
		t.Error("expected a miss for an unknown id")
	}
}

func TestChallengeStoreOverwrite(t *testing.T) {
	store, err := NewChallengeStore(0)
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}

	store.PutHistory(Challenge{ID: "c1", Title: "old"})
	store.PutHistory(Challenge{ID: "c1", Title: "new"})

	got, _ := store.Get("c1")
	if got.Title != "new" {
		t.Errorf("overwrite did not take effect, title = %q", got.Title)
	}
	if store.HistoryLen() != 1 {
		t.Errorf("history length = %d, want 1", store.HistoryLen())
	}
}

func TestChallengeStoreConcurrentAccess(t *testing.T) {
	store, err := NewChallengeStore(16)
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", n)
			store.PutHistory(Challenge{ID: id})
			store.PutCache(Challenge{ID: id + "-cache"})
			store.Get(id)
		}(i)
	}
	wg.Wait()

	if store.HistoryLen() != 32 {
		t.Errorf("history length = %d, want 32", store.HistoryLen())
	}
}
