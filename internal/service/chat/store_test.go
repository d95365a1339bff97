package chat_test

import (
	"sync"
	"testing"

	model "github.com/astrooutdoor/fence-assistant/backend/internal/model/chat"
	chat "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
)

func TestGetOrCreateGeneratesID(t *testing.T) {
	store := chat.NewStore()

	id, sess := store.GetOrCreate("", "", "203.0.113.9")
	if id == "" {
		t.Fatal("expected a generated session id")
	}
	if sess.UserName != model.DefaultUserName {
		t.Fatalf("expected default user name, got %q", sess.UserName)
	}
	if sess.TurnCount != 0 || len(sess.Turns) != 0 {
		t.Fatalf("expected an empty session, got %d turns", len(sess.Turns))
	}
}

func TestGetOrCreateUnknownIDCreatesFreshSession(t *testing.T) {
	store := chat.NewStore()

	id, _ := store.GetOrCreate("never-seen-before", "Dana", "")
	if id == "never-seen-before" {
		t.Fatal("unknown identifier should be replaced with a generated one")
	}

	again, _ := store.GetOrCreate(id, "", "")
	if again != id {
		t.Fatalf("known identifier should be stable: got %s want %s", again, id)
	}
}

func TestTurnCountTracksUserTurns(t *testing.T) {
	store := chat.NewStore()
	id, _ := store.GetOrCreate("", "", "")

	store.RecordUserTurn(id, "hello", nil)
	store.RecordAssistantTurn(id, "hi there")
	store.RecordUserTurn(id, "120 feet, 6ft", nil)
	store.RecordAssistantTurn(id, "estimate follows")

	if got := store.TurnCount(id); got != 2 {
		t.Fatalf("turn count = %d, want 2", got)
	}

	transcript := store.Transcript(id)
	if len(transcript) != 4 {
		t.Fatalf("transcript length = %d, want 4", len(transcript))
	}
	for i, turn := range transcript {
		want := model.RoleUser
		if i%2 == 1 {
			want = model.RoleAssistant
		}
		if turn.Role != want {
			t.Fatalf("turn %d role = %s, want %s", i, turn.Role, want)
		}
	}
}

func TestHistoryForReplayExcludesCurrentTurn(t *testing.T) {
	store := chat.NewStore()
	id, _ := store.GetOrCreate("", "", "")

	store.RecordUserTurn(id, "first", nil)
	store.RecordAssistantTurn(id, "reply")
	store.RecordUserTurn(id, "second", []string{"data:image/png;base64,AAAA"})

	history := store.HistoryForReplay(id)
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[len(history)-1].Content != "reply" {
		t.Fatalf("history must stop before the current user turn, last entry was %q", history[len(history)-1].Content)
	}
}

func TestHistoryForReplayEmptySession(t *testing.T) {
	store := chat.NewStore()
	id, _ := store.GetOrCreate("", "", "")

	if history := store.HistoryForReplay(id); len(history) != 0 {
		t.Fatalf("expected empty history, got %d turns", len(history))
	}
}

func TestConcurrentNewSessionsGetDistinctIDs(t *testing.T) {
	store := chat.NewStore()

	const n = 16
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, _ := store.GetOrCreate("", "", "")
			store.RecordUserTurn(id, "hello", nil)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
		if got := len(store.Transcript(id)); got != 1 {
			t.Fatalf("session %s transcript length = %d, want 1", id, got)
		}
	}
	if store.Len() != n {
		t.Fatalf("store holds %d sessions, want %d", store.Len(), n)
	}
}
