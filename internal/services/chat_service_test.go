package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"balcao/internal/chat"
	"balcao/internal/repos"
	"balcao/internal/services"
)

func msgdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE messages(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  username TEXT NOT NULL,
	  text TEXT NOT NULL,
	  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestChatService_HistoryPrunesExpiredMessages(t *testing.T) {
	db := msgdb(t)
	msgRepo := repos.NewMessageRepo(db)
	svc := services.NewChatService(msgRepo, chat.NewHub(), 24*time.Hour)

	now := time.Now().UTC()
	if err := msgRepo.Insert("user1", "mensagem antiga", now.Add(-25*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := msgRepo.Insert("user2", "mensagem recente", now.Add(-1*time.Hour)); err != nil {
		t.Fatal(err)
	}

	msgs, err := svc.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("want 1 surviving message, got %d", len(msgs))
	}
	if msgs[0].Username != "user2" || msgs[0].Text != "mensagem recente" {
		t.Fatalf("wrong survivor: %+v", msgs[0])
	}

	// The expired row is gone for good, not just filtered.
	if n, _ := msgRepo.Count(); n != 1 {
		t.Fatalf("want 1 row left in store, got %d", n)
	}
}

func TestChatService_HistoryOrdersOldestFirst(t *testing.T) {
	db := msgdb(t)
	msgRepo := repos.NewMessageRepo(db)
	svc := services.NewChatService(msgRepo, chat.NewHub(), 24*time.Hour)

	now := time.Now().UTC()
	_ = msgRepo.Insert("user1", "segunda", now.Add(-1*time.Hour))
	_ = msgRepo.Insert("user2", "primeira", now.Add(-2*time.Hour))
	_ = msgRepo.Insert("user3", "terceira", now)

	msgs, err := svc.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 3 {
		t.Fatalf("want 3 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "primeira" || msgs[1].Text != "segunda" || msgs[2].Text != "terceira" {
		t.Fatalf("wrong order: %+v", msgs)
	}
}

func TestChatService_PostPersistsAndBroadcasts(t *testing.T) {
	db := msgdb(t)
	msgRepo := repos.NewMessageRepo(db)
	hub := chat.NewHub()
	svc := services.NewChatService(msgRepo, hub, 24*time.Hour)

	_, feed := hub.Subscribe()

	if err := svc.Post("user1", "oi pessoal"); err != nil {
		t.Fatal(err)
	}

	select {
	case line := <-feed:
		if line != "user1: oi pessoal" {
			t.Fatalf("broadcast %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	msgs, err := msgRepo.ListAsc()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Username != "user1" || msgs[0].Text != "oi pessoal" {
		t.Fatalf("message not persisted: %+v", msgs)
	}
}
