package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecoquest-quiz-service/internal/app"
	"ecoquest-quiz-service/internal/domain"
	"ecoquest-quiz-service/internal/game"
	"ecoquest-quiz-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func TestWebSocketGameFlow(t *testing.T) {
	sessions := memory.NewSessionStore()
	banks := memory.NewBankRepository(memory.NewStaticBankLoader(sampleBanks()), time.Minute)
	progress := memory.NewProgressStore()
	service := app.NewGameService(sessions, banks, progress, game.DefaultRules(), "gamenv")
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?playerId=p1"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect joined event first, on the name prompt.
	msgType, payload := readNext(conn, t, "joined")
	if msgType != "joined" {
		t.Fatalf("expected joined, got %s", msgType)
	}
	if payload["screen"] != string(domain.ScreenNeedName) {
		t.Fatalf("expected need_name screen, got %v", payload["screen"])
	}

	writeAction(conn, t, "submitName", map[string]any{"name": "Alice"})
	snap := awaitSnapshot(conn, t, string(domain.ScreenNeedDifficulty))
	if snap["playerName"] != "Alice" {
		t.Fatalf("expected player name in snapshot, got %v", snap)
	}

	writeAction(conn, t, "chooseDifficulty", map[string]any{"difficulty": "basic"})
	snap = awaitSnapshot(conn, t, string(domain.ScreenInQuestion))
	if _, ok := snap["question"].(map[string]any); !ok {
		t.Fatalf("expected a question in snapshot, got %v", snap)
	}

	// Answer with the known correct option and expect scoring effects.
	writeAction(conn, t, "selectOption", map[string]any{"option": "Cars"})
	awaitSnapshot(conn, t, string(domain.ScreenInQuestion))
	writeAction(conn, t, "confirm", nil)
	snap = awaitSnapshot(conn, t, string(domain.ScreenAnswerConfirmed))
	if snap["points"].(float64) != 10 {
		t.Fatalf("expected 10 points after correct answer, got %v", snap["points"])
	}

	// An empty task description surfaces a validation error, not a snapshot.
	writeAction(conn, t, "logTask", map[string]any{"description": "  "})
	typ, errPayload := readNext(conn, t, "")
	if typ != "error" && typ != "effect" {
		// effects from the confirm may still be in flight; skip them
		t.Fatalf("expected error or trailing effect, got %s", typ)
	}
	for typ != "error" {
		typ, errPayload = readNext(conn, t, "")
	}
	if errPayload["message"] == "" {
		t.Fatalf("expected validation message, got %v", errPayload)
	}
}

func TestOutboxGivesUpAfterWriterExit(t *testing.T) {
	done := make(chan struct{})
	out := &outbox{ch: make(chan outboundMessage[any], 1), done: done}

	if !out.send(errorMessage("first")) {
		t.Fatalf("expected buffered send to succeed")
	}

	// Writer is gone and the buffer is full; the send must return instead
	// of blocking the reader goroutine.
	close(done)
	finished := make(chan bool, 1)
	go func() { finished <- out.send(errorMessage("second")) }()
	select {
	case delivered := <-finished:
		if delivered {
			t.Fatalf("expected send to report failure after writer exit")
		}
	case <-time.After(time.Second):
		t.Fatalf("send blocked after writer exit")
	}
}

func writeAction(conn *websocket.Conn, t *testing.T, action string, payload map[string]any) {
	t.Helper()
	msg := map[string]any{"type": action}
	if payload != nil {
		msg["payload"] = payload
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", action, err)
	}
}

// awaitSnapshot reads messages until a snapshot for the wanted screen arrives,
// skipping effect messages along the way.
func awaitSnapshot(conn *websocket.Conn, t *testing.T, screen string) map[string]any {
	t.Helper()
	for i := 0; i < 10; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "snapshot" && payload["screen"] == screen {
			return payload
		}
		if typ == "error" {
			t.Fatalf("unexpected error waiting for %s snapshot: %v", screen, payload)
		}
	}
	t.Fatalf("no snapshot for screen %s", screen)
	return nil
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func sampleBanks() map[string]domain.Bank {
	basic := []domain.Question{
		{
			Prompt:      "What is the main cause of air pollution in cities?",
			Options:     []string{"Trees", "Cars", "Birds", "Bicycles"},
			Correct:     "Cars",
			Explanation: "Cars emit harmful gases from burning fossil fuels.",
		},
	}
	return map[string]domain.Bank{
		"gamenv": {
			ID: "gamenv",
			Tiers: map[domain.Tier][]domain.Question{
				domain.TierBasic:        basic,
				domain.TierIntermediate: basic,
				domain.TierHard:         basic,
			},
		},
	}
}
