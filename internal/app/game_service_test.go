package app_test

import (
	"context"
	"testing"
	"time"

	"ecoquest-quiz-service/internal/app"
	"ecoquest-quiz-service/internal/domain"
	"ecoquest-quiz-service/internal/game"
	"ecoquest-quiz-service/internal/infra/memory"
)

func TestJoinAndOnboarding(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	snap, err := service.Join(ctx, "p1")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if snap.Screen != domain.ScreenNeedName {
		t.Fatalf("expected need_name on first join, got %s", snap.Screen)
	}

	if _, _, err := service.SubmitName(ctx, "p1", "  "); err != domain.ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	snap, _, err = service.SubmitName(ctx, "p1", "Alice")
	if err != nil {
		t.Fatalf("submit name failed: %v", err)
	}
	if snap.Screen != domain.ScreenNeedDifficulty {
		t.Fatalf("expected need_difficulty, got %s", snap.Screen)
	}
}

func TestOperationsRequireSession(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	if _, _, err := service.SubmitName(ctx, "ghost", "Alice"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session error, got %v", err)
	}
	if _, err := service.Certificate(ctx, "ghost"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session error, got %v", err)
	}
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	if _, err := service.Join(ctx, "p1"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	ch, cancel, err := service.Subscribe(ctx, "p1")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	<-ch // initial snapshot

	if _, _, err := service.SubmitName(ctx, "p1", "Alice"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	update := <-ch
	if update.PlayerName != "Alice" || update.Screen != domain.ScreenNeedDifficulty {
		t.Fatalf("expected updated snapshot, got %+v", update)
	}
}

func TestProgressSurvivesSessionDrop(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	if _, err := service.Join(ctx, "p1"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, _, err := service.SubmitName(ctx, "p1", "Alice"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	if _, _, err := service.ChooseDifficulty(ctx, "p1", "basic"); err != nil {
		t.Fatalf("choose difficulty: %v", err)
	}
	snap, _, err := service.LogTask(ctx, "p1", "planted a tree")
	if err != nil {
		t.Fatalf("log task: %v", err)
	}
	if snap.Points != 20 {
		t.Fatalf("expected 20 points, got %d", snap.Points)
	}

	// No subscribers, so the in-memory session is dropped on leave.
	service.Leave(ctx, "p1")
	if _, _, err := service.LogTask(ctx, "p1", "again"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session gone after leave, got %v", err)
	}

	// Rejoining restores the persisted progress from the store.
	snap, err = service.Join(ctx, "p1")
	if err != nil {
		t.Fatalf("rejoin failed: %v", err)
	}
	if snap.PlayerName != "Alice" || snap.Points != 20 {
		t.Fatalf("expected restored progress, got %+v", snap)
	}
	if !containsBadge(snap.Badges, domain.BadgeActionHero) {
		t.Fatalf("expected Action Hero restored, got %v", snap.Badges)
	}
}

func TestPlayersAreIsolated(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for _, id := range []string{"p1", "p2"} {
		if _, err := service.Join(ctx, id); err != nil {
			t.Fatalf("join %s: %v", id, err)
		}
	}
	if _, _, err := service.SubmitName(ctx, "p1", "Alice"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	if _, _, err := service.LogTask(ctx, "p1", "cleaned the park"); err != nil {
		t.Fatalf("log task: %v", err)
	}

	snap, err := service.Join(ctx, "p2")
	if err != nil {
		t.Fatalf("join p2: %v", err)
	}
	if snap.Points != 0 || snap.PlayerName != "" {
		t.Fatalf("expected p2 untouched by p1's progress, got %+v", snap)
	}
}

func newTestService() *app.GameService {
	sessions := memory.NewSessionStore()
	banks := memory.NewBankRepository(memory.NewStaticBankLoader(map[string]domain.Bank{
		"gamenv": testBank(),
	}), 5*time.Minute)
	progress := memory.NewProgressStore()
	now := func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return app.NewGameServiceWithClock(sessions, banks, progress, game.DefaultRules(), "gamenv", now)
}

func testBank() domain.Bank {
	qs := []domain.Question{
		{
			Prompt:      "Select the eco-friendly option",
			Options:     []string{"Litter", "Recycle", "Burn waste", "Waste water"},
			Correct:     "Recycle",
			Explanation: "Recycling keeps material out of landfills.",
		},
	}
	return domain.Bank{
		ID: "gamenv",
		Tiers: map[domain.Tier][]domain.Question{
			domain.TierBasic:        qs,
			domain.TierIntermediate: qs,
			domain.TierHard:         qs,
		},
	}
}

func containsBadge(badges []domain.BadgeID, id domain.BadgeID) bool {
	for _, b := range badges {
		if b == id {
			return true
		}
	}
	return false
}
