package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"ecoquest-quiz-service/internal/domain"
)

// Store is the persistent key-value contract the session writes through to.
// Absence of a key is the zero/empty default, never an error; writes are
// synchronous and complete before the operation returns.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Persisted field keys. Numeric fields are stored as decimal strings and the
// badge list as a JSON-encoded array.
const (
	keyPoints          = "points"
	keyBadges          = "badges"
	keyCurrentQuestion = "currentQuestion"
	keyStreak          = "streak"
	keyLastVisit       = "lastVisit"
	keyAnsweredToday   = "questionsAnsweredToday"
	keyFactsLearned    = "factsLearned"
	keyUserName        = "userName"
	keyDifficulty      = "difficulty"
)

const (
	dateLayout   = "2006-01-02"
	tipDismissMS = 3000
	soundCorrect = "correct"
	soundTask    = "task"
)

// Session is the quiz state machine for a single player. It owns the session
// state and the transition rules; persistence is write-through on every
// mutation. Session is not safe for concurrent use; callers serialize
// operations, matching the one-logical-writer model.
type Session struct {
	store Store
	rules Rules
	bank  domain.Bank
	now   func() time.Time
	rng   *rand.Rand

	name            string
	tier            domain.Tier
	hasTier         bool
	order           []domain.Question
	index           int
	points          int
	badges          []domain.BadgeID
	selected        string
	revealed        bool
	selectedCorrect bool
	streak          int
	lastVisit       string
	answeredToday   int
	facts           int
	screen          domain.Screen
	challengeStatus string
	completion      string
}

// NewSession restores a session from the store (absent keys default to zero
// values) and places it on the screen the restored state implies.
func NewSession(bank domain.Bank, store Store, rules Rules) *Session {
	return NewSessionWithClock(bank, store, rules, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSessionWithClock allows deterministic timestamps and shuffles in tests.
func NewSessionWithClock(bank domain.Bank, store Store, rules Rules, now func() time.Time, rng *rand.Rand) *Session {
	s := &Session{
		store: store,
		rules: rules,
		bank:  bank,
		now:   now,
		rng:   rng,
	}
	s.restore()
	return s
}

func (s *Session) restore() {
	s.name, _ = s.store.Get(keyUserName)
	if raw, ok := s.store.Get(keyDifficulty); ok && raw != "" {
		s.tier = domain.ParseTier(raw)
		s.hasTier = true
	}
	s.points = s.getInt(keyPoints)
	s.streak = s.getInt(keyStreak)
	s.answeredToday = s.getInt(keyAnsweredToday)
	s.facts = s.getInt(keyFactsLearned)
	s.index = s.getInt(keyCurrentQuestion)
	s.lastVisit, _ = s.store.Get(keyLastVisit)
	s.badges = s.getBadges()

	switch {
	case s.name == "":
		s.screen = domain.ScreenNeedName
	case !s.hasTier:
		s.screen = domain.ScreenNeedDifficulty
	default:
		s.order = s.shuffled(s.bank.Questions(s.tier))
		s.checkDaily()
		s.persistProgress()
		if s.index >= len(s.order) {
			s.index = len(s.order)
			s.screen = domain.ScreenCompleted
			s.completion = s.completionMessage()
		} else {
			s.screen = domain.ScreenInQuestion
		}
	}
}

// SubmitName captures the player name and moves on to difficulty selection.
// A blank name is a validation failure surfaced as a user prompt.
func (s *Session) SubmitName(input string) (domain.Snapshot, []domain.Effect, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return domain.Snapshot{}, nil, domain.ErrEmptyName
	}
	s.name = name
	if !s.hasTier {
		s.screen = domain.ScreenNeedDifficulty
	}
	s.store.Set(keyUserName, s.name)
	return s.Snapshot(), nil, nil
}

// ChooseDifficulty fixes the tier, shuffles a fresh question order and starts
// the quiz run. Unrecognized tiers fall back to basic; a tier with no
// questions completes the run immediately instead of presenting one.
func (s *Session) ChooseDifficulty(raw string) (domain.Snapshot, []domain.Effect, error) {
	if s.name == "" {
		return domain.Snapshot{}, nil, domain.ErrEmptyName
	}
	s.tier = domain.ParseTier(raw)
	s.hasTier = true
	s.index = 0
	s.selected = ""
	s.revealed = false
	s.selectedCorrect = false
	s.completion = ""
	s.order = s.shuffled(s.bank.Questions(s.tier))
	if len(s.order) == 0 {
		s.screen = domain.ScreenCompleted
		s.completion = s.completionMessage()
	} else {
		s.screen = domain.ScreenInQuestion
	}
	s.checkDaily()

	s.store.Set(keyDifficulty, string(s.tier))
	s.store.Set(keyCurrentQuestion, strconv.Itoa(s.index))
	s.persistProgress()
	return s.Snapshot(), nil, nil
}

// SelectOption records the player's pick for the current question. Re-selecting
// before confirmation overwrites the prior choice; there is no scoring effect.
func (s *Session) SelectOption(opt string) (domain.Snapshot, []domain.Effect, error) {
	if s.screen != domain.ScreenInQuestion {
		return domain.Snapshot{}, nil, domain.ErrNoQuestion
	}
	q := s.order[s.index]
	found := false
	for _, candidate := range q.Options {
		if candidate == opt {
			found = true
			break
		}
	}
	if !found {
		return domain.Snapshot{}, nil, domain.ErrOptionNotFound
	}
	s.selected = opt
	return s.Snapshot(), nil, nil
}

// ConfirmSelection scores the selected option, reveals the explanation, and
// runs the badge and daily-challenge checks on a correct answer.
func (s *Session) ConfirmSelection() (domain.Snapshot, []domain.Effect, error) {
	if s.screen != domain.ScreenInQuestion {
		return domain.Snapshot{}, nil, domain.ErrNoQuestion
	}
	if s.selected == "" {
		return domain.Snapshot{}, nil, domain.ErrNoSelection
	}

	q := s.order[s.index]
	s.selectedCorrect = s.selected == q.Correct
	s.revealed = true
	s.screen = domain.ScreenAnswerConfirmed

	var effects []domain.Effect
	if s.selectedCorrect {
		s.points += s.rules.PointsPerCorrect
		s.facts++
		s.answeredToday++
		s.awardThresholdBadges()
		s.checkDaily()
		effects = append(effects,
			domain.Effect{Kind: domain.EffectConfetti},
			domain.Effect{Kind: domain.EffectSound, Sound: soundCorrect},
		)
	}
	effects = append(effects, domain.Effect{
		Kind:           domain.EffectTip,
		Text:           ecoTips[s.rng.Intn(len(ecoTips))],
		DismissAfterMS: tipDismissMS,
	})

	s.persistProgress()
	return s.Snapshot(), effects, nil
}

// Advance moves to the next question, or to the completion screen once the
// question order is exhausted.
func (s *Session) Advance() (domain.Snapshot, []domain.Effect, error) {
	switch s.screen {
	case domain.ScreenAnswerConfirmed:
	case domain.ScreenCompleted:
		return domain.Snapshot{}, nil, domain.ErrQuizCompleted
	default:
		return domain.Snapshot{}, nil, domain.ErrNoQuestion
	}

	s.index++
	s.store.Set(keyCurrentQuestion, strconv.Itoa(s.index))
	if s.index >= len(s.order) {
		s.screen = domain.ScreenCompleted
		s.completion = s.completionMessage()
	} else {
		s.selected = ""
		s.revealed = false
		s.selectedCorrect = false
		s.screen = domain.ScreenInQuestion
	}
	return s.Snapshot(), nil, nil
}

// PlayAgain starts a fresh run at a new difficulty while keeping the
// cumulative points, badges, streak and facts.
func (s *Session) PlayAgain() (domain.Snapshot, []domain.Effect, error) {
	s.index = 0
	s.order = nil
	s.tier = ""
	s.hasTier = false
	s.selected = ""
	s.revealed = false
	s.selectedCorrect = false
	s.completion = ""
	if s.name == "" {
		s.screen = domain.ScreenNeedName
	} else {
		s.screen = domain.ScreenNeedDifficulty
	}
	s.store.Set(keyCurrentQuestion, strconv.Itoa(s.index))
	s.store.Set(keyDifficulty, "")
	return s.Snapshot(), nil, nil
}

// ResetGame wipes every persisted field and in-memory counter.
func (s *Session) ResetGame() (domain.Snapshot, []domain.Effect, error) {
	for _, key := range []string{
		keyPoints, keyBadges, keyCurrentQuestion, keyStreak, keyLastVisit,
		keyAnsweredToday, keyFactsLearned, keyUserName, keyDifficulty,
	} {
		s.store.Delete(key)
	}
	s.name = ""
	s.tier = ""
	s.hasTier = false
	s.order = nil
	s.index = 0
	s.points = 0
	s.badges = nil
	s.selected = ""
	s.revealed = false
	s.selectedCorrect = false
	s.streak = 0
	s.lastVisit = ""
	s.answeredToday = 0
	s.facts = 0
	s.challengeStatus = ""
	s.completion = ""
	s.screen = domain.ScreenNeedName
	return s.Snapshot(), nil, nil
}

// LogTask awards points for a real-world eco-task, independent of quiz
// progress. A blank description is a validation failure.
func (s *Session) LogTask(description string) (domain.Snapshot, []domain.Effect, error) {
	if strings.TrimSpace(description) == "" {
		return domain.Snapshot{}, nil, domain.ErrEmptyTask
	}
	s.points += s.rules.TaskPoints
	s.awardThresholdBadges()
	if !s.hasBadge(domain.BadgeActionHero) {
		s.badges = append(s.badges, domain.BadgeActionHero)
	}
	s.persistProgress()

	effects := []domain.Effect{
		{Kind: domain.EffectSound, Sound: soundTask},
		{Kind: domain.EffectAlert, Text: fmt.Sprintf("Task logged! +%d points", s.rules.TaskPoints)},
	}
	return s.Snapshot(), effects, nil
}

// Certificate returns the export tuple for the certificate collaborator.
// Only a completed run earns a certificate.
func (s *Session) Certificate() (domain.Certificate, error) {
	if s.screen != domain.ScreenCompleted {
		return domain.Certificate{}, domain.ErrNotCompleted
	}
	badges := make([]domain.BadgeID, len(s.badges))
	copy(badges, s.badges)
	return domain.Certificate{
		PlayerName: s.name,
		Difficulty: s.tier,
		Points:     s.points,
		Badges:     badges,
		Date:       s.now(),
	}, nil
}

// Snapshot returns a read-only view sufficient to render the current screen.
func (s *Session) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Screen:            s.screen,
		PlayerName:        s.name,
		Difficulty:        s.tier,
		Selected:          s.selected,
		Revealed:          s.revealed,
		SelectedCorrect:   s.selectedCorrect,
		Progress:          s.progress(),
		Points:            s.points,
		Badges:            append([]domain.BadgeID(nil), s.badges...),
		Level:             s.level(),
		StreakDays:        s.streak,
		FactsLearned:      s.facts,
		ChallengeStatus:   s.challengeStatus,
		CompletionMessage: s.completion,
	}
	if !s.hasTier {
		snap.Difficulty = ""
	}
	if s.screen == domain.ScreenInQuestion || s.screen == domain.ScreenAnswerConfirmed {
		q := s.order[s.index]
		view := &domain.QuestionView{
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
		}
		if s.revealed {
			view.Correct = q.Correct
			view.Explanation = q.Explanation
		}
		snap.Question = view
	}
	return snap
}

// checkDaily rolls the streak over on a calendar-date change and evaluates
// the daily challenge. Runs on session load and after every correct answer.
func (s *Session) checkDaily() {
	today := s.now().Format(dateLayout)
	if s.lastVisit != today {
		yesterday := s.now().AddDate(0, 0, -1).Format(dateLayout)
		if s.lastVisit == yesterday {
			s.streak++
		} else {
			s.streak = 1
		}
		s.answeredToday = 0
		s.lastVisit = today
	}

	if s.answeredToday >= s.rules.DailyGoal {
		s.challengeStatus = fmt.Sprintf("Daily Challenge Complete! +%d Bonus Points", s.rules.DailyBonusPoints)
		if !s.hasBadge(domain.BadgeDailyEcoStar) {
			s.badges = append(s.badges, domain.BadgeDailyEcoStar)
			s.points += s.rules.DailyBonusPoints
		}
	} else {
		s.challengeStatus = fmt.Sprintf("Answer %d more questions today!", s.rules.DailyGoal-s.answeredToday)
	}
}

// awardThresholdBadges is monotonic and order-independent; re-checking is a no-op.
func (s *Session) awardThresholdBadges() {
	if s.points >= s.rules.StarterThreshold && !s.hasBadge(domain.BadgeEcoStarter) {
		s.badges = append(s.badges, domain.BadgeEcoStarter)
	}
	if s.points >= s.rules.ChampionThreshold && !s.hasBadge(domain.BadgeGreenChampion) {
		s.badges = append(s.badges, domain.BadgeGreenChampion)
	}
}

func (s *Session) hasBadge(id domain.BadgeID) bool {
	for _, b := range s.badges {
		if b == id {
			return true
		}
	}
	return false
}

func (s *Session) level() string {
	switch {
	case s.points >= s.rules.ChampionThreshold:
		return "Green Champion"
	case s.points >= s.rules.StarterThreshold:
		return "Eco Warrior"
	default:
		return "Beginner"
	}
}

func (s *Session) progress() float64 {
	if len(s.order) == 0 {
		return 0
	}
	if s.index >= len(s.order) {
		return 1
	}
	return float64(s.index) / float64(len(s.order))
}

func (s *Session) completionMessage() string {
	badges := "None"
	if len(s.badges) > 0 {
		parts := make([]string, len(s.badges))
		for i, b := range s.badges {
			parts[i] = string(b)
		}
		badges = strings.Join(parts, ", ")
	}
	phrase := completionPhrases[s.rng.Intn(len(completionPhrases))]
	return fmt.Sprintf("Congrats %s, %s You earned %d points and these badges: %s.", s.name, phrase, s.points, badges)
}

// shuffled returns a uniform random permutation (Fisher-Yates) of the bank
// slice; the source bank is never mutated.
func (s *Session) shuffled(src []domain.Question) []domain.Question {
	out := append([]domain.Question(nil), src...)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// persistProgress writes through every scoring counter. Values that fail to
// parse on the way back in fall back to zero rather than erroring.
func (s *Session) persistProgress() {
	s.store.Set(keyPoints, strconv.Itoa(s.points))
	s.store.Set(keyBadges, s.encodeBadges())
	s.store.Set(keyStreak, strconv.Itoa(s.streak))
	s.store.Set(keyAnsweredToday, strconv.Itoa(s.answeredToday))
	s.store.Set(keyFactsLearned, strconv.Itoa(s.facts))
	if s.lastVisit != "" {
		s.store.Set(keyLastVisit, s.lastVisit)
	}
}

func (s *Session) getInt(key string) int {
	raw, ok := s.store.Get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *Session) getBadges() []domain.BadgeID {
	raw, ok := s.store.Get(keyBadges)
	if !ok || raw == "" {
		return nil
	}
	var badges []domain.BadgeID
	if err := json.Unmarshal([]byte(raw), &badges); err != nil {
		return nil
	}
	return badges
}

func (s *Session) encodeBadges() string {
	if len(s.badges) == 0 {
		return "[]"
	}
	data, err := json.Marshal(s.badges)
	if err != nil {
		return "[]"
	}
	return string(data)
}
