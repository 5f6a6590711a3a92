package domain

import "time"

// Tier is one of the three difficulty levels partitioning the question bank.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierHard         Tier = "hard"
)

// ParseTier maps a raw string to a known tier. Unrecognized values fall back
// to basic rather than failing.
func ParseTier(raw string) Tier {
	switch Tier(raw) {
	case TierBasic, TierIntermediate, TierHard:
		return Tier(raw)
	default:
		return TierBasic
	}
}

// Question models an MCQ question with exactly one correct option.
// Correct must equal one of Options.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Bank is a question bank partitioned by difficulty tier.
type Bank struct {
	ID    string              `json:"id"`
	Tiers map[Tier][]Question `json:"tiers"`
}

// Questions returns the bank slice for a tier, falling back to basic for
// unknown tiers.
func (b Bank) Questions(tier Tier) []Question {
	if qs, ok := b.Tiers[tier]; ok {
		return qs
	}
	return b.Tiers[TierBasic]
}

// BadgeID is a one-time, non-revocable achievement flag.
type BadgeID string

const (
	BadgeEcoStarter    BadgeID = "Eco Starter"
	BadgeGreenChampion BadgeID = "Green Champion"
	BadgeDailyEcoStar  BadgeID = "Daily Eco Star"
	BadgeActionHero    BadgeID = "Action Hero"
)

// BadgeDescriptions backs the badge tooltip in clients.
var BadgeDescriptions = map[BadgeID]string{
	BadgeEcoStarter:    "Earned 50 points!",
	BadgeGreenChampion: "Earned 80 points!",
	BadgeDailyEcoStar:  "Completed a daily challenge!",
	BadgeActionHero:    "Logged a real-world eco-task!",
}

// Screen identifies which view a client should render.
type Screen string

const (
	ScreenNeedName        Screen = "need_name"
	ScreenNeedDifficulty  Screen = "need_difficulty"
	ScreenInQuestion      Screen = "in_question"
	ScreenAnswerConfirmed Screen = "answer_confirmed"
	ScreenCompleted       Screen = "completed"
)

// QuestionView is the render-ready form of the current question. Correct and
// Explanation are only populated once the answer has been confirmed.
type QuestionView struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Snapshot is a read-only view of the game state, sufficient for a
// presentation layer to render after every transition.
type Snapshot struct {
	Screen            Screen        `json:"screen"`
	PlayerName        string        `json:"playerName,omitempty"`
	Difficulty        Tier          `json:"difficulty,omitempty"`
	Question          *QuestionView `json:"question,omitempty"`
	Selected          string        `json:"selected,omitempty"`
	Revealed          bool          `json:"revealed"`
	SelectedCorrect   bool          `json:"selectedCorrect"`
	Progress          float64       `json:"progress"`
	Points            int           `json:"points"`
	Badges            []BadgeID     `json:"badges"`
	Level             string        `json:"level"`
	StreakDays        int           `json:"streakDays"`
	FactsLearned      int           `json:"factsLearned"`
	ChallengeStatus   string        `json:"challengeStatus,omitempty"`
	CompletionMessage string        `json:"completionMessage,omitempty"`
}

// EffectKind enumerates the fire-and-forget side effects an operation can
// request from the presentation layer.
type EffectKind string

const (
	EffectConfetti EffectKind = "confetti"
	EffectSound    EffectKind = "sound"
	EffectTip      EffectKind = "tip"
	EffectAlert    EffectKind = "alert"
)

// Effect is a presentation side effect returned alongside a snapshot. Effects
// never influence game state; clients may drop them.
type Effect struct {
	Kind           EffectKind `json:"kind"`
	Sound          string     `json:"sound,omitempty"`
	Text           string     `json:"text,omitempty"`
	DismissAfterMS int        `json:"dismissAfterMs,omitempty"`
}

// Certificate is the tuple handed to the certificate export collaborator.
type Certificate struct {
	PlayerName string    `json:"playerName"`
	Difficulty Tier      `json:"difficulty"`
	Points     int       `json:"points"`
	Badges     []BadgeID `json:"badges"`
	Date       time.Time `json:"date"`
}
