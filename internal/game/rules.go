package game

// Rules carries the tunable scoring constants. Thresholds differ between
// deployments, so they are configuration rather than literals.
type Rules struct {
	PointsPerCorrect  int
	TaskPoints        int
	DailyGoal         int
	DailyBonusPoints  int
	StarterThreshold  int
	ChampionThreshold int
}

// DefaultRules returns the canonical GamEnv scoring: 10 points per correct
// answer, 20 per logged task, a 3-answer daily challenge worth 10 bonus
// points, and badge thresholds at 50 and 80.
func DefaultRules() Rules {
	return Rules{
		PointsPerCorrect:  10,
		TaskPoints:        20,
		DailyGoal:         3,
		DailyBonusPoints:  10,
		StarterThreshold:  50,
		ChampionThreshold: 80,
	}
}

// ecoTips rotate through the transient tip popup after each confirmation.
var ecoTips = []string{
	"Save water by fixing leaks!",
	"Use reusable bags to reduce plastic waste!",
	"Plant a tree to combat CO2 emissions!",
	"Turn off lights when not in use!",
	"Compost food waste for a healthier planet!",
}

// completionPhrases feed the congratulatory message on the final screen.
var completionPhrases = []string{
	"you nailed it!",
	"you rocked it!",
	"you're an eco-star!",
}
