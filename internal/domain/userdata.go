package domain

// UserData holds the gamification state: experience points, completion
// streak, and the daily completion counter. XP only ever grows; rewards
// already granted are never clawed back.
type UserData struct {
	XP             int    `json:"xp"`
	Streak         int    `json:"streak"`
	LastActive     string `json:"lastActive,omitempty"` // DayFormat stamp
	CompletedToday int    `json:"completedToday"`
}
