package domain

import "time"

// FocusMode represents the current interval type of the focus timer.
type FocusMode string

const (
	ModeWork       FocusMode = "work"
	ModeShortBreak FocusMode = "shortBreak"
	ModeLongBreak  FocusMode = "longBreak"
)

// SessionsBeforeLongBreak is how many work sessions a cycle holds before
// the long break.
const SessionsBeforeLongBreak = 4

// ModeLabel returns a human-readable label for a focus mode.
func ModeLabel(m FocusMode) string {
	switch m {
	case ModeWork:
		return "Work Session"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// PomodoroState is the focus timer state machine. TimeRemaining and
// TotalTime are whole seconds; IsPaused is meaningful only while
// IsRunning. SelectedTaskID references a Task, it does not own it.
type PomodoroState struct {
	IsRunning         bool
	IsPaused          bool
	Mode              FocusMode
	TimeRemaining     int
	TotalTime         int
	CurrentSession    int
	CompletedSessions int
	SelectedTaskID    *int64
}

// PomodoroSettings holds the configurable interval durations in minutes.
type PomodoroSettings struct {
	WorkDuration int  `json:"workDuration"`
	ShortBreak   int  `json:"shortBreak"`
	LongBreak    int  `json:"longBreak"`
	SoundEnabled bool `json:"soundEnabled"`
}

// DefaultPomodoroSettings returns the classic 25/5/15 configuration.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration: 25,
		ShortBreak:   5,
		LongBreak:    15,
		SoundEnabled: true,
	}
}

// DurationSeconds returns the configured length of a mode in seconds.
func (s PomodoroSettings) DurationSeconds(m FocusMode) int {
	switch m {
	case ModeShortBreak:
		return s.ShortBreak * 60
	case ModeLongBreak:
		return s.LongBreak * 60
	default:
		return s.WorkDuration * 60
	}
}

// SessionLogEntry records a single completed work session.
type SessionLogEntry struct {
	ID          string    `json:"id"`
	TaskID      *int64    `json:"taskId,omitempty"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completedAt"`
	GitBranch   string    `json:"gitBranch,omitempty"`
	GitCommit   string    `json:"gitCommit,omitempty"`
}

// PomodoroStats aggregates completed work sessions. TodayPomodoros resets
// when LastDate falls behind the current day.
type PomodoroStats struct {
	TodayPomodoros int               `json:"todayPomodoros"`
	TotalPomodoros int               `json:"totalPomodoros"`
	TotalMinutes   int               `json:"totalMinutes"`
	LastDate       string            `json:"lastDate,omitempty"` // DayFormat stamp
	Log            []SessionLogEntry `json:"log,omitempty"`
}
