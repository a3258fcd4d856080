package workouts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/2beens/grunga/internal/grunga"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindDuration workouts are measured in minutes.
	KindDuration
	// KindReps workouts are measured in repetitions.
	KindReps
)

const (
	MsgEnterDuration = "Enter workout duration!"
	MsgEnterReps     = "Enter number of reps!"
	MsgPickType      = "Choose a workout type!"
)

var (
	DurationTypes = []string{"run", "bike", "walk", "swim"}
	RepsTypes     = []string{"pushups", "squats", "lunges", "crunches"}

	multipliers = map[string]float64{
		"run":  2,
		"swim": 2,
		"bike": 1.5,
		"walk": 1.5,
	}
)

func KindOf(workoutType string) Kind {
	t := strings.ToLower(strings.TrimSpace(workoutType))
	for _, d := range DurationTypes {
		if d == t {
			return KindDuration
		}
	}
	for _, r := range RepsTypes {
		if r == t {
			return KindReps
		}
	}
	return KindUnknown
}

// ValidationError carries the message shown to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the amount that matters for the workout type:
// minutes for duration workouts, reps for bodyweight ones.
func Validate(workoutType string, minutes, reps int) error {
	switch KindOf(workoutType) {
	case KindDuration:
		if minutes <= 0 {
			return &ValidationError{Message: MsgEnterDuration}
		}
	case KindReps:
		if reps <= 0 {
			return &ValidationError{Message: MsgEnterReps}
		}
	default:
		return &ValidationError{Message: MsgPickType}
	}
	return nil
}

// EstimatePoints is the client side preview: minutes times 2 for run and
// swim, 1.5 for bike and walk, reps times 1. It is only an estimate, the
// API decides the points.
func EstimatePoints(workoutType string, minutes, reps int) float64 {
	t := strings.ToLower(strings.TrimSpace(workoutType))
	switch KindOf(t) {
	case KindDuration:
		return float64(minutes) * multipliers[t]
	case KindReps:
		return float64(reps)
	default:
		return 0
	}
}

func FormatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

func Title(workoutType string) string {
	t := strings.TrimSpace(workoutType)
	if t == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(t)
	return string(unicode.ToUpper(r)) + t[size:]
}

// Details is the amount part of a row: "30 mins" or "3 × 20 reps".
func Details(w grunga.Workout) string {
	if KindOf(w.WorkoutType) == KindDuration {
		minutes := w.DurationMinutes
		if minutes == 0 {
			// duration workouts are stored with the minutes in reps
			minutes = w.Reps
		}
		return fmt.Sprintf("%d mins", minutes)
	}
	if w.Sets > 1 {
		return fmt.Sprintf("%d × %d reps", w.Sets, w.Reps)
	}
	return fmt.Sprintf("%d reps", w.Reps)
}

// RowText renders "Run — 30 mins → 60 pts" using the points the API
// returned. Without them the points part is left out.
func RowText(w grunga.Workout) string {
	text := fmt.Sprintf("%s — %s", Title(w.WorkoutType), Details(w))
	if w.Points != nil {
		text += fmt.Sprintf(" → %d pts", *w.Points)
	}
	return text
}
