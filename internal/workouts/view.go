package workouts

import (
	"github.com/2beens/grunga/internal/grunga"
)

type Row struct {
	WorkoutID int    `json:"workoutId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	// Points is exactly what the API returned.
	Points *int `json:"points,omitempty"`
}

type TypeOption struct {
	Type string `json:"type"`
	// Unit is "minutes" or "reps".
	Unit string `json:"unit"`
}

type View struct {
	Demo  bool         `json:"demo"`
	Types []TypeOption `json:"types"`
	Rows  []Row        `json:"rows"`
}

type Preview struct {
	Points   float64 `json:"points"`
	Text     string  `json:"text"`
	Estimate bool    `json:"estimate"`
}

func typeOptions() []TypeOption {
	options := make([]TypeOption, 0, len(DurationTypes)+len(RepsTypes))
	for _, t := range DurationTypes {
		options = append(options, TypeOption{Type: t, Unit: "minutes"})
	}
	for _, t := range RepsTypes {
		options = append(options, TypeOption{Type: t, Unit: "reps"})
	}
	return options
}

func BuildView(workouts []grunga.Workout) View {
	rows := make([]Row, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, Row{
			WorkoutID: w.WorkoutID,
			Type:      w.WorkoutType,
			Date:      w.WorkoutDate,
			Text:      RowText(w),
			Points:    w.Points,
		})
	}
	return View{
		Types: typeOptions(),
		Rows:  rows,
	}
}

func BuildPreview(workoutType string, minutes, reps int) Preview {
	points := EstimatePoints(workoutType, minutes, reps)
	return Preview{
		Points:   points,
		Text:     "≈ " + FormatPoints(points) + " pts (estimate)",
		Estimate: true,
	}
}
