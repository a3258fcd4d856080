package home

import (
	"fmt"
	"time"

	"github.com/2beens/grunga/internal/boss"
	"github.com/2beens/grunga/internal/grunga"

	log "github.com/sirupsen/logrus"
)

var weekdayLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

type Bar struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
	// Height is the bar height relative to the chart scale, in [0, 1].
	Height float64 `json:"height"`
}

type Chart struct {
	Bars  []Bar   `json:"bars"`
	Scale float64 `json:"scale"`
}

type View struct {
	Demo         bool      `json:"demo"`
	Greeting     string    `json:"greeting"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	TotalPoints  int       `json:"totalPoints"`
	WeeklyPoints int       `json:"weeklyPoints"`
	DailyPoints  int       `json:"dailyPoints"`
	Streak       int       `json:"streak"`
	WeeklyChart  Chart     `json:"weeklyChart"`
	Boss         boss.View `json:"boss"`
}

func Salutation(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func Greeting(now time.Time, name string) string {
	return fmt.Sprintf("%s, %s!", Salutation(now.Hour()), name)
}

// WeeklyProgress turns the API histogram into Mon..Sun values.
// Undated entries are taken by position. Dated entries are bucketed by
// weekday when they fall in the ISO week of now, and dropped otherwise.
func WeeklyProgress(hist grunga.Histogram, now time.Time) [7]int {
	var week [7]int

	dated := false
	for _, day := range hist {
		if day.Date != "" {
			dated = true
			break
		}
	}

	if !dated {
		for i := 0; i < len(hist) && i < 7; i++ {
			week[i] = hist[i].Points
		}
		return week
	}

	nowYear, nowWeek := now.ISOWeek()
	for _, day := range hist {
		t, err := grunga.ParseTime(day.Date)
		if err != nil {
			log.Debugf("skipping histogram day: %s", err)
			continue
		}
		if y, w := t.ISOWeek(); y != nowYear || w != nowWeek {
			continue
		}
		week[mondayIndex(t.Weekday())] += day.Points
	}
	return week
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// BuildChart scales the bars to 1.2 times the best day.
func BuildChart(week [7]int) Chart {
	maxValue := 0
	for _, v := range week {
		maxValue = max(maxValue, v)
	}
	scale := float64(maxValue) * 1.2

	bars := make([]Bar, 7)
	for i, v := range week {
		bars[i] = Bar{Label: weekdayLabels[i], Points: v}
		if scale > 0 && v > 0 {
			bars[i].Height = float64(v) / scale
		}
	}

	return Chart{Bars: bars, Scale: scale}
}

func BuildView(user grunga.User, points grunga.Points, now time.Time) View {
	return View{
		Greeting:     Greeting(now, user.Name()),
		Username:     user.Username,
		DisplayName:  user.Name(),
		TotalPoints:  points.Total,
		WeeklyPoints: points.Weekly,
		DailyPoints:  points.Daily,
		Streak:       points.Streak,
		WeeklyChart:  BuildChart(WeeklyProgress(points.Hist, now)),
		Boss:         boss.BuildView(points.Boss),
	}
}
