package profile

import (
	"github.com/2beens/grunga/internal/badges"
	"github.com/2beens/grunga/internal/grunga"
)

const (
	MsgInvalidFriend = "Invalid Friend"
	MsgNoBadges      = "No badges yet."
)

type Badge struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Unlocked bool   `json:"unlocked"`
}

type View struct {
	Demo         bool    `json:"demo"`
	UserID       int     `json:"userId"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Streak       int     `json:"streak"`
	Total        int     `json:"total"`
	Weekly       int     `json:"weekly"`
	Daily        int     `json:"daily"`
	WorkoutCount int     `json:"workoutCount"`
	Badges       []Badge `json:"badges"`
	BadgesEmpty  string  `json:"badgesEmpty,omitempty"`
}

// BuildView renders a friend profile. Missing points count as zero.
func BuildView(user grunga.User, points *grunga.Points, workouts []grunga.Workout, list []grunga.Badge) View {
	view := View{
		UserID:       user.UserID,
		Username:     user.Username,
		Name:         user.Name(),
		WorkoutCount: len(workouts),
		Badges:       make([]Badge, 0, len(list)),
	}
	if points != nil {
		view.Streak = points.Streak
		view.Total = points.Total
		view.Weekly = points.Weekly
		view.Daily = points.Daily
	}

	for _, b := range list {
		name := b.Name
		if name == "" {
			if entry, ok := badges.Lookup(b.Code); ok {
				name = entry.Label
			}
		}
		view.Badges = append(view.Badges, Badge{
			Code:     b.Code,
			Name:     name,
			Image:    badges.ImageFor(b.Code),
			Unlocked: b.Unlocked,
		})
	}
	if len(view.Badges) == 0 {
		view.BadgesEmpty = MsgNoBadges
	}
	return view
}
