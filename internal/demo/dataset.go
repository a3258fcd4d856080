// Package demo holds the hardcoded data the pages fall back to when the
// Grunga API is unreachable.
package demo

import (
	"github.com/2beens/grunga/internal/grunga"
)

type Dataset struct {
	User       grunga.User
	Others     []grunga.User
	Points     grunga.Points
	Workouts   []grunga.Workout
	Challenges map[grunga.ChallengeBox][]grunga.Challenge
	Friends    grunga.Friends
	Badges     []grunga.Badge
}

// UsersByID indexes the demo user and the others.
func (d Dataset) UsersByID() map[int]grunga.User {
	byID := make(map[int]grunga.User, len(d.Others)+1)
	byID[d.User.UserID] = d.User
	for _, u := range d.Others {
		byID[u.UserID] = u
	}
	return byID
}

// Default returns a fresh copy of the demo dataset.
func Default() Dataset {
	user := grunga.User{UserID: 1, Username: "demo", DisplayName: "Demo User"}
	grog := grunga.User{UserID: 2, Username: "grog", DisplayName: "Grog"}
	nova := grunga.User{UserID: 3, Username: "nova", DisplayName: "Nova"}

	return Dataset{
		User:   user,
		Others: []grunga.User{grog, nova},
		Points: grunga.Points{
			Total:  2640,
			Weekly: 740,
			Daily:  120,
			Streak: 8,
			Hist: grunga.Histogram{
				{Points: 80}, {Points: 100}, {Points: 60}, {Points: 70},
				{Points: 90}, {Points: 110}, {Points: 120},
			},
			Boss: &grunga.Boss{BossID: 1, Name: "Grog", HP: 260, MaxHP: 1000},
		},
		Workouts: []grunga.Workout{
			{WorkoutID: 3, WorkoutType: "run", Sets: 1, Reps: 30, DurationMinutes: 30, WorkoutDate: "2025-11-07", Points: intPtr(60)},
			{WorkoutID: 2, WorkoutType: "pushups", Sets: 3, Reps: 20, WorkoutDate: "2025-11-06", Points: intPtr(60)},
			{WorkoutID: 1, WorkoutType: "bike", Sets: 1, Reps: 40, DurationMinutes: 40, WorkoutDate: "2025-11-05", Points: intPtr(60)},
		},
		Challenges: map[grunga.ChallengeBox][]grunga.Challenge{
			grunga.BoxIncoming: {
				{ChallengeID: 12, FromUserID: grog.UserID, ToUserID: user.UserID, Kind: "WORKOUT", Target: 100, Status: grunga.ChallengePending, CreatedAt: "2025-11-07T09:30:00"},
			},
			grunga.BoxActive: {
				{ChallengeID: 11, FromUserID: user.UserID, ToUserID: nova.UserID, Kind: "WORKOUT", Target: 150, Status: grunga.ChallengeActive, CreatedAt: "2025-11-06T18:00:00"},
			},
			grunga.BoxCompleted: {
				{ChallengeID: 10, FromUserID: nova.UserID, ToUserID: user.UserID, Kind: "WORKOUT", Target: 80, Status: grunga.ChallengeCompleted, CreatedAt: "2025-11-03T07:15:00"},
			},
		},
		Friends: grunga.Friends{
			Friends: []grunga.User{grog},
			Incoming: []grunga.FriendRequest{
				{OtherUserID: nova.UserID, Username: nova.Username, DisplayName: nova.DisplayName},
			},
			Outgoing: []grunga.FriendRequest{},
		},
		Badges: []grunga.Badge{
			{BadgeID: 1, Code: "BOSS_SLAYER", Name: "Grog Slayer", Unlocked: true},
			{BadgeID: 5, Code: "STREAK_3", Name: "3-Week Crusher", Unlocked: true},
			{BadgeID: 6, Code: "STREAK_5", Name: "5-Week Sentinel", Unlocked: true},
			{BadgeID: 9, Code: "FIRST_WORKOUT", Name: "First Workout Logged", Unlocked: true},
			{BadgeID: 10, Code: "CHALLENGE_3", Name: "Challenge Contender"},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
