package grunga

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type User struct {
	UserID      int    `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Name is the trimmed display name, else the username.
func (u User) Name() string {
	if dn := strings.TrimSpace(u.DisplayName); dn != "" {
		return dn
	}
	return u.Username
}

type Boss struct {
	BossID int    `json:"bossId,omitempty"`
	Name   string `json:"name,omitempty"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"maxHp"`
}

// HistogramDay is one bar of the weekly chart. Date is empty when the API
// sent a bare number, in which case position gives the weekday (Mon first).
type HistogramDay struct {
	Date   string `json:"date,omitempty"`
	Points int    `json:"points"`
}

type Histogram []HistogramDay

func (h *Histogram) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*h = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("histogram: %w", err)
	}

	days := make(Histogram, 0, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) > 0 && r[0] == '{' {
			var day HistogramDay
			if err := json.Unmarshal(r, &day); err != nil {
				return fmt.Errorf("histogram day %d: %w", i, err)
			}
			days = append(days, day)
			continue
		}
		var points float64
		if err := json.Unmarshal(r, &points); err != nil {
			return fmt.Errorf("histogram day %d: %w", i, err)
		}
		days = append(days, HistogramDay{Points: int(points)})
	}

	*h = days
	return nil
}

// Points is the summary behind the home, boss and profile pages.
type Points struct {
	Total  int       `json:"totalPoints"`
	Weekly int       `json:"weeklyPoints"`
	Daily  int       `json:"dailyPoints"`
	Streak int       `json:"streak"`
	Hist   Histogram `json:"hist"`
	Boss   *Boss     `json:"boss,omitempty"`
}

// UnmarshalJSON accepts both the totalPoints/weeklyPoints/dailyPoints and
// the total/weekly/daily namings, flat or nested under "points".
func (p *Points) UnmarshalJSON(data []byte) error {
	type counters struct {
		TotalPoints  *int `json:"totalPoints"`
		WeeklyPoints *int `json:"weeklyPoints"`
		DailyPoints  *int `json:"dailyPoints"`
		Total        *int `json:"total"`
		Weekly       *int `json:"weekly"`
		Daily        *int `json:"daily"`
		Streak       *int `json:"streak"`
	}
	var aux struct {
		counters
		Points          *counters `json:"points"`
		Hist            Histogram `json:"hist"`
		WeeklyHistogram Histogram `json:"weeklyHistogram"`
		Boss            *Boss     `json:"boss"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c := aux.counters
	if aux.Points != nil {
		c = *aux.Points
	}

	*p = Points{
		Total:  firstInt(c.TotalPoints, c.Total),
		Weekly: firstInt(c.WeeklyPoints, c.Weekly),
		Daily:  firstInt(c.DailyPoints, c.Daily),
		Streak: firstInt(c.Streak, aux.Streak),
		Hist:   aux.Hist,
		Boss:   aux.Boss,
	}
	if p.Hist == nil {
		p.Hist = aux.WeeklyHistogram
	}
	if p.Boss != nil && p.Boss.MaxHP == 0 && p.Boss.HP == 0 && p.Boss.Name == "" {
		p.Boss = nil
	}
	return nil
}

type Workout struct {
	WorkoutID       int    `json:"workoutId"`
	WorkoutType     string `json:"workoutType"`
	Sets            int    `json:"sets"`
	Reps            int    `json:"reps"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	WorkoutDate     string `json:"workoutDate"`
	// Points is whatever the API awarded, nil when it did not say.
	Points *int `json:"points,omitempty"`
}

type WorkoutList []Workout

// UnmarshalJSON accepts a bare array or an object wrapping it under
// "workouts".
func (l *WorkoutList) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*l = nil
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Workouts []Workout `json:"workouts"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return err
		}
		*l = wrapped.Workouts
		return nil
	}
	var list []Workout
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

type NewWorkout struct {
	WorkoutType     string `json:"workoutType"`
	Sets            int    `json:"sets"`
	Reps            int    `json:"reps"`
	WorkoutDate     string `json:"workoutDate"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// WorkoutUpdate only sends the fields that are set.
type WorkoutUpdate struct {
	WorkoutType *string `json:"workoutType,omitempty"`
	Sets        *int    `json:"sets,omitempty"`
	Reps        *int    `json:"reps,omitempty"`
	WorkoutDate *string `json:"workoutDate,omitempty"`
}

func (u WorkoutUpdate) Empty() bool {
	return u.WorkoutType == nil && u.Sets == nil && u.Reps == nil && u.WorkoutDate == nil
}

type Totals struct {
	Total  int `json:"total"`
	Weekly int `json:"weekly"`
	Daily  int `json:"daily"`
	Streak int `json:"streak"`
}

// MutationResult is the common answer of the write endpoints.
type MutationResult struct {
	OK        bool    `json:"ok"`
	Error     string  `json:"error,omitempty"`
	Message   string  `json:"message,omitempty"`
	WorkoutID int     `json:"workoutId,omitempty"`
	Totals    *Totals `json:"totals,omitempty"`
}

type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "PENDING"
	ChallengeActive    ChallengeStatus = "ACTIVE"
	ChallengeCompleted ChallengeStatus = "COMPLETED"
	ChallengeDeclined  ChallengeStatus = "DECLINED"
)

type ChallengeBox string

const (
	BoxIncoming  ChallengeBox = "incoming"
	BoxActive    ChallengeBox = "active"
	BoxCompleted ChallengeBox = "completed"
)

type Challenge struct {
	ChallengeID int             `json:"challengeId"`
	FromUserID  int             `json:"fromUserId"`
	ToUserID    int             `json:"toUserId"`
	Kind        string          `json:"kind,omitempty"`
	Target      int             `json:"target"`
	Status      ChallengeStatus `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	ExpiresAt   string          `json:"expiresAt,omitempty"`
}

// UnmarshalJSON accepts the sender/receiver namings and maps the DONE
// status to COMPLETED.
func (c *Challenge) UnmarshalJSON(data []byte) error {
	type plain Challenge
	var aux struct {
		plain
		SenderUserID   *int `json:"senderUserId"`
		ReceiverUserID *int `json:"receiverUserId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*c = Challenge(aux.plain)
	if c.FromUserID == 0 && aux.SenderUserID != nil {
		c.FromUserID = *aux.SenderUserID
	}
	if c.ToUserID == 0 && aux.ReceiverUserID != nil {
		c.ToUserID = *aux.ReceiverUserID
	}
	c.Status = NormalizeStatus(string(c.Status))
	return nil
}

func NormalizeStatus(status string) ChallengeStatus {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "DONE" {
		return ChallengeCompleted
	}
	return ChallengeStatus(s)
}

type NewChallenge struct {
	FromUserID int    `json:"fromUserId"`
	ToUserID   int    `json:"toUserId"`
	Kind       string `json:"kind"`
	Target     int    `json:"target"`
}

// FriendRequest is a pending relation; the "from" names are what older
// API versions sent for incoming requests.
type FriendRequest struct {
	ID              int    `json:"id,omitempty"`
	OtherUserID     int    `json:"otherUserId"`
	Username        string `json:"username"`
	DisplayName     string `json:"displayName"`
	FromUsername    string `json:"fromUsername,omitempty"`
	FromDisplayName string `json:"fromDisplayName,omitempty"`
}

func (r FriendRequest) User() User {
	return User{
		UserID:      r.OtherUserID,
		Username:    firstString(r.Username, r.FromUsername),
		DisplayName: firstString(r.DisplayName, r.FromDisplayName),
	}
}

type Friends struct {
	Friends  []User          `json:"friends"`
	Incoming []FriendRequest `json:"incoming"`
	Outgoing []FriendRequest `json:"outgoing"`
}

type FriendAction string

const (
	FriendAccept  FriendAction = "accept"
	FriendDecline FriendAction = "decline"
)

// ParseFriendAction accepts "deny" as an alias of decline.
func ParseFriendAction(s string) (FriendAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return FriendAccept, nil
	case "decline", "deny":
		return FriendDecline, nil
	default:
		return "", fmt.Errorf("invalid friend action: %q", s)
	}
}

type Badge struct {
	BadgeID     int    `json:"badgeId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
