package challenges

import (
	"fmt"

	"github.com/2beens/grunga/internal/grunga"
)

const (
	MsgNoIncoming  = "No incoming challenges right now."
	MsgNoActive    = "You have no active challenges."
	MsgNoCompleted = "No completed challenges yet."

	createdLayout = "2006-01-02 15:04"
)

var placeholders = map[grunga.ChallengeBox]string{
	grunga.BoxIncoming:  MsgNoIncoming,
	grunga.BoxActive:    MsgNoActive,
	grunga.BoxCompleted: MsgNoCompleted,
}

type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionComplete Action = "complete"
)

type Card struct {
	ChallengeID int                    `json:"challengeId"`
	Title       string                 `json:"title"`
	Meta        string                 `json:"meta"`
	Status      grunga.ChallengeStatus `json:"status"`
	Target      int                    `json:"target"`
	OtherUser   string                 `json:"otherUser"`
	Outgoing    bool                   `json:"outgoing"`
	Actions     []Action               `json:"actions"`
}

// Section is one challenge list. When there are no cards, Placeholder
// holds the single row to show instead.
type Section struct {
	Box         grunga.ChallengeBox `json:"box"`
	Cards       []Card              `json:"cards"`
	Placeholder string              `json:"placeholder,omitempty"`
}

type Recipient struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
}

type View struct {
	Demo       bool        `json:"demo"`
	Incoming   Section     `json:"incoming"`
	Active     Section     `json:"active"`
	Completed  Section     `json:"completed"`
	Recipients []Recipient `json:"recipients"`
}

// OtherUserName names the counterpart of me in ch: display name, else
// username, else "User #id".
func OtherUserName(ch grunga.Challenge, me grunga.User, usersByID map[int]grunga.User) string {
	otherID := ch.FromUserID
	if ch.FromUserID == me.UserID {
		otherID = ch.ToUserID
	}
	if other, ok := usersByID[otherID]; ok {
		if other.DisplayName != "" {
			return other.DisplayName
		}
		if other.Username != "" {
			return other.Username
		}
	}
	return fmt.Sprintf("User #%d", otherID)
}

func FormatCreated(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	t, err := grunga.ParseTime(createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format(createdLayout)
}

// AllowedActions: accept or decline an incoming pending challenge sent to
// me, complete an active one.
func AllowedActions(ch grunga.Challenge, box grunga.ChallengeBox, me grunga.User) []Action {
	switch {
	case box == grunga.BoxIncoming && ch.Status == grunga.ChallengePending && ch.ToUserID == me.UserID:
		return []Action{ActionAccept, ActionDecline}
	case box == grunga.BoxActive && ch.Status == grunga.ChallengeActive:
		return []Action{ActionComplete}
	default:
		return []Action{}
	}
}

func BuildCard(ch grunga.Challenge, box grunga.ChallengeBox, me grunga.User, usersByID map[int]grunga.User) Card {
	other := OtherUserName(ch, me, usersByID)
	outgoing := ch.FromUserID == me.UserID

	direction := other + " → You"
	if outgoing {
		direction = "You → " + other
	}

	return Card{
		ChallengeID: ch.ChallengeID,
		Title:       fmt.Sprintf("%s • %d pts", direction, ch.Target),
		Meta:        fmt.Sprintf("Status: %s • Created: %s", ch.Status, FormatCreated(ch.CreatedAt)),
		Status:      ch.Status,
		Target:      ch.Target,
		OtherUser:   other,
		Outgoing:    outgoing,
		Actions:     AllowedActions(ch, box, me),
	}
}

func BuildSection(box grunga.ChallengeBox, list []grunga.Challenge, me grunga.User, usersByID map[int]grunga.User) Section {
	section := Section{Box: box, Cards: make([]Card, 0, len(list))}
	for _, ch := range list {
		section.Cards = append(section.Cards, BuildCard(ch, box, me, usersByID))
	}
	if len(section.Cards) == 0 {
		section.Placeholder = placeholders[box]
	}
	return section
}

func BuildView(
	me grunga.User,
	lists map[grunga.ChallengeBox][]grunga.Challenge,
	usersByID map[int]grunga.User,
	recipients []grunga.User,
) View {
	view := View{
		Incoming:   BuildSection(grunga.BoxIncoming, lists[grunga.BoxIncoming], me, usersByID),
		Active:     BuildSection(grunga.BoxActive, lists[grunga.BoxActive], me, usersByID),
		Completed:  BuildSection(grunga.BoxCompleted, lists[grunga.BoxCompleted], me, usersByID),
		Recipients: make([]Recipient, 0, len(recipients)),
	}
	for _, r := range recipients {
		if r.UserID == me.UserID {
			continue
		}
		view.Recipients = append(view.Recipients, Recipient{UserID: r.UserID, Name: r.Name()})
	}
	return view
}
