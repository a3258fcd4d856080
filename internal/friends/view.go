package friends

import (
	"github.com/2beens/grunga/internal/grunga"
)

const (
	MsgNothingHere = "Nothing here yet."
	MsgNoUsers     = "No users found."
	StatusPending  = "Pending"

	MinSearchLength = 2
)

type RowAction string

const (
	ActionAccept RowAction = "accept"
	ActionDeny   RowAction = "deny"
	ActionAdd    RowAction = "add"
)

type Row struct {
	UserID  int         `json:"userId"`
	Label   string      `json:"label"`
	Status  string      `json:"status,omitempty"`
	Actions []RowAction `json:"actions,omitempty"`
}

// List is one friends list; an empty one carries only the placeholder.
type List struct {
	Rows        []Row  `json:"rows"`
	Placeholder string `json:"placeholder,omitempty"`
}

type View struct {
	Demo     bool `json:"demo"`
	Incoming List `json:"incoming"`
	Outgoing List `json:"outgoing"`
	Friends  List `json:"friends"`
}

type SearchView struct {
	Query   string `json:"query"`
	Rows    []Row  `json:"rows"`
	Message string `json:"message,omitempty"`
}

// Label renders "Display (@user)" when there is a display name.
func Label(u grunga.User) string {
	if u.DisplayName != "" {
		return u.DisplayName + " (@" + u.Username + ")"
	}
	return u.Username
}

// IncomingLabel prefers the display name alone, like the request list did.
func IncomingLabel(r grunga.FriendRequest) string {
	u := r.User()
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

func newList(rows []Row) List {
	if len(rows) == 0 {
		return List{Rows: []Row{}, Placeholder: MsgNothingHere}
	}
	return List{Rows: rows}
}

func BuildView(f grunga.Friends) View {
	incoming := make([]Row, 0, len(f.Incoming))
	for _, req := range f.Incoming {
		incoming = append(incoming, Row{
			UserID:  req.User().UserID,
			Label:   IncomingLabel(req),
			Actions: []RowAction{ActionAccept, ActionDeny},
		})
	}

	outgoing := make([]Row, 0, len(f.Outgoing))
	for _, req := range f.Outgoing {
		outgoing = append(outgoing, Row{
			UserID: req.OtherUserID,
			Label:  Label(req.User()),
			Status: StatusPending,
		})
	}

	accepted := make([]Row, 0, len(f.Friends))
	for _, u := range f.Friends {
		accepted = append(accepted, Row{UserID: u.UserID, Label: Label(u)})
	}

	return View{
		Incoming: newList(incoming),
		Outgoing: newList(outgoing),
		Friends:  newList(accepted),
	}
}

func BuildSearchView(query string, users []grunga.User) SearchView {
	view := SearchView{Query: query, Rows: make([]Row, 0, len(users))}
	for _, u := range users {
		view.Rows = append(view.Rows, Row{UserID: u.UserID, Label: Label(u), Actions: []RowAction{ActionAdd}})
	}
	if len(view.Rows) == 0 {
		view.Message = MsgNoUsers
	}
	return view
}
