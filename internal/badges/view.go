package badges

import (
	"github.com/2beens/grunga/internal/grunga"
)

type Item struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Image    string `json:"image"`
	Unlocked bool   `json:"unlocked"`
}

// Section groups the badges of one kind. Placeholder is set, with a
// locked image, only when no badge landed in it.
type Section struct {
	ID          SectionID `json:"id"`
	Items       []Item    `json:"items"`
	Placeholder *Item     `json:"placeholder,omitempty"`
}

type View struct {
	Demo     bool      `json:"demo"`
	Sections []Section `json:"sections"`
}

// BuildView sorts badges into the catalogue sections, keeping API order
// within a section. Codes missing from the catalogue are skipped.
func BuildView(list []grunga.Badge) View {
	items := make(map[SectionID][]Item, len(Sections))
	for _, b := range list {
		entry, ok := Lookup(b.Code)
		if !ok {
			continue
		}
		items[entry.Section] = append(items[entry.Section], Item{
			Code:     b.Code,
			Label:    entry.Label,
			Image:    entry.Image,
			Unlocked: b.Unlocked,
		})
	}

	view := View{Sections: make([]Section, 0, len(Sections))}
	for _, id := range Sections {
		section := Section{ID: id, Items: items[id]}
		if len(section.Items) == 0 {
			section.Items = []Item{}
			section.Placeholder = &Item{Label: Placeholder(id), Image: LockedImage}
		}
		view.Sections = append(view.Sections, section)
	}
	return view
}
