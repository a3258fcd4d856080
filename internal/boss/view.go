package boss

import (
	"fmt"
	"math"

	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/pkg"
)

const (
	MsgDefeated  = "Boss defeated! 🎉 Great work this week!"
	MsgLoadError = "Could not load boss status. Try again."
)

type View struct {
	Demo    bool   `json:"demo"`
	Present bool   `json:"present"`
	Name    string `json:"name,omitempty"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	// HPPercent is the remaining HP, the bar value.
	HPPercent int `json:"hpPercent"`
	// DamagePercent is the share of HP already knocked off.
	DamagePercent int    `json:"damagePercent"`
	Defeated      bool   `json:"defeated"`
	Title         string `json:"title,omitempty"`
	Status        string `json:"status,omitempty"`
}

// HPPercent is clamp(round(hp/maxHp*100), 0, 100), 0 when maxHp <= 0.
func HPPercent(hp, maxHP int) int {
	if maxHP <= 0 {
		return 0
	}
	return pkg.ClampInt(int(math.Round(float64(hp)/float64(maxHP)*100)), 0, 100)
}

// DamagePercent is clamp(round((1 - hp/maxHp)*100), 0, 100), 0 when maxHp <= 0.
func DamagePercent(hp, maxHP int) int {
	if maxHP <= 0 {
		return 0
	}
	return pkg.ClampInt(int(math.Round((1-float64(hp)/float64(maxHP))*100)), 0, 100)
}

func BuildView(b *grunga.Boss) View {
	if b == nil {
		return View{}
	}

	defeated := b.HP <= 0
	status := fmt.Sprintf("Keep going! Boss HP: %d / %d", b.HP, b.MaxHP)
	if defeated {
		status = MsgDefeated
	}

	return View{
		Present:       true,
		Name:          b.Name,
		HP:            b.HP,
		MaxHP:         b.MaxHP,
		HPPercent:     HPPercent(b.HP, b.MaxHP),
		DamagePercent: DamagePercent(b.HP, b.MaxHP),
		Defeated:      defeated,
		Title:         fmt.Sprintf("Boss HP: %d / %d", b.HP, b.MaxHP),
		Status:        status,
	}
}
