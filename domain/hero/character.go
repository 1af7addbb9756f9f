package hero

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCharacter is returned when a character name is not in the catalogue.
var ErrUnknownCharacter = errors.New("unknown character")

// Faction groups characters sharing a default hit point maximum.
type Faction string

const (
	FactionMonarch Faction = "monarch"
	FactionWei     Faction = "wei"
	FactionWarrior Faction = "warrior"
	FactionAdvisor Faction = "advisor"
)

const (
	defaultMaxHP = 4
	// monarchBonusHP is how much tougher a Monarch is than the sturdiest non-Monarch.
	monarchBonusHP = 1

	initialCards = 4
	defaultDraw  = 2
)

// traits holds the per-step overrides of a character. A nil entry means the
// default behaviour of Hero is used for that step.
type traits struct {
	draw    func(h *Hero)
	play    func(h *Hero, s Seating)
	attack  func(h *Hero, s Seating)
	discard func(h *Hero)
	dodge   func(h *Hero) bool
	// usesHelpers marks a Monarch that asks its assist chain to dodge.
	usesHelpers bool
}

// Character is one entry of the closed character catalogue.
type Character struct {
	Name    string
	Faction Faction
	MaxHP   int
	traits  traits
}

// CanAssist reports whether heroes of this character can join a Monarch's assist chain.
func (c Character) CanAssist() bool {
	return c.Faction == FactionWei
}

// UsesHelpers reports whether the character delegates its dodge to an assist chain.
func (c Character) UsesHelpers() bool {
	return c.traits.usesHelpers
}

func (c Character) String() string {
	return c.Name
}

var (
	LiuBei = Character{Name: "Liu Bei", Faction: FactionMonarch, MaxHP: defaultMaxHP + monarchBonusHP}
	CaoCao = Character{Name: "Cao Cao", Faction: FactionMonarch, MaxHP: defaultMaxHP + monarchBonusHP,
		traits: traits{dodge: dodgeWithHelpers, usesHelpers: true}}
	SunQuan = Character{Name: "Sun Quan", Faction: FactionMonarch, MaxHP: defaultMaxHP + monarchBonusHP}

	SimaYi     = Character{Name: "Sima Yi", Faction: FactionWei, MaxHP: 3}
	XuChu      = Character{Name: "Xu Chu", Faction: FactionWei, MaxHP: 4}
	XiahouYuan = Character{Name: "Xiahou Yuan", Faction: FactionWei, MaxHP: 4}

	ZhangFei = Character{Name: "Zhang Fei", Faction: FactionWarrior, MaxHP: 4,
		traits: traits{play: playUntilEmpty}}
	GuanYu = Character{Name: "Guan Yu", Faction: FactionWarrior, MaxHP: 4,
		traits: traits{attack: attackWithWarCry}}

	ZhouYu = Character{Name: "Zhou Yu", Faction: FactionAdvisor, MaxHP: 3,
		traits: traits{draw: drawThree}}
	DiaoChan = Character{Name: "Diao Chan", Faction: FactionAdvisor, MaxHP: 3,
		traits: traits{discard: discardThenDraw}}
)

// Monarchs returns the characters a Monarch is picked from, in pick order.
func Monarchs() []Character {
	return []Character{LiuBei, CaoCao, SunQuan}
}

// Pool returns the non-Monarch character pool, in draw order.
func Pool() []Character {
	return []Character{ZhangFei, ZhouYu, DiaoChan, GuanYu, SimaYi, XuChu, XiahouYuan}
}

// Lookup finds a character by name, ignoring case and spaces.
func Lookup(name string) (Character, error) {
	key := normalize(name)
	for _, c := range append(Monarchs(), Pool()...) {
		if normalize(c.Name) == key {
			return c, nil
		}
	}
	return Character{}, fmt.Errorf("%q: %w", name, ErrUnknownCharacter)
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

func dodgeWithHelpers(h *Hero) bool {
	helped := false
	if h.helpers != nil {
		helped = h.helpers.Handle()
	}
	if !helped {
		h.record(h.event(EventNoAssist))
	}
	return helped
}

// playUntilEmpty keeps attacking while there are cards in hand.
func playUntilEmpty(h *Hero, s Seating) {
	for h.cards > 0 {
		h.Attack(s)
	}
}

func attackWithWarCry(h *Hero, s Seating) {
	e := h.event(EventFlavor)
	e.Text = "Power 💪 !!"
	h.record(e)
	h.attack(s)
}

func drawThree(h *Hero) {
	e := h.event(EventFlavor)
	e.Text = "I'm handsome, so I can draw 3 cards."
	h.record(e)
	h.draw(3)
}

func discardThenDraw(h *Hero) {
	h.discard()
	h.cards++
	e := h.event(EventBonusCard)
	e.Amount = 1
	h.record(e)
}
