package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/heroes/domain/hero"
	"github.com/luca-patrignani/heroes/game"
)

// turn groups the narration lines belonging to one seat.
type turn struct {
	hero   string
	events []hero.Event
}

// splitTurns cuts the narration at every turn end. Events before a seat's
// turn start, such as its hazard, belong to that seat's section.
func splitTurns(events []hero.Event) []turn {
	var turns []turn
	var cur []hero.Event
	for _, e := range events {
		cur = append(cur, e)
		if e.Kind == hero.EventTurnEnd {
			turns = append(turns, turn{hero: e.Hero, events: cur})
			cur = nil
		}
	}
	if len(cur) > 0 {
		turns = append(turns, turn{hero: cur[0].Hero, events: cur})
	}
	return turns
}

func describe(e hero.Event) string {
	switch e.Kind {
	case hero.EventTurnStart:
		return pterm.Sprintf("It's %s's turn (%s, %d hp, %d cards)", pterm.LightCyan(e.Hero), e.Role, e.HP, e.Cards)
	case hero.EventCommandPlaced:
		return pterm.Sprintf("%s got a %s card", e.Hero, e.Text)
	case hero.EventAbandoned:
		return pterm.LightRed(e.Hero + " has to skip this turn")
	case hero.EventCommandSpent:
		return pterm.Sprintf("%s card had no effect on %s", e.Text, e.Hero)
	case hero.EventTurnSkipped:
		return pterm.Sprintf("%s skips drawing and playing", e.Hero)
	case hero.EventFlavor:
		return pterm.Sprintf("%s: %s", e.Hero, pterm.LightYellow(e.Text))
	case hero.EventDraw:
		return pterm.Sprintf("%s draws %d cards, now holds %d", e.Hero, e.Amount, e.Cards)
	case hero.EventNeighbours:
		return pterm.Sprintf("%s sits between %s and %s", e.Hero, e.Other, e.Right)
	case hero.EventAttack:
		if e.Other == "" {
			return pterm.Sprintf("%s looks for %s but finds nobody", e.Hero, e.Text)
		}
		return pterm.Sprintf("%s attacks %s", e.Hero, pterm.LightRed(e.Other))
	case hero.EventAttacked:
		if e.Hazard() {
			return pterm.Sprintf("%s is struck by fate", e.Hero)
		}
		return pterm.Sprintf("%s is attacked by %s", e.Hero, e.Other)
	case hero.EventDodged:
		return pterm.LightGreen(e.Hero + " dodges")
	case hero.EventHit:
		return pterm.Sprintf("%s is hit, %d hp left", e.Hero, e.HP)
	case hero.EventAssist:
		return pterm.LightGreen(e.Hero + " spends a card to shield the Monarch")
	case hero.EventAssistDeclined:
		return pterm.Sprintf("%s does not help", e.Hero)
	case hero.EventNoAssist:
		return pterm.Sprintf("Nobody helps %s", e.Hero)
	case hero.EventDiscard:
		return pterm.Sprintf("%s discards %d cards", e.Hero, e.Amount)
	case hero.EventDiscardSkipped:
		return pterm.Sprintf("%s keeps the whole hand", e.Hero)
	case hero.EventBonusCard:
		return pterm.Sprintf("%s draws %d more", e.Hero, e.Amount)
	case hero.EventTurnEnd:
		return pterm.Sprintf("%s ends the turn with %d hp and %d cards", e.Hero, e.HP, e.Cards)
	default:
		return string(e.Kind)
	}
}

func printTurn(t turn) {
	lines := make([]string, 0, len(t.events))
	for _, e := range t.events {
		lines = append(lines, describe(e))
	}
	pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).
		WithTitle(pterm.LightYellow("|" + strings.ToUpper(t.hero) + "|")).WithTitleTopCenter().
		Println(strings.Join(lines, "\n"))
}

func printHeroInfo(s game.Snapshot) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var status string
	switch {
	case s.HP <= 0:
		status = pterm.LightRed("Down")
	case s.Abandoned:
		status = pterm.LightYellow("Abandoned")
	default:
		status = pterm.LightGreen("Standing")
	}
	side := pterm.LightRed("Against the throne")
	if s.Loyal {
		side = pterm.LightBlue("Loyal")
	}
	return pbox.WithTitle(s.Name).WithTitleTopLeft().Sprintf("%s (%s)\n%s\nHP: %d/%d\nCards: %d\nSeat: %d", s.Role, side, status, s.HP, s.MaxHP, s.Cards, s.Seat)
}

// printTable renders the final state of the heroes, four per row.
func printTable(heroes []game.Snapshot) {
	var rows [][]pterm.Panel
	for i, s := range heroes {
		if i%4 == 0 {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], pterm.Panel{Data: printHeroInfo(s)})
	}
	pterm.DefaultPanel.WithPanels(rows).Render()
}
