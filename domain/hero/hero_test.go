package hero

import (
	"testing"

	"github.com/luca-patrignani/heroes/domain/role"
)

func TestNewHeroDefaults(t *testing.T) {
	h := New(CaoCao, role.Monarch)
	if h.HP() != 5 || h.MaxHP() != 5 {
		t.Errorf("expected 5/5 hp, got %d/%d", h.HP(), h.MaxHP())
	}
	if h.Cards() != 4 {
		t.Errorf("expected 4 cards, got %d", h.Cards())
	}
	if h.State() != StatePendingCommands {
		t.Errorf("expected state %s, got %s", StatePendingCommands, h.State())
	}
	if h.Title() != "Monarch" || h.Enemy() != "Rebel, then Traitors" {
		t.Errorf("unexpected role forwarding: %s / %s", h.Title(), h.Enemy())
	}
	if h.Abandoned() {
		t.Error("abandon flag should start false")
	}
}

func TestMonarchsOutlastPool(t *testing.T) {
	best := 0
	for _, c := range Pool() {
		if c.MaxHP > best {
			best = c.MaxHP
		}
	}
	for _, m := range Monarchs() {
		if m.MaxHP != best+monarchBonusHP {
			t.Errorf("%s: expected max hp %d, got %d", m.Name, best+monarchBonusHP, m.MaxHP)
		}
	}
}

func TestDrawDefault(t *testing.T) {
	rec := &recorder{}
	h := New(LiuBei, role.Monarch, WithRecorder(rec))
	h.DrawCards()
	if h.Cards() != 6 {
		t.Fatalf("expected 6 cards, got %d", h.Cards())
	}
	if rec.events[0].Kind != EventDraw || rec.events[0].Amount != 2 {
		t.Fatalf("unexpected event %+v", rec.events[0])
	}
}

func TestZhouYuDrawsThree(t *testing.T) {
	rec := &recorder{}
	h := New(ZhouYu, role.Traitor, WithRecorder(rec))
	h.DrawCards()
	if h.Cards() != 7 {
		t.Fatalf("expected 7 cards, got %d", h.Cards())
	}
	if rec.count(EventFlavor) != 1 {
		t.Errorf("expected a flavor line, got %v", rec.kinds())
	}
}

func TestDiscardCapsAtHP(t *testing.T) {
	rec := &recorder{}
	h := New(LiuBei, role.Monarch, WithRecorder(rec), WithCards(9))
	h.DiscardCards()
	if h.Cards() != h.HP() {
		t.Fatalf("expected cards == hp (%d), got %d", h.HP(), h.Cards())
	}
	if rec.events[0].Kind != EventDiscard || rec.events[0].Amount != 4 {
		t.Fatalf("expected discard of 4, got %+v", rec.events[0])
	}
	h.DiscardCards()
	if h.Cards() != 5 {
		t.Fatalf("second discard changed the hand: %d", h.Cards())
	}
	if rec.events[1].Kind != EventDiscardSkipped {
		t.Fatalf("expected skipped discard, got %s", rec.events[1].Kind)
	}
}

func TestDiaoChanDrawsAfterDiscard(t *testing.T) {
	rec := &recorder{}
	h := New(DiaoChan, role.Rebel, WithRecorder(rec), WithCards(6))
	h.DiscardCards()
	if h.Cards() != 4 {
		t.Fatalf("expected 3 + 1 cards, got %d", h.Cards())
	}
	if rec.count(EventBonusCard) != 1 {
		t.Errorf("expected bonus card event, got %v", rec.kinds())
	}
}

func TestDefaultPlayAttacksOnce(t *testing.T) {
	rec := &recorder{}
	monarch := New(LiuBei, role.Monarch, WithRecorder(rec))
	rebel := New(XuChu, role.Rebel, WithRecorder(rec))
	s := seat(monarch, rebel)

	rebel.PlayCards(s)

	if rec.count(EventAttack) != 1 {
		t.Fatalf("expected exactly one attack, got %v", rec.kinds())
	}
	if rebel.Cards() != 3 {
		t.Errorf("expected 3 cards, got %d", rebel.Cards())
	}
	if monarch.HP() != 4 {
		t.Errorf("expected monarch at 4 hp, got %d", monarch.HP())
	}
	n := rec.events[0]
	if n.Kind != EventNeighbours || n.Other != "Liu Bei" || n.Right != "Liu Bei" {
		t.Errorf("unexpected neighbours event %+v", n)
	}
}

func TestZhangFeiAttacksUntilEmpty(t *testing.T) {
	rec := &recorder{}
	monarch := New(LiuBei, role.Monarch)
	zhang := New(ZhangFei, role.Rebel, WithRecorder(rec), WithCards(5))
	s := seat(monarch, zhang)

	zhang.PlayCards(s)

	if rec.count(EventAttack) != 5 {
		t.Fatalf("expected 5 attacks, got %d", rec.count(EventAttack))
	}
	if zhang.Cards() != 0 {
		t.Fatalf("expected empty hand, got %d", zhang.Cards())
	}
	if monarch.HP() != 0 {
		t.Errorf("expected monarch at 0 hp, got %d", monarch.HP())
	}
}

func TestGuanYuWarCryBeforeAttack(t *testing.T) {
	rec := &recorder{}
	monarch := New(SunQuan, role.Monarch)
	guan := New(GuanYu, role.Rebel, WithRecorder(rec))
	s := seat(monarch, guan)

	guan.Attack(s)

	kinds := rec.kinds()
	if len(kinds) != 2 || kinds[0] != EventFlavor || kinds[1] != EventAttack {
		t.Fatalf("expected flavor then attack, got %v", kinds)
	}
	if guan.Cards() != 3 {
		t.Errorf("expected 3 cards, got %d", guan.Cards())
	}
}

func TestAttackWithoutTargetStillSpendsCard(t *testing.T) {
	rec := &recorder{}
	monarch := New(LiuBei, role.Monarch, WithRecorder(rec))
	minister := New(SimaYi, role.Minister, WithRecorder(rec))
	s := seat(monarch, minister)

	minister.Attack(s)

	if minister.Cards() != 3 {
		t.Fatalf("expected 3 cards, got %d", minister.Cards())
	}
	if rec.count(EventAttacked) != 0 {
		t.Fatalf("nobody should be attacked, got %v", rec.kinds())
	}
	if rec.events[0].Other != "" {
		t.Errorf("expected no target, got %q", rec.events[0].Other)
	}
}

func TestAttackWithEmptyHandGoesNegative(t *testing.T) {
	monarch := New(LiuBei, role.Monarch)
	rebel := New(XuChu, role.Rebel, WithCards(0))
	s := seat(monarch, rebel)

	rebel.Attack(s)

	if rebel.Cards() != -1 {
		t.Fatalf("expected -1 cards, got %d", rebel.Cards())
	}
}

func TestBeingAttackedWithoutDodge(t *testing.T) {
	rec := &recorder{}
	h := New(ZhouYu, role.Rebel, WithRecorder(rec))
	h.BeingAttacked(nil)
	if h.HP() != 2 {
		t.Fatalf("expected 2 hp, got %d", h.HP())
	}
	if !rec.events[0].Hazard() {
		t.Errorf("expected a hazard event, got %+v", rec.events[0])
	}
	if rec.events[1].Kind != EventHit || rec.events[1].HP != 2 {
		t.Errorf("unexpected hit event %+v", rec.events[1])
	}
}

func TestHitPointsGoBelowZero(t *testing.T) {
	h := New(ZhouYu, role.Rebel, WithHP(0))
	h.BeingAttacked(nil)
	if h.HP() != -1 {
		t.Fatalf("expected -1 hp, got %d", h.HP())
	}
}

func TestRepeatedAttacksKeepCostingHitPoints(t *testing.T) {
	rec := &recorder{}
	monarch := New(SunQuan, role.Monarch, WithHP(1), WithRecorder(rec))
	zhang := New(ZhangFei, role.Rebel, WithCards(4), WithRecorder(rec))
	s := seat(monarch, zhang)

	zhang.PlayCards(s)
	if monarch.HP() != -3 {
		t.Fatalf("expected -3 hp after four hits from 1, got %d", monarch.HP())
	}
	if n := rec.count(EventHit); n != 4 {
		t.Fatalf("expected 4 hits, got %d", n)
	}
}
