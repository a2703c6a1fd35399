package views

import (
	"testing"

	"matchreview/internal/domain"
)

func TestCenterWindow(t *testing.T) {
	tests := []struct {
		name                  string
		total, focus, visible int
		want                  int
	}{
		{name: "fits", total: 3, focus: 2, visible: 5, want: 0},
		{name: "start", total: 10, focus: 0, visible: 3, want: 0},
		{name: "middle", total: 10, focus: 5, visible: 3, want: 4},
		{name: "end", total: 10, focus: 9, visible: 3, want: 7},
		{name: "even window", total: 10, focus: 5, visible: 4, want: 3},
		{name: "no room", total: 10, focus: 5, visible: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerWindow(tt.total, tt.focus, tt.visible); got != tt.want {
				t.Errorf("centerWindow(%d, %d, %d) = %d, want %d", tt.total, tt.focus, tt.visible, got, tt.want)
			}
		})
	}
}

func sampleVisible(items, matches int) visibleSet {
	s := visibleSet{}
	for i := 0; i < items; i++ {
		it := domain.Item{ObjectNumber: string(rune('A' + i))}
		for j := 0; j < matches; j++ {
			it.Matches = append(it.Matches, domain.Match{Filename: string(rune('a' + j))})
		}
		s.items = append(s.items, it)
		s.idx = append(s.idx, i)
	}
	return s
}

func TestComputeLayoutAndHitTest(t *testing.T) {
	// 100 columns fit 3 cards; 20 rows fit 2 item blocks
	src := sampleVisible(5, 6)
	l := computeLayout(src, 2, 5, 100, 20)

	if l.visibleCards != 3 {
		t.Fatalf("visibleCards = %d, want 3", l.visibleCards)
	}
	if len(l.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(l.rows))
	}
	if l.rows[0].item != 1 || l.rows[1].item != 2 {
		t.Fatalf("focused item not centered: rows %+v", l.rows)
	}
	focused := l.rows[1]
	if focused.matchStart != 3 || focused.matchEnd != 6 {
		t.Fatalf("focused match window = [%d,%d), want [3,6)", focused.matchStart, focused.matchEnd)
	}
	if l.rows[0].matchStart != 0 {
		t.Errorf("unfocused rows start at their first match, got %d", l.rows[0].matchStart)
	}

	rect, ok := l.cardPos(2, 4)
	if !ok {
		t.Fatal("card (2,4) should be on screen")
	}
	if h := l.hitTest(rect.X+1, rect.Y+1); h.kind != hitCard || h.item != 2 || h.match != 4 {
		t.Errorf("hit inside card = %+v", h)
	}
	if h := l.hitTest(rect.X+2, rect.Y+cardLinkRow); h.kind != hitLink || h.match != 4 {
		t.Errorf("hit on link line = %+v", h)
	}
	if h := l.hitTest(rect.X, rect.Y+cardLinkRow); h.kind != hitCard {
		t.Errorf("border cell on the link row is part of the card, got %+v", h)
	}
	if h := l.hitTest(1, focused.y+1); h.kind != hitSource || h.item != 2 {
		t.Errorf("hit on source = %+v", h)
	}
	if h := l.hitTest(1, 0); h.kind != hitNone {
		t.Errorf("header should not hit anything, got %+v", h)
	}
	if _, ok := l.cardPos(2, 0); ok {
		t.Error("card (2,0) is scrolled out of view")
	}
}

func TestVisibleSet(t *testing.T) {
	s := sampleVisible(2, 1)
	s.idx = []int{1}

	if s.VisibleItemCount() != 1 || s.MatchCount(0) != 1 || s.MatchCount(3) != 0 {
		t.Fatalf("unexpected counts")
	}
	it, ok := s.Item(0)
	if !ok || it.ObjectNumber != "B" {
		t.Errorf("Item(0) = %+v", it)
	}
	if _, _, ok := s.Match(0, 1); ok {
		t.Error("Match out of range should fail")
	}
}
