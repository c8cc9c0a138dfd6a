package utils

import "testing"

func TestDragTrackerDeltas(t *testing.T) {
	var d DragTracker

	if _, _, dragging := d.Update(PointerState{X: 10, Y: 10}); dragging {
		t.Fatal("released pointer should not drag")
	}

	// 按下的第一帧只记录起点
	dx, dy, dragging := d.Update(PointerState{X: 10, Y: 10, Pressed: true, JustPressed: true})
	if !dragging || dx != 0 || dy != 0 {
		t.Fatalf("first pressed frame = (%d, %d, %v)", dx, dy, dragging)
	}

	dx, dy, _ = d.Update(PointerState{X: 25, Y: 4, Pressed: true})
	if dx != 15 || dy != -6 {
		t.Errorf("delta = (%d, %d), want (15, -6)", dx, dy)
	}

	dx, dy, _ = d.Update(PointerState{X: 30, Y: 4, Pressed: true})
	if dx != 5 || dy != 0 {
		t.Errorf("delta = (%d, %d), want (5, 0)", dx, dy)
	}

	if _, _, dragging := d.Update(PointerState{X: 30, Y: 4, JustReleased: true}); dragging {
		t.Error("release should end the drag")
	}
	if d.IsDragging() {
		t.Error("IsDragging after release")
	}
}

func TestDragTrackerReset(t *testing.T) {
	var d DragTracker
	d.Update(PointerState{X: 0, Y: 0, Pressed: true})
	d.Reset()
	// Reset 后重新按下不应产生跳变
	dx, dy, _ := d.Update(PointerState{X: 100, Y: 100, Pressed: true})
	if dx != 0 || dy != 0 {
		t.Errorf("delta after reset = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"inside", 50, 30, true},
		{"top-left corner", 20, 20, true},
		{"bottom-right corner", 200, 60, true},
		{"left of rect", 19, 30, false},
		{"below rect", 50, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 20, 20, 180, 40); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
