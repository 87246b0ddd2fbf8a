package provider

import "testing"

func TestRoute_Empty(t *testing.T) {
	if !(Route{}).Empty() {
		t.Fatal("zero route is empty")
	}
	if (Route{Legs: []Leg{{}}}).Empty() {
		t.Fatal("leg route is not empty")
	}
	if (Route{Steps: []Step{{Instruction: "turn left"}}}).Empty() {
		t.Fatal("step route is not empty")
	}
	if !(Route{DistanceMeters: 1200}).Empty() {
		t.Fatal("a summary without steps carries nothing to read out")
	}
}
