package cube

import "testing"

func TestTransformationOrderIsFour(t *testing.T) {
	for _, axis := range []Axis{AxisUD, AxisFB, AxisLR} {
		c := NewSolved()
		for i := 0; i < 4; i++ {
			c = Transformation{Axis: axis, Turns: 1}.Apply(c)
		}
		if !c.IsSolved() {
			t.Errorf("axis %v: four quarter transforms did not restore solved state", axis)
		}
	}
}

func TestTransformationHalfIsTwoQuarters(t *testing.T) {
	for _, axis := range []Axis{AxisUD, AxisFB, AxisLR} {
		c := NewSolved()
		quarter := Transformation{Axis: axis, Turns: 1}.Apply(Transformation{Axis: axis, Turns: 1}.Apply(c))
		half := Transformation{Axis: axis, Turns: 2}.Apply(c)
		if quarter != half {
			t.Errorf("axis %v: two quarter transforms != one half transform", axis)
		}
	}
}

func TestTransformationPreservesSolved(t *testing.T) {
	for _, tr := range AllTransformations {
		c := tr.Apply(NewSolved())
		if !c.IsSolved() {
			t.Errorf("transform %v of a solved cube should remain solved", tr)
		}
	}
}
