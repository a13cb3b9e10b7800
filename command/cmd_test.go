package command

import "testing"

func TestCmdNone(t *testing.T) {
	if !None().IsNone() {
		t.Fatal("None() should be none")
	}
	if Perform(func(Canceler) {}).IsNone() {
		t.Fatal("Perform should not be none")
	}
}

func TestBatchCollapsesEmpty(t *testing.T) {
	if !Batch().IsNone() {
		t.Fatal("empty Batch should collapse to None")
	}
	if !Batch(None(), None()).IsNone() {
		t.Fatal("all-None Batch should collapse to None")
	}
}

func TestBatchCollapsesSingleton(t *testing.T) {
	c := Batch(None(), Sleep(0, None()), None())
	if c.kind != KindSleep {
		t.Fatalf("single-element Batch should collapse to that element, got kind %d", c.kind)
	}
}

func TestBatchKeepsMultiple(t *testing.T) {
	c := Batch(Sleep(0, None()), Sleep(0, None()))
	if c.kind != KindBatch || len(c.children) != 2 {
		t.Fatalf("expected a 2-child Batch, got kind %d len %d", c.kind, len(c.children))
	}
}

func TestSequenceCollapsesSameAsBatch(t *testing.T) {
	if !Sequence().IsNone() {
		t.Fatal("empty Sequence should collapse to None")
	}
	c := Sequence(Sleep(0, None()))
	if c.kind != KindSleep {
		t.Fatalf("single-element Sequence should collapse, got kind %d", c.kind)
	}
}

func TestAndThenNone(t *testing.T) {
	c := None().AndThen(Sleep(0, None()))
	if c.kind != KindSleep {
		t.Fatalf("None.AndThen(next) should be next, got kind %d", c.kind)
	}
}

func TestAndThenSleepChains(t *testing.T) {
	c := Sleep(1, None()).AndThen(Sleep(2, None()))
	if c.kind != KindSleep {
		t.Fatalf("expected Sleep, got kind %d", c.kind)
	}
	if c.then.kind != KindSleep {
		t.Fatalf("expected chained Sleep inside then, got kind %d", c.then.kind)
	}
}

func TestAndThenOtherBatches(t *testing.T) {
	c := Perform(func(Canceler) {}).AndThen(Perform(func(Canceler) {}))
	if c.kind != KindBatch || len(c.children) != 2 {
		t.Fatalf("expected a 2-child Batch, got kind %d len %d", c.kind, len(c.children))
	}
}
