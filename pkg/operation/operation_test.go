package operation

import "testing"

func TestMarkup_Apply(t *testing.T) {
	op := Markup{Rate: DefaultCashRate}

	got := op.Apply(100)
	if got != 105.0 {
		t.Errorf("operation:operation_test - Markup(0.05).Apply(100) = %v, want 105", got)
	}

	if got := op.Apply(0); got != 0 {
		t.Errorf("operation:operation_test - Markup(0.05).Apply(0) = %v, want 0", got)
	}
}

func TestCut_Apply(t *testing.T) {
	op := Cut{Rate: DefaultDebitRate}

	got := op.Apply(100)
	if got != 98.0 {
		t.Errorf("operation:operation_test - Cut(0.02).Apply(100) = %v, want 98", got)
	}

	if got := op.Apply(0); got != 0 {
		t.Errorf("operation:operation_test - Cut(0.02).Apply(0) = %v, want 0", got)
	}
}

func TestApply_IsPure(t *testing.T) {
	ops := []Operation{
		Markup{Rate: DefaultCashRate},
		Cut{Rate: DefaultDebitRate},
	}
	for _, op := range ops {
		first := op.Apply(42.5)
		second := op.Apply(42.5)
		if first != second {
			t.Errorf("operation:operation_test - repeated Apply(42.5) differs: %v vs %v", first, second)
		}
	}
}

func TestDescriber_Capability(t *testing.T) {
	var op Operation = Markup{Rate: DefaultCashRate, Note: "cash handling charge"}

	d, ok := op.(Describer)
	if !ok {
		t.Fatal("operation:operation_test - Markup should implement Describer")
	}
	if d.Description() != "cash handling charge" {
		t.Errorf("operation:operation_test - Description() = %q", d.Description())
	}
}

func TestKeyCredit_SpellingPreserved(t *testing.T) {
	// The constant intentionally keeps the original "creidt" spelling.
	if KeyCredit != "creidt" {
		t.Errorf("operation:operation_test - KeyCredit = %q, want %q", KeyCredit, "creidt")
	}
}
