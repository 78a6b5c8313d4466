package pricing

import (
	"strings"
	"testing"
)

func TestOrder_TotalPrice(t *testing.T) {
	o := NewOrder("pizza", 10)
	o.AddComponent(Component{Name: "cheese", UnitPrice: 3})
	o.AddComponent(Component{Name: "mushrooms", UnitPrice: 4})

	if got := o.TotalPrice(); got != 17.0 {
		t.Errorf("pricing:order_test - TotalPrice() = %v, want 17", got)
	}
}

func TestOrder_TotalPrice_OrderIndependent(t *testing.T) {
	a := NewOrder("pizza", 10)
	a.AddComponent(Component{Name: "cheese", UnitPrice: 3})
	a.AddComponent(Component{Name: "mushrooms", UnitPrice: 4})

	b := NewOrder("pizza", 10)
	b.AddComponent(Component{Name: "mushrooms", UnitPrice: 4})
	b.AddComponent(Component{Name: "cheese", UnitPrice: 3})

	if a.TotalPrice() != b.TotalPrice() {
		t.Errorf("pricing:order_test - totals differ by insertion order: %v vs %v", a.TotalPrice(), b.TotalPrice())
	}
	if a.Describe() == b.Describe() {
		t.Error("pricing:order_test - Describe() should reflect insertion order")
	}
}

func TestOrder_TotalPrice_Idempotent(t *testing.T) {
	o := NewOrder("base", 5)
	o.AddComponent(Component{Name: "extra", UnitPrice: 1.5})

	first := o.TotalPrice()
	second := o.TotalPrice()
	if first != second {
		t.Errorf("pricing:order_test - TotalPrice() not idempotent: %v vs %v", first, second)
	}
}

func TestOrder_TotalPrice_NoComponents(t *testing.T) {
	o := NewOrder("plain", 10)
	if got := o.TotalPrice(); got != 10.0 {
		t.Errorf("pricing:order_test - TotalPrice() = %v, want 10", got)
	}
}

func TestOrder_Describe_InsertionOrder(t *testing.T) {
	o := NewOrder("pizza", 10)
	o.AddComponent(Component{Name: "cheese", UnitPrice: 3})
	o.AddComponent(Component{Name: "mushrooms", UnitPrice: 4})

	desc := o.Describe()
	cheese := strings.Index(desc, "cheese")
	mushrooms := strings.Index(desc, "mushrooms")
	if cheese < 0 || mushrooms < 0 {
		t.Fatalf("pricing:order_test - Describe() missing components:\n%s", desc)
	}
	if cheese > mushrooms {
		t.Errorf("pricing:order_test - Describe() order wrong:\n%s", desc)
	}
	if !strings.Contains(desc, "Total: 17.00") {
		t.Errorf("pricing:order_test - Describe() missing total:\n%s", desc)
	}
	if !strings.HasPrefix(desc, "pizza: 10.00") {
		t.Errorf("pricing:order_test - Describe() should start with base item:\n%s", desc)
	}
}

func TestOrder_AddComponent_AllowsDuplicates(t *testing.T) {
	o := NewOrder("pizza", 10)
	o.AddComponent(Component{Name: "cheese", UnitPrice: 3})
	o.AddComponent(Component{Name: "cheese", UnitPrice: 3})

	if got := o.TotalPrice(); got != 16.0 {
		t.Errorf("pricing:order_test - TotalPrice() = %v, want 16", got)
	}
	if got := len(o.Components()); got != 2 {
		t.Errorf("pricing:order_test - Components() len = %d, want 2", got)
	}
}
