package repository

import "testing"

func TestBuild_Conditions(t *testing.T) {
	q := Build(
		WithCondition("competitor_name", "Acme"),
		WithConditionIn("id", []int64{1, 2}),
		WithConditionNull("program_summary"),
	)

	conds := q.Conditions()
	if len(conds) != 3 {
		t.Fatalf("len(Conditions()) = %d, want 3", len(conds))
	}
	if conds[0].Kind() != KindEqual || conds[0].Field() != "competitor_name" {
		t.Errorf("conds[0] = %v, want competitor_name equality", conds[0])
	}
	if conds[1].Kind() != KindIn {
		t.Errorf("conds[1].Kind() = %v, want KindIn", conds[1].Kind())
	}
	if conds[2].Kind() != KindNull || conds[2].Value() != nil {
		t.Errorf("conds[2] = %v, want program_summary IS NULL with nil value", conds[2])
	}
}

func TestBuild_Pagination(t *testing.T) {
	q := Build(WithPagination(20, 40)...)
	if q.LimitValue() != 20 {
		t.Errorf("LimitValue() = %d, want 20", q.LimitValue())
	}
	if q.OffsetValue() != 40 {
		t.Errorf("OffsetValue() = %d, want 40", q.OffsetValue())
	}
}

func TestBuild_Ordering(t *testing.T) {
	q := Build(WithOrderAsc("id"), WithOrderDesc("competitor_name"))
	orders := q.Orders()
	if len(orders) != 2 {
		t.Fatalf("len(Orders()) = %d, want 2", len(orders))
	}
	if !orders[0].Ascending() || orders[0].Field() != "id" {
		t.Errorf("orders[0] = %v, want id ASC", orders[0])
	}
	if orders[1].Ascending() {
		t.Errorf("orders[1] should be descending")
	}
}

func TestCondition_String(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"equality", WithID(7), "id = 7"},
		{"in", WithIDIn([]int64{1, 2}), "id IN [1 2]"},
		{"null", WithConditionNull("program_summary"), "program_summary IS NULL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds := Build(tt.opt).Conditions()
			if got := conds[0].String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	q := Build()
	if len(q.Conditions()) != 0 || len(q.Orders()) != 0 {
		t.Error("empty build should have no conditions or orders")
	}
	if q.LimitValue() != 0 || q.OffsetValue() != 0 {
		t.Error("empty build should have zero limit and offset")
	}
}
