package transfers

import (
	"testing"

	"fantasy-squad-service/internal/domain"
)

func diffOfSize(n int) Diff {
	var d Diff
	for i := 0; i < n; i++ {
		d.Out = append(d.Out, domain.Player{ID: i + 1})
		d.In = append(d.In, domain.Player{ID: 100 + i})
	}
	return d
}

func TestComputeCost(t *testing.T) {
	cases := []struct {
		name      string
		transfers int
		ctx       CostContext
		wantPaid  int
		wantCost  int
	}{
		{"no transfers", 0, CostContext{FreeTransfers: 1}, 0, 0},
		{"within free allowance", 1, CostContext{FreeTransfers: 1}, 0, 0},
		{"one over allowance", 2, CostContext{FreeTransfers: 1}, 1, 4},
		{"three over allowance", 5, CostContext{FreeTransfers: 2}, 3, 12},
		{"no free transfers", 2, CostContext{}, 2, 8},
		{"wildcard zeroes cost", 6, CostContext{WildcardActive: true}, 0, 0},
		{"free hit zeroes cost", 6, CostContext{FreeHitActive: true}, 0, 0},
		{"first gameweek grace", 15, CostContext{FirstGameweek: true}, 0, 0},
		{"banked transfers cover all", 2, CostContext{FreeTransfers: 5}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCost(diffOfSize(tc.transfers), tc.ctx)
			if got.PaidTransfers != tc.wantPaid {
				t.Fatalf("paid: expected %d, got %d", tc.wantPaid, got.PaidTransfers)
			}
			if got.PointsCost != tc.wantCost {
				t.Fatalf("cost: expected %d, got %d", tc.wantCost, got.PointsCost)
			}
		})
	}
}

func TestComputeCostMonotonic(t *testing.T) {
	// Each extra transfer never lowers the cost, with or without a
	// free allowance.
	for _, free := range []int{0, 1, 2, 5} {
		prev := -1
		for n := 0; n <= 8; n++ {
			got := ComputeCost(diffOfSize(n), CostContext{FreeTransfers: free}).PointsCost
			if got < prev {
				t.Fatalf("cost dropped from %d to %d at n=%d free=%d", prev, got, n, free)
			}
			prev = got
		}
	}
}

func TestComputeCostZeroTransfersUnderChip(t *testing.T) {
	// A chip with nothing to transfer still costs nothing and reports
	// zero paid transfers.
	got := ComputeCost(Diff{}, CostContext{WildcardActive: true})
	if got != (Cost{}) {
		t.Fatalf("expected zero cost, got %+v", got)
	}
}
