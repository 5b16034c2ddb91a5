package transfers

// PointsPerTransfer is the deduction for each transfer beyond the free
// allowance.
const PointsPerTransfer = 4

// CostContext carries the server-reported state that prices a diff.
type CostContext struct {
	FreeTransfers  int  `json:"freeTransfers"`
	WildcardActive bool `json:"wildcardActive"`
	FreeHitActive  bool `json:"freeHitActive"`
	FirstGameweek  bool `json:"firstGameweek"`
}

// Cost is the priced outcome of a diff.
type Cost struct {
	PaidTransfers int `json:"paidTransfers"`
	PointsCost    int `json:"pointsCost"`
}

// ComputeCost applies the free-transfer, chip, and first-gameweek-grace
// rules. A wildcard or free hit zeroes the cost outright; unused free
// transfers are a backend-tracked carry-over and are not recomputed here.
func ComputeCost(d Diff, ctx CostContext) Cost {
	numTransfers := d.Count()
	if numTransfers == 0 {
		return Cost{}
	}
	if ctx.WildcardActive || ctx.FreeHitActive || ctx.FirstGameweek {
		return Cost{}
	}
	paid := numTransfers - ctx.FreeTransfers
	if paid < 0 {
		paid = 0
	}
	return Cost{PaidTransfers: paid, PointsCost: paid * PointsPerTransfer}
}
