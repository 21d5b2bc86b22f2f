package clients

import "context"

// SeedDemo loads a small set of demonstration clients into a store, used by
// offline mode and fresh daemon databases.
func SeedDemo(ctx context.Context, store Store) error {
	demo := []Record{
		{
			Advisor: "R. Patel", Name: "Margaret Holloway", Date: "14 Aug 2026",
			CaseType: "Pension Transfer", PlanCount: 2, PlansComplete: 1,
			ChecklistDone: 4, ChecklistTotal: 6,
		},
		{
			Advisor: "R. Patel", Name: "Derek & Anne Whitfield", Date: "21 Aug 2026",
			CaseType: "Drawdown Review", PlanCount: 1, PlansComplete: 0,
			ChecklistDone: 2, ChecklistTotal: 6,
		},
		{
			Advisor: "S. Okafor", Name: "Tom Brierley", Date: "28 Aug 2026",
			CaseType: "Pension Transfer", PlanCount: 3, PlansComplete: 3,
			ChecklistDone: 6, ChecklistTotal: 6,
		},
	}
	for _, rec := range demo {
		if _, err := store.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
