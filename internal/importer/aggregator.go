package importer

// Aggregator folds (row, outcome) pairs into per-restaurant results.
// Pure reduction, no I/O. Restaurants appear in the report in
// first-appearance order, keyed by the name as typed in the file.
type Aggregator struct {
	order  []string
	byName map[string]*RestaurantResult
	report Report
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		byName: make(map[string]*RestaurantResult),
	}
}

func (a *Aggregator) Record(row ImportRow, outcome RowOutcome) {
	result, ok := a.byName[row.RestaurantName]
	if !ok {
		result = &RestaurantResult{
			RestaurantName: row.RestaurantName,
			Status:         StatusFound,
		}
		a.byName[row.RestaurantName] = result
		a.order = append(a.order, row.RestaurantName)
	}

	a.report.TotalRows++

	switch outcome.Kind {
	case OutcomeAdded:
		result.Added++
		a.report.TotalAdded++

	case OutcomeSkipped:
		result.Skipped = append(result.Skipped, ItemIssue{
			ItemName: row.ItemName,
			Reason:   outcome.Reason,
		})
		a.report.TotalSkipped++

	case OutcomeFailed:
		if outcome.Reason == ReasonRestaurantNotFound {
			result.Status = StatusNotFound
		}
		result.Failed = append(result.Failed, ItemIssue{
			ItemName: row.ItemName,
			Reason:   outcome.Reason,
		})
		a.report.TotalFailed++
	}
}

func (a *Aggregator) Report() *Report {
	report := a.report

	report.Results = make([]RestaurantResult, 0, len(a.order))
	for _, name := range a.order {
		report.Results = append(report.Results, *a.byName[name])
	}

	return &report
}
