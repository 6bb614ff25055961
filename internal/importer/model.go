package importer

// ImportRow is one record of the uploaded CSV, fields kept as the
// operator typed them. Normalization happens at commit time.
type ImportRow struct {
	RestaurantName string
	ItemName       string
	Price          string
	CategoryName   string
	Description    string
	IsVeg          string
	IsVegan        string
	IsAvailable    string
	PrepTime       string
	ImageURL       string
}

type OutcomeKind int

const (
	OutcomeAdded OutcomeKind = iota
	OutcomeSkipped
	OutcomeFailed
)

// RowOutcome classifies exactly one input row.
type RowOutcome struct {
	Kind   OutcomeKind
	Reason string
}

const (
	ReasonRestaurantNotFound = "Restaurant not found"
	ReasonDuplicateItem      = "Duplicate item"
)

const (
	StatusFound    = "Found"
	StatusNotFound = "Not Found"
)

type ItemIssue struct {
	ItemName string `json:"item_name"`
	Reason   string `json:"reason"`
}

// RestaurantResult aggregates outcomes per restaurant, keyed by the
// name exactly as it appeared in the file.
type RestaurantResult struct {
	RestaurantName string      `json:"restaurant_name"`
	Status         string      `json:"status"`
	Added          int         `json:"added"`
	Skipped        []ItemIssue `json:"skipped"`
	Failed         []ItemIssue `json:"failed"`
}

// Report is the batch's externally visible result.
type Report struct {
	Results      []RestaurantResult `json:"results"`
	TotalRows    int                `json:"total_rows"`
	TotalAdded   int                `json:"total_added"`
	TotalSkipped int                `json:"total_skipped"`
	TotalFailed  int                `json:"total_failed"`
}
