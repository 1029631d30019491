package campaign

// Report aggregates the outcomes of one campaign.
// Sent+Failed always equals Total and Errors holds exactly the failed outcomes
// in dispatch order.
type Report struct {
	Errors []SendFailure `json:"errors,omitempty"`
	Total  int           `json:"total"`
	Sent   int           `json:"sent"`
	Failed int           `json:"failed"`
}

// SendFailure describes one address that could not be sent to.
type SendFailure struct {
	Address string `json:"email"`
	Reason  string `json:"error"`
}

// Summarize folds outcomes into a report. It is pure: the same outcomes always
// produce the same report.
func Summarize(outcomes []Outcome) Report {
	r := Report{
		Total:  len(outcomes),
		Errors: []SendFailure{},
	}
	for _, o := range outcomes {
		if o.Sent() {
			r.Sent++
			continue
		}
		r.Failed++
		r.Errors = append(r.Errors, SendFailure{Address: o.Address, Reason: o.Reason})
	}
	return r
}
