package milestone

// Totals summarizes the milestones of one project.
type Totals struct {
	Total     int
	Achieved  int
	Remaining int
}

// Summarize adds up planned and achieved percentages. Remaining never goes
// below zero.
func Summarize(ms []Milestone) Totals {
	var t Totals
	for i := range ms {
		t.Total += ms[i].Percentage
		if ms[i].Achieved() {
			t.Achieved += ms[i].Percentage
		}
	}
	t.Remaining = max(0, MaxTotalPercentage-t.Achieved)
	return t
}

// Progress is the achieved/remaining split of a single project.
type Progress struct {
	ProjectID   string
	ProjectName string
	Achieved    int
	Remaining   int
}
