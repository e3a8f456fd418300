package model

// CriminalCase is the intake record for a criminal defense client.
type CriminalCase struct {
	Name           string
	Charge         string
	Decision       string
	DaysUntilCourt DayCount
	CostDue        float64
}

// Type implements Record.
func (c CriminalCase) Type() CaseType { return CaseCriminal }

// ReportFields implements Record.
func (c CriminalCase) ReportFields() []Field {
	return []Field{
		{Key: "Type", Value: string(CaseCriminal)},
		{Key: "Name", Value: c.Name},
		{Key: "Criminal Charge", Value: c.Charge},
		{Key: "Suggested Decision", Value: c.Decision},
		{Key: "Days Until Court", Value: c.DaysUntilCourt.String()},
		{Key: "Legal Counsel Cost Due", Value: Money(c.CostDue)},
	}
}

// CivilCase is the intake record for a civil lawsuit client.
type CivilCase struct {
	Name           string
	Claim          string
	Decision       string
	DaysUntilCourt DayCount
	CostDue        float64
}

// Type implements Record.
func (c CivilCase) Type() CaseType { return CaseCivil }

// ReportFields implements Record.
func (c CivilCase) ReportFields() []Field {
	return []Field{
		{Key: "Type", Value: string(CaseCivil)},
		{Key: "Name", Value: c.Name},
		{Key: "Lawsuit Claim", Value: c.Claim},
		{Key: "Suggested Decision", Value: c.Decision},
		{Key: "Days Until Court", Value: c.DaysUntilCourt.String()},
		{Key: "Legal Counsel Cost Due", Value: Money(c.CostDue)},
	}
}

// FilingCase is the intake record for a paperwork filing. Filings carry no
// charge description and get no outcome suggestion.
type FilingCase struct {
	Name              string
	DaysUntilDeadline DayCount
	FilingFee         float64
}

// Type implements Record.
func (c FilingCase) Type() CaseType { return CaseFiling }

// ReportFields implements Record.
func (c FilingCase) ReportFields() []Field {
	return []Field{
		{Key: "Type", Value: string(CaseFiling)},
		{Key: "Name", Value: c.Name},
		{Key: "Days Until Deadline", Value: c.DaysUntilDeadline.String()},
		{Key: "Filing Fee", Value: Money(c.FilingFee)},
	}
}
