// Package model defines the case records collected during an intake session.
package model

import (
	"fmt"
	"strconv"
)

// CaseType discriminates the kinds of client cases the intake session handles.
type CaseType string

// The supported case categories, processed in this order during intake.
const (
	CaseCriminal CaseType = "Criminal"
	CaseCivil    CaseType = "Civil"
	CaseFiling   CaseType = "Filing"
)

// CaseTypes lists every category in intake order.
func CaseTypes() []CaseType {
	return []CaseType{CaseCriminal, CaseCivil, CaseFiling}
}

// Field is a single key/value line of a client report.
type Field struct {
	Key   string
	Value string
}

// Record is a completed per-case record ready for report rendering. Records
// are built once per case and never mutated after the report prints.
type Record interface {
	Type() CaseType
	ReportFields() []Field
}

// DayCount is a number of days until a court date or filing deadline.
// Zero renders as the due-today sentinel.
type DayCount int

// DueTodaySentinel marks a court date or deadline that falls on the
// reference date itself.
const DueTodaySentinel = "TODAY!!!"

func (d DayCount) String() string {
	if d == 0 {
		return DueTodaySentinel
	}
	return strconv.Itoa(int(d))
}

// Money formats a dollar amount for the report.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
