package types

// PlanStatus is the workflow state of an action plan. The column is free
// text in the schema; these are the conventional values.
type PlanStatus string

const (
	PlanStatusOpen       PlanStatus = "Open"
	PlanStatusInProgress PlanStatus = "In Progress"
	PlanStatusCompleted  PlanStatus = "Completed"
	PlanStatusCancelled  PlanStatus = "Cancelled"
)

func (x PlanStatus) String() string {
	return string(x)
}
