package models

type ApplicationStatus string
type FollowUpStatus string

const (
	ApplicationStatusApplied       ApplicationStatus = "APPLIED"
	ApplicationStatusInterviewing  ApplicationStatus = "INTERVIEWING"
	ApplicationStatusTechnicalTest ApplicationStatus = "TECHNICAL_TEST"
	ApplicationStatusRejected      ApplicationStatus = "REJECTED"
	ApplicationStatusAccepted      ApplicationStatus = "ACCEPTED"

	FollowUpStatusToDo FollowUpStatus = "TO_DO"
	FollowUpStatusDone FollowUpStatus = "DONE"
)

// ApplicationStatuses lists every valid ApplicationStatus in declaration order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusInterviewing,
	ApplicationStatusTechnicalTest,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

// FollowUpStatuses lists every valid FollowUpStatus.
var FollowUpStatuses = []FollowUpStatus{
	FollowUpStatusToDo,
	FollowUpStatusDone,
}

func (s ApplicationStatus) IsValid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s FollowUpStatus) IsValid() bool {
	for _, v := range FollowUpStatuses {
		if s == v {
			return true
		}
	}
	return false
}
