package services

import "medmatch/entity"

// Review statuses a hospital may set. "pending" is the initial state only.
func isReviewStatus(status string) bool {
	switch status {
	case entity.ApplicationReviewed, entity.ApplicationAccepted, entity.ApplicationRejected:
		return true
	}
	return false
}

func isTerminalStatus(status string) bool {
	return status == entity.ApplicationAccepted || status == entity.ApplicationRejected
}

// pending -> reviewed | accepted | rejected
// reviewed -> accepted | rejected
// accepted, rejected -> (terminal)
func isAllowedTransition(from, to string) bool {
	switch from {
	case entity.ApplicationPending:
		return isReviewStatus(to)
	case entity.ApplicationReviewed:
		return to == entity.ApplicationAccepted || to == entity.ApplicationRejected
	default:
		return false
	}
}
