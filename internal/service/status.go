package service

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// TaskLabelMissing shown when nothing was handed in before the deadline
const TaskLabelMissing = "Missing"

// TaskLabel derives what an ambassador sees for a task from their submission (nil when none exists).
//
//	no submission, deadline passed   Missing
//	no submission, deadline ahead    Pending
//	pending                          Pending
//	submitted | approved | rejected  Submitted | Approved | Rejected
func TaskLabel(task *model.Task, sub *model.Submission, now time.Time) string {
	if sub == nil {
		if task.DeadlinePassed(now) {
			return TaskLabelMissing
		}
		return statusLabel(model.SubmissionStatusPending)
	}

	switch status := normalizeStatus(sub.Status); status {
	case model.SubmissionStatusSubmitted, model.SubmissionStatusApproved, model.SubmissionStatusRejected:
		return statusLabel(status)
	default:
		return statusLabel(model.SubmissionStatusPending)
	}
}

// IsCompleted submitted and approved submissions count towards progress
func IsCompleted(status string) bool {
	switch normalizeStatus(status) {
	case model.SubmissionStatusSubmitted, model.SubmissionStatusApproved:
		return true
	}
	return false
}

// feedRank orders the admin feed: work awaiting review first
func feedRank(status string) int {
	switch normalizeStatus(status) {
	case model.SubmissionStatusSubmitted:
		return 0
	case model.SubmissionStatusPending:
		return 1
	case model.SubmissionStatusApproved:
		return 2
	case model.SubmissionStatusRejected:
		return 3
	default:
		return 4
	}
}

// SortFeed orders by status precedence, newest first within a status
func SortFeed(entries []dto.FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := feedRank(entries[i].Status), feedRank(entries[j].Status)
		if ri != rj {
			return ri < rj
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// SortOverview orders ambassadors by completed task count, descending; ties keep their order
func SortOverview(entries []dto.OverviewEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompletedTasksCount > entries[j].CompletedTasksCount
	})
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// statusLabel "submitted" → "Submitted". Casers hold state, so one is built per call.
func statusLabel(status string) string {
	return cases.Title(language.English).String(status)
}
