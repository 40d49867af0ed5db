package lifecycle

import (
	"fmt"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

const categoryJob = "job"

// buildIntents describes who to notify about an applied transition. The
// actor is never notified about their own action.
func buildIntents(job *domain.Job, actor domain.Actor, target domain.JobStatus) []Intent {
	var intents []Intent

	add := func(userID, title, message string) {
		if userID == "" || userID == actor.ID {
			return
		}
		intents = append(intents, Intent{
			UserID:   userID,
			Title:    title,
			Message:  message,
			Category: categoryJob,
		})
	}

	laborer := ""
	if job.LaborerID != nil {
		laborer = *job.LaborerID
	}

	switch target {
	case domain.StatusAdminApproval:
		add(job.CustomerID, "Job under review",
			fmt.Sprintf("Your job %q is being reviewed by an administrator.", job.Title))
	case domain.StatusOpen:
		add(job.CustomerID, "Job approved",
			fmt.Sprintf("Your job %q was approved and is now open for laborers.", job.Title))
	case domain.StatusRejected:
		add(job.CustomerID, "Job rejected",
			fmt.Sprintf("Your job %q was rejected by an administrator.", job.Title))
	case domain.StatusAssigned:
		add(job.CustomerID, "Laborer assigned",
			fmt.Sprintf("A laborer accepted your job %q.", job.Title))
	case domain.StatusInProgress:
		add(job.CustomerID, "Work started",
			fmt.Sprintf("Work on your job %q has started.", job.Title))
	case domain.StatusCompleted:
		add(job.CustomerID, "Job completed",
			fmt.Sprintf("Your job %q was marked completed. You can now record the payment and rate the laborer.", job.Title))
	case domain.StatusCancelled:
		add(job.CustomerID, "Job cancelled",
			fmt.Sprintf("Job %q was cancelled.", job.Title))
		add(laborer, "Job cancelled",
			fmt.Sprintf("Job %q you were working on was cancelled.", job.Title))
	}

	return intents
}
