package lifecycle

import (
	"github.com/quickhirelabor/quickhire/internal/domain"
)

// guard decides whether the actor may take a specific edge on a job.
type guard func(job *domain.Job, actor domain.Actor) bool

func adminOnly(_ *domain.Job, actor domain.Actor) bool {
	return actor.Role == domain.RoleAdmin
}

// anyLaborer admits the accepting laborer on open jobs; the job has no
// assigned laborer yet at that point.
func anyLaborer(_ *domain.Job, actor domain.Actor) bool {
	return actor.Role == domain.RoleLaborer && actor.ID != ""
}

func assignedLaborer(job *domain.Job, actor domain.Actor) bool {
	return actor.Role == domain.RoleLaborer && job.IsAssignedLaborer(actor.ID)
}

func ownerOrAdmin(job *domain.Job, actor domain.Actor) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.Role == domain.RoleCustomer && job.IsOwner(actor.ID)
}

// transitions is the authoritative table of legal (from, to, actor)
// triples. Anything absent here is an invalid transition.
var transitions = map[domain.JobStatus]map[domain.JobStatus]guard{
	domain.StatusPendingApproval: {
		domain.StatusAdminApproval: adminOnly,
		domain.StatusOpen:          adminOnly,
		domain.StatusRejected:      adminOnly,
		domain.StatusCancelled:     ownerOrAdmin,
	},
	domain.StatusAdminApproval: {
		domain.StatusOpen:      adminOnly,
		domain.StatusRejected:  adminOnly,
		domain.StatusCancelled: ownerOrAdmin,
	},
	domain.StatusOpen: {
		domain.StatusAssigned:  anyLaborer,
		domain.StatusRejected:  adminOnly,
		domain.StatusCancelled: ownerOrAdmin,
	},
	domain.StatusAssigned: {
		domain.StatusInProgress: assignedLaborer,
		domain.StatusRejected:   adminOnly,
		domain.StatusCancelled:  ownerOrAdmin,
	},
	domain.StatusInProgress: {
		domain.StatusCompleted: assignedLaborer,
		domain.StatusCancelled: ownerOrAdmin,
	},
}
