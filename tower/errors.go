package tower

import "errors"

var (
	// ErrNoBlockInProgress is returned when a placement is finalized with no block growing
	ErrNoBlockInProgress = errors.New("no block in progress")

	// ErrMissingCollaborator is returned by NewEngine when a required dependency is nil
	ErrMissingCollaborator = errors.New("missing collaborator")
)
