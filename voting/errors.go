package voting

import (
	"errors"
	"fmt"

	"github.com/EltonDagodog/VoteRoyale/upstream"
)

var (
	// ErrAlreadyVoted rejects a new session for a (judge, category) pair
	// that already has submitted votes. Informational, not destructive.
	ErrAlreadyVoted = errors.New("scores were already submitted for this category")

	// ErrDeadlineExceeded rejects opening or submitting past the event date.
	ErrDeadlineExceeded = errors.New("the judging deadline for this event has passed")

	// ErrCategoryClosed rejects sessions for categories not open for judging.
	ErrCategoryClosed = errors.New("this award is not open for judging")

	// ErrInvalidCriteria rejects categories whose criteria percentages do
	// not sum to exactly 100.
	ErrInvalidCriteria = errors.New("category criteria percentages must sum to exactly 100")

	// ErrNotEligible is returned when a score targets a participant outside
	// the session's eligibility filter.
	ErrNotEligible = errors.New("participant is not eligible in this session")

	// ErrUnknownCriterion is returned when a score targets a criterion the
	// category does not define.
	ErrUnknownCriterion = errors.New("criterion does not belong to this category")

	// ErrSessionNotFound is returned by the registry for unknown or
	// discarded session ids.
	ErrSessionNotFound = errors.New("scoring session not found")
)

// ValidationError names the first participant/criterion pair missing a score
// at submission time. Submissions are all-or-nothing, so a single missing
// score aborts the whole batch.
type ValidationError struct {
	ParticipantID   upstream.ID
	ParticipantName string
	Criterion       string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please enter a score for %s for %s", e.Criterion, e.ParticipantName)
}
