// Package voting manages in-progress criterion scoring for one judge
// scoring one category, and builds validated submission batches.
package voting

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/EltonDagodog/VoteRoyale/upstream"
)

// Session holds the participant -> criterion -> score state for one judge
// and one category. Scores start at 0 (unset); submitted scores are always
// within [1,10].
type Session struct {
	ID           string
	Judge        upstream.Judge
	Event        upstream.Event
	Category     upstream.Category
	Participants []upstream.Participant
	OpenedAt     time.Time

	mu     sync.Mutex
	scores map[upstream.ID]map[int]int
}

// Open starts a scoring session, applying the guards in the order the judge
// portal does: category open, valid criteria, event deadline, not already
// voted. Participants are filtered to the category's gender eligibility;
// the compare is case-insensitive because the data sources disagree on
// casing.
func Open(judge upstream.Judge, event upstream.Event, category upstream.Category, participants []upstream.Participant, priorVotes []upstream.Vote, now time.Time) (*Session, error) {
	if category.Status != upstream.StatusOpen {
		return nil, ErrCategoryClosed
	}
	if !category.CriteriaValid() {
		return nil, ErrInvalidCriteria
	}
	if !event.Date.IsZero() && now.After(event.Date.Time) {
		return nil, ErrDeadlineExceeded
	}
	for _, v := range priorVotes {
		if v.Category.ID == category.ID && v.Judge.ID == judge.ID {
			return nil, ErrAlreadyVoted
		}
	}

	eligible := make([]upstream.Participant, 0, len(participants))
	scores := make(map[upstream.ID]map[int]int)
	for _, p := range participants {
		if !category.EligibleFor(p) {
			continue
		}
		eligible = append(eligible, p)
		initial := make(map[int]int, len(category.Criteria))
		for _, cr := range category.Criteria {
			initial[cr.ID] = 0
		}
		scores[p.ID] = initial
	}

	return &Session{
		Judge:        judge,
		Event:        event,
		Category:     category,
		Participants: eligible,
		OpenedAt:     now,
		scores:       scores,
	}, nil
}

// SetScore records a criterion score, clamped to [1,10]. The raw value is
// parsed-or-0 first and clamped second, so unparseable input lands on 1.
// That mirrors the original input handler; see DESIGN.md for why the quirk
// is kept.
func (s *Session) SetScore(participantID upstream.ID, criterionID int, raw string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.scores[participantID]
	if !ok {
		return 0, ErrNotEligible
	}
	if _, ok := ps[criterionID]; !ok {
		return 0, ErrUnknownCriterion
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		parsed = 0
	}
	score := parsed
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	ps[criterionID] = score
	return score, nil
}

// Score returns the recorded raw score for a pair, 0 when unset.
func (s *Session) Score(participantID upstream.ID, criterionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[participantID][criterionID]
}

// WeightedScore converts the participant's raw criterion scores to the
// category scale: sum of (raw/10) * (percentage/100) * max_score. Unset
// criteria contribute zero. Full precision; display rounding is the
// caller's business.
func (s *Session) WeightedScore(participantID upstream.ID) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weightedScoreLocked(participantID)
}

func (s *Session) weightedScoreLocked(participantID upstream.ID) float64 {
	ps := s.scores[participantID]
	var total float64
	for _, cr := range s.Category.Criteria {
		total += float64(ps[cr.ID]) / 10 * cr.Percentage / 100 * s.Category.MaxScore
	}
	return total
}

// BuildSubmission validates the whole session and produces one submission
// record per eligible participant. Any unset score fails the entire batch
// with a ValidationError naming the pair; the deadline is re-checked at
// submission time.
func (s *Session) BuildSubmission(now time.Time) ([]upstream.VoteSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Event.Date.IsZero() && now.After(s.Event.Date.Time) {
		return nil, ErrDeadlineExceeded
	}

	for _, p := range s.Participants {
		for _, cr := range s.Category.Criteria {
			if s.scores[p.ID][cr.ID] <= 0 {
				return nil, &ValidationError{
					ParticipantID:   p.ID,
					ParticipantName: p.Name,
					Criterion:       cr.Name,
				}
			}
		}
	}

	subs := make([]upstream.VoteSubmission, 0, len(s.Participants))
	for _, p := range s.Participants {
		criteriaScores := make(map[string]int, len(s.Category.Criteria))
		for _, cr := range s.Category.Criteria {
			criteriaScores[cr.Name] = s.scores[p.ID][cr.ID]
		}
		subs = append(subs, upstream.VoteSubmission{
			ParticipantID:  p.ID,
			Participant:    p.Name,
			Score:          s.weightedScoreLocked(p.ID),
			Comments:       "",
			SubmittedAt:    now.UTC(),
			CriteriaScores: criteriaScores,
		})
	}
	return subs, nil
}
