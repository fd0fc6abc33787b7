package upstream

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	GenderMale     = "male"
	GenderFemale   = "female"
	GenderEveryone = "everyone"

	StatusOpen   = "open"
	StatusClosed = "closed"

	EventStatusUpcoming = "upcoming"
	EventStatusOpen     = "open"
	EventStatusClosed   = "closed"

	AwardMajor = "major"
	AwardMinor = "minor"
)

// percentages come back as floats, compare with a little slack
const percentageEpsilon = 1e-9

// ID tolerates the backend's habit of serializing identifiers as either
// JSON strings or numbers.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Ref is an entity reference. Depending on the endpoint the backend sends
// either a bare id or an embedded {id, name/title} object.
type Ref struct {
	ID   ID
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		return nil
	}
	if s[0] == '{' {
		var obj struct {
			ID    ID     `json:"id"`
			Name  string `json:"name"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		r.ID = obj.ID
		r.Name = obj.Name
		if r.Name == "" {
			r.Name = obj.Title
		}
		return nil
	}
	return r.ID.UnmarshalJSON(data)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r.ID))
}

// Date accepts the backend's date encodings (RFC3339 with or without zone,
// or a plain calendar date).
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date value %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(time.RFC3339))
}

type Event struct {
	ID              ID     `json:"id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Date            Date   `json:"date"`
	Status          string `json:"status" validate:"oneof=upcoming open closed"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
	CoordinatorID   ID     `json:"coordinatorId"`
}

func (e *Event) normalize() {
	e.Status = strings.ToLower(strings.TrimSpace(e.Status))
}

type Participant struct {
	ID               ID     `json:"id" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email"`
	Event            Ref    `json:"event"`
	Entry            string `json:"entry"`
	RegistrationDate Date   `json:"registration_date"`
	ContestantNumber int    `json:"contestant_number"`
	Origin           string `json:"origin"`
	Gender           string `json:"gender"`
	Image            string `json:"image"`
}

func (p *Participant) normalize() {
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
}

type Judge struct {
	ID             ID     `json:"id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Image          string `json:"image"`
	AccessCode     string `json:"access_code"`
	Event          Ref    `json:"event"`
}

func (j *Judge) normalize() {
	j.Email = strings.ToLower(strings.TrimSpace(j.Email))
}

type Criterion struct {
	ID          int     `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage" validate:"gte=0,lte=100"`
}

type Category struct {
	ID          ID          `json:"id" validate:"required"`
	Event       Ref         `json:"event"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	MaxScore    float64     `json:"max_score" validate:"gt=0"`
	Weight      float64     `json:"weight" validate:"gt=0"`
	Status      string      `json:"status" validate:"oneof=open closed"`
	Gender      string      `json:"gender" validate:"oneof=male female everyone"`
	AwardType   string      `json:"award_type" validate:"oneof=major minor"`
	Criteria    []Criterion `json:"criteria" validate:"dive"`
}

func (c *Category) normalize() {
	c.Status = strings.ToLower(strings.TrimSpace(c.Status))
	c.Gender = strings.ToLower(strings.TrimSpace(c.Gender))
	c.AwardType = strings.ToLower(strings.TrimSpace(c.AwardType))
}

// CriteriaValid reports whether the criteria percentages sum to exactly 100.
// Categories failing this are excluded from scoring flows.
func (c Category) CriteriaValid() bool {
	var sum float64
	for _, cr := range c.Criteria {
		sum += cr.Percentage
	}
	return math.Abs(sum-100) < percentageEpsilon
}

// EligibleFor reports whether the participant may be scored in this category.
// Gender values arrive with inconsistent casing across endpoints, so the
// compare is case-insensitive.
func (c Category) EligibleFor(p Participant) bool {
	if strings.EqualFold(c.Gender, GenderEveryone) {
		return true
	}
	return strings.EqualFold(c.Gender, p.Gender)
}

// Vote is a single submitted score. The coordinator votes endpoint embeds
// judge/participant/category objects while the judge dashboard returns flat
// *Id keys; both decode into the same record.
type Vote struct {
	ID          ID
	Judge       Ref
	Participant Ref
	Category    Ref
	Event       Ref
	Score       float64
	Comments    string
	SubmittedAt Date
}

func (v *Vote) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            ID      `json:"id"`
		Judge         Ref     `json:"judge"`
		JudgeID       ID      `json:"judgeId"`
		Participant   Ref     `json:"participant"`
		ParticipantID ID      `json:"participantId"`
		Category      Ref     `json:"category"`
		CategoryID    ID      `json:"categoryId"`
		Event         Ref     `json:"event"`
		EventID       ID      `json:"eventId"`
		Score         float64 `json:"score"`
		Comments      string  `json:"comments"`
		SubmittedAt   Date    `json:"submitted_at"`
		SubmittedAtCC Date    `json:"submittedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.ID = raw.ID
	v.Judge = pickRef(raw.Judge, raw.JudgeID)
	v.Participant = pickRef(raw.Participant, raw.ParticipantID)
	v.Category = pickRef(raw.Category, raw.CategoryID)
	v.Event = pickRef(raw.Event, raw.EventID)
	v.Score = raw.Score
	v.Comments = raw.Comments
	v.SubmittedAt = raw.SubmittedAt
	if v.SubmittedAt.IsZero() {
		v.SubmittedAt = raw.SubmittedAtCC
	}
	return nil
}

func pickRef(embedded Ref, flat ID) Ref {
	if embedded.ID != "" {
		return embedded
	}
	return Ref{ID: flat}
}

// VoteSubmission is one record of a batch vote POST. Score carries full
// precision; rounding happens only in presentation layers.
type VoteSubmission struct {
	ParticipantID  ID             `json:"participantId"`
	Participant    string         `json:"participant"`
	Score          float64        `json:"score"`
	Comments       string         `json:"comments"`
	SubmittedAt    time.Time      `json:"submittedAt"`
	CriteriaScores map[string]int `json:"criteriaScores"`
}

type Coordinator struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CoordinatorLogin is the coordinator email/password exchange response.
type CoordinatorLogin struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    Coordinator `json:"user"`
}

// JudgeLogin is the access-code exchange response.
type JudgeLogin struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Judge        Judge  `json:"judge"`
}

// JudgeDashboard bundles the judge's assigned-event participants together
// with that judge's own vote history.
type JudgeDashboard struct {
	Participants []Participant `json:"participants"`
	Votes        []Vote        `json:"votes"`
}
