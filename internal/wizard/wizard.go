package wizard

import (
	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/validation"
)

// Step indexes for the project-creation wizard, in order.
const (
	StepOverview = iota
	StepLocation
	StepInvestment
	StepRevenue
	StepMilestones
	StepMedia
	StepReview
)

var StepNames = []string{
	"Overview", "Location", "Investment", "Revenue", "Milestones", "Media", "Review",
}

// stepFields maps each step to the draft fields it owns. Cross-field errors
// surface on the step that owns the designated field (investment bounds and
// timeline ordering both land on the Investment step).
var stepFields = [][]string{
	StepOverview:   {"name", "slug", "description", "summary", "type", "status", "ownershipType"},
	StepLocation:   {"address", "city", "state", "country", "latitude", "longitude"},
	StepInvestment: {"currency", "targetAmount", "minInvestment", "maxInvestment", "fundingDeadline", "underfundingPolicy", "startDate", "endDate", "exitDate", "riskLevel", "earlyExitAllowed", "earlyExitPenaltyRate", "earlyExitNoticeDays", "secondaryMarketEnabled", "isFeatured"},
	StepRevenue:    {"revenueStreams", "returnStructures", "fees", "tokens"},
	StepMilestones: {"milestones"},
	StepMedia:      {"media", "documents"},
	StepReview:     {},
}

// ValidateStep runs the full rule set against the draft and returns only the
// violations belonging to the given step. The incremental contract of the
// validator: same rules as the monolithic pass, scoped for step gating.
func ValidateStep(step int, draft *models.CreateProjectRequest) validation.Errors {
	if step < 0 || step >= len(stepFields) {
		return nil
	}
	return validation.CheckCreateProject(draft).ForFields(stepFields[step]...)
}

// Submitter receives the coerced payload when the wizard completes. In the
// web app this is the network boundary in front of the project service.
type Submitter interface {
	Submit(draft *validation.ProjectDraft) error
}

// Wizard is a linear sequencer over the creation steps: one in-memory draft,
// forward transitions gated by step-scoped validation, backward transitions
// always free. Single-threaded by construction.
type Wizard struct {
	current    int
	draft      *models.CreateProjectRequest
	stepErrors map[int]validation.Errors
}

func New(draft *models.CreateProjectRequest) *Wizard {
	if draft == nil {
		draft = &models.CreateProjectRequest{}
	}
	return &Wizard{
		draft:      draft,
		stepErrors: make(map[int]validation.Errors),
	}
}

func (w *Wizard) Current() int { return w.current }

func (w *Wizard) Draft() *models.CreateProjectRequest { return w.draft }

// StepErrors returns the recorded violations for a step, nil if it last
// validated clean.
func (w *Wizard) StepErrors(step int) validation.Errors {
	return w.stepErrors[step]
}

// Next validates the current step; on failure it records the errors and
// stays put, otherwise it clears them and advances (capped at Review).
func (w *Wizard) Next() validation.Errors {
	errs := ValidateStep(w.current, w.draft)
	if len(errs) > 0 {
		w.stepErrors[w.current] = errs
		return errs
	}
	delete(w.stepErrors, w.current)
	if w.current < len(stepFields)-1 {
		w.current++
	}
	return nil
}

// Prev is always permitted, floored at the first step.
func (w *Wizard) Prev() {
	if w.current > 0 {
		w.current--
	}
}

// GoTo jumps backward freely. Jumping forward validates every intervening
// step in order and stops on the first failure, moving the cursor there so
// the user cannot silently skip past an unvalidated step.
func (w *Wizard) GoTo(target int) validation.Errors {
	if target < 0 {
		target = 0
	}
	if target >= len(stepFields) {
		target = len(stepFields) - 1
	}
	if target <= w.current {
		w.current = target
		return nil
	}
	for step := w.current; step < target; step++ {
		errs := ValidateStep(step, w.draft)
		if len(errs) > 0 {
			w.stepErrors[step] = errs
			w.current = step
			return errs
		}
		delete(w.stepErrors, step)
	}
	w.current = target
	return nil
}

// Submit is only reachable from the Review step. It runs the monolithic
// validation over the complete draft; on success the coerced payload is
// handed to the submitter.
func (w *Wizard) Submit(s Submitter) (validation.Errors, error) {
	if w.current != StepReview {
		if errs := w.GoTo(StepReview); len(errs) > 0 {
			return errs, nil
		}
	}
	draft, errs := validation.ValidateCreateProject(w.draft)
	if len(errs) > 0 {
		return errs, nil
	}
	return nil, s.Submit(draft)
}
