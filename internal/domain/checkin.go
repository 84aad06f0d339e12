package domain

// CheckInState is the mutable record of one in-progress daily check-in.
// A session owns exactly one of these; the tool surface mutates it in
// invocation order, last write wins per field.
type CheckInState struct {
	Mood        *string  `json:"mood"`
	Energy      *string  `json:"energy"`
	Objectives  []string `json:"objectives"`
	AdviceGiven *string  `json:"advice_given"`

	// Persisted marks the state as terminal: the check-in was validated
	// and appended to the history log. A later completion call must not
	// append a second record.
	Persisted bool `json:"persisted"`
}

// NewCheckInState creates an empty check-in, ready to be filled in by tools.
func NewCheckInState() *CheckInState {
	return &CheckInState{}
}

// SetMoodEnergy overwrites both fields unconditionally. Values are free-form
// text, no domain is enforced here.
func (c *CheckInState) SetMoodEnergy(mood, energy string) {
	c.Mood = &mood
	c.Energy = &energy
}

// SetObjectives replaces the whole objectives list. Order is display order
// and duplicates are kept as given.
func (c *CheckInState) SetObjectives(objectives []string) {
	c.Objectives = append([]string(nil), objectives...)
}

// SetAdvice records the closing one-sentence summary.
func (c *CheckInState) SetAdvice(summary string) {
	c.AdviceGiven = &summary
}

// IsComplete reports whether the check-in has everything a history record
// needs: mood, energy and at least one objective. AdviceGiven does not count.
func (c *CheckInState) IsComplete() bool {
	return c.Mood != nil && c.Energy != nil && len(c.Objectives) > 0
}
