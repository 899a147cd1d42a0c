package contact

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=20,max=5000"`

	// Optional enums describing the inquiry
	ProjectType string `json:"projectType" binding:"omitempty,projecttype"`
	Budget      string `json:"budget" binding:"omitempty,budgetrange"`

	// Honeypot is invisible on the real form. A non-empty value marks the
	// submission as automated; it is not a schema violation.
	Honeypot string `json:"honeypot"`
}

// IsSpam reports whether the honeypot field was filled in
func (r *SubmitRequest) IsSpam() bool {
	return r.Honeypot != ""
}
