package jobs

// SubmitJobInput is the public posting payload. Status is not accepted;
// submissions always enter moderation as pending.
type SubmitJobInput struct {
	Title        string  `json:"title" validate:"required,min=2,max=200"`
	Description  string  `json:"description" validate:"required,min=10"`
	Location     string  `json:"location" validate:"required,max=200"`
	Company      string  `json:"company" validate:"required,max=200"`
	Type         string  `json:"type" validate:"required"`
	Category     string  `json:"category" validate:"required,max=100"`
	Requirements *string `json:"requirements" validate:"omitempty"`
	Salary       *string `json:"salary" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,phone"`
}

// CreateJobInput is the admin create payload; admins may set featured and an
// initial status.
type CreateJobInput struct {
	SubmitJobInput
	Featured bool    `json:"featured"`
	Status   *string `json:"status" validate:"omitempty"`
}

// UpdateJobInput merges partial edits into a posting. Identity and posting
// time are never client-writable.
type UpdateJobInput struct {
	Title        *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description  *string `json:"description" validate:"omitempty,min=10"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	Type         *string `json:"type" validate:"omitempty"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Requirements *string `json:"requirements" validate:"omitempty"`
	Salary       *string `json:"salary" validate:"omitempty,max=100"`
	Featured     *bool   `json:"featured"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,phone"`
}

// UpdateStatusInput carries a moderation decision.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// ApplyInput is a candidate's application to an approved posting.
type ApplyInput struct {
	UserID      string  `json:"userId" validate:"required,max=200"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty"`
	Resume      *string `json:"resume" validate:"omitempty"`
}

// UpdateApplicationStatusInput advances an application through review.
type UpdateApplicationStatusInput struct {
	Status string `json:"status" validate:"required"`
}
