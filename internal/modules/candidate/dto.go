package candidate

// CreateCandidateRequest carries the raw multipart form fields. Experience
// arrives as a string and is parsed by the service so a bad value is a
// validation error, not a bind failure.
type CreateCandidateRequest struct {
	FirstName       string
	LastName        string
	PositionApplied string
	CurrentPosition string
	ExperienceYears string
}
