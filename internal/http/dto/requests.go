package dto

type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	FullName *string `json:"full_name"`
	Address  *string `json:"address"`
	Location *string `json:"location"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Phone    *string `json:"phone"`
	FullName *string `json:"full_name"`
	Address  *string `json:"address"`
	Location *string `json:"location"`
}

// Report bodies carry form tags as well: submissions with a photo arrive as
// multipart forms, plain submissions as JSON.
type LostReportRequest struct {
	PetName          string  `json:"pet_name" form:"pet_name"`
	PetType          string  `json:"pet_type" form:"pet_type"`
	Breed            string  `json:"breed" form:"breed"`
	Color            string  `json:"color" form:"color"`
	LastSeenLocation string  `json:"last_seen_location" form:"last_seen_location"`
	Description      *string `json:"description" form:"description"`
	DateLost         string  `json:"date_lost" form:"date_lost"`
	ContactPhone     string  `json:"contact_phone" form:"contact_phone"`
	Message          *string `json:"message" form:"message"`
}

type FoundReportRequest struct {
	PetType       string  `json:"pet_type" form:"pet_type"`
	Breed         string  `json:"breed" form:"breed"`
	Color         string  `json:"color" form:"color"`
	FoundLocation string  `json:"found_location" form:"found_location"`
	Description   *string `json:"description" form:"description"`
	ContactPhone  *string `json:"contact_phone" form:"contact_phone"`
	Message       *string `json:"message" form:"message"`
}

type EditReportRequest struct {
	PetName      *string `json:"pet_name" form:"pet_name"`
	Breed        string  `json:"breed" form:"breed"`
	Color        string  `json:"color" form:"color"`
	Location     string  `json:"location" form:"location"`
	Description  *string `json:"description" form:"description"`
	ContactPhone string  `json:"contact_phone" form:"contact_phone"`
	Message      *string `json:"message" form:"message"`
}

type ContactRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Subject        string  `json:"subject"`
	Message        string  `json:"message"`
	SubmissionType string  `json:"submission_type"`
	PetID          *string `json:"pet_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
