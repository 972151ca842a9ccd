package models

// Feedback is a feedback form submission. Field rules match the form on
// the feedback page.
type Feedback struct {
	Name          string `json:"name" binding:"required,min=2,max=50"`
	Email         string `json:"email" binding:"required,email"`
	UserType      string `json:"userType" binding:"required,oneof=student faculty staff alumni visitor"`
	EventAttended int    `json:"eventAttended" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comments      string `json:"comments" binding:"required,min=10,max=500"`
	Subscribe     bool   `json:"subscribe"`
}
