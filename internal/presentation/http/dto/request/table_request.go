package request

// TableRequest creates or replaces a dining table
type TableRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Zone   string `json:"zone" binding:"omitempty,max=100"`
	Seats  int    `json:"seats" binding:"omitempty,min=1"`
	Active *bool  `json:"active"`
}
