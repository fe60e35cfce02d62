package send_welcome

// SendWelcomeRequest HTTP request model
type SendWelcomeRequest struct {
	UserID int64 `json:"userId"`
}

// SendWelcomeResponse HTTP response model
type SendWelcomeResponse struct {
	Delivered bool `json:"delivered"`
}
