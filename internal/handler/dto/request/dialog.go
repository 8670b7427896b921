package request

type DialogInputRequest struct {
	Text string `json:"text" binding:"required,max=256"`
}
