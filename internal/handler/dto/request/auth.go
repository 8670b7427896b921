package request

type LoginRequest struct {
	OperatorID string `json:"operator_id" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}
