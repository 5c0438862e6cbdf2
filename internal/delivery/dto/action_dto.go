package dto

// ActionRequest carries the operation discriminator shared by every
// action-dispatched endpoint. The rest of the body is decoded per action.
type ActionRequest struct {
	Action string `json:"action"`
}

// EmptyObject encodes as {} where a missing record must not become null.
type EmptyObject struct{}
