package models

// Response is the uniform result envelope every operation returns. Msg is a
// human-readable confirmation or error description, never machine-parsed.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Msg     string      `json:"msg,omitempty"`
}

// OK builds a success envelope.
func OK(msg string, data interface{}) Response {
	return Response{Success: true, Data: data, Msg: msg}
}

// Fail builds a failure envelope.
func Fail(msg string) Response {
	return Response{Success: false, Msg: msg}
}
