package response

// Body is the envelope used by the auth middleware rejection paths. Regular
// handler responses go through fres or plain maps.
type Body struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) Body {
	return Body{Code: code, Message: message, Data: data}
}
