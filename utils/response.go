package utils

// Envelope is the uniform response body for every endpoint.
// Message is a string except on validation failures, where it carries the
// field-keyed error map.
type Envelope struct {
	Success int         `json:"success"`
	Message interface{} `json:"message"`
	Data    interface{} `json:"data"`
}

// APIResponse builds an envelope. data may be nil; it is normalized to an
// empty object so clients always see a "data" key.
func APIResponse(success bool, message interface{}, data interface{}) Envelope {
	flag := 0
	if success {
		flag = 1
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return Envelope{
		Success: flag,
		Message: message,
		Data:    data,
	}
}
