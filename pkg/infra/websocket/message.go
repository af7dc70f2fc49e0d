package websocket

const (
	KindText = "text"
	KindBot  = "bot"
)

// Message is one analysis request sent over an open connection.
type Message struct {
	ID      string `json:"id,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text"`
}

// ResponseMessage answers exactly one Message. ID echoes the request's.
type ResponseMessage struct {
	ID     string      `json:"id,omitempty"`
	Status int         `json:"status"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}
