// Package websockets broadcasts live events, currently big wins, to
// connected dashboard clients through the API Gateway management API.
package websockets

// Message is one event pushed to all connected clients.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// BigWin is the payload broadcast when a spin pays out a large multiple of
// its bet. Amounts travel as strings to keep decimal precision in transit.
type BigWin struct {
	UserID    string `json:"user_id"`
	MachineID string `json:"machine_id"`
	Currency  string `json:"currency"`
	Payout    string `json:"payout"`
}
