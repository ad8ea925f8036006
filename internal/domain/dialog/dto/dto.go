package dto

// TurnRequest is one inbound conversational turn, already resolved to an
// intent with parameters extracted by the host platform.
type TurnRequest struct {
	SessionID         string            `json:"session_id"`
	UserID            string            `json:"user_id"`
	Intent            string            `json:"intent"`
	Params            map[string]string `json:"params,omitempty"`
	ScreenOutput      bool              `json:"screen_output"`
	PermissionGranted bool              `json:"permission_granted,omitempty"`
	RegisterStatus    string            `json:"register_status,omitempty"`
}

// Card carries the optional visual payload of a turn for screen surfaces
type Card struct {
	Text        string `json:"text"`
	ButtonTitle string `json:"button_title,omitempty"`
	ButtonURL   string `json:"button_url,omitempty"`
}

// PermissionRequest asks the host platform for push consent, naming the
// intent to invoke once granted
type PermissionRequest struct {
	Intent string `json:"intent"`
}

// RegisterUpdateRequest asks the host platform to register a recurring update
type RegisterUpdateRequest struct {
	Intent    string     `json:"intent"`
	Arguments []Argument `json:"arguments,omitempty"`
	Frequency string     `json:"frequency"`
}

type Argument struct {
	Name      string `json:"name"`
	TextValue string `json:"text_value"`
}

// TurnResponse is the synchronous reply to one turn
type TurnResponse struct {
	Speech            string                 `json:"speech"`
	Suggestions       []string               `json:"suggestions,omitempty"`
	Card              *Card                  `json:"card,omitempty"`
	EndSession        bool                   `json:"end_session"`
	PermissionRequest *PermissionRequest     `json:"permission_request,omitempty"`
	RegisterUpdate    *RegisterUpdateRequest `json:"register_update,omitempty"`
}
