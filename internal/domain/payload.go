package domain

// Payload is the JSON body accepted by the /tango endpoint.
type Payload struct {
	Image          string  `json:"image"`
	MIMEType       string  `json:"mime_type"`
	UserID         *string `json:"user_id"`
	ConversationID *string `json:"conversation_id"`
}

func NewPayload(image, mimeType, userID, conversationID string) *Payload {
	return &Payload{
		Image:          image,
		MIMEType:       mimeType,
		UserID:         optional(userID),
		ConversationID: optional(conversationID),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
