package proto

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string `json:"type" validate:"required"`
	// CatID is the recipient's own cat, MatchedCatID the other side of the match.
	CatID        int64 `json:"cat_id,omitempty"`
	MatchedCatID int64 `json:"matched_cat_id,omitempty"`
}
