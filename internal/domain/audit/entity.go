package audit

import "time"

// Action enum
type Action string

const (
	ActionRecalculate Action = "recalculate"
	ActionClose       Action = "close"
	ActionSendReceipt Action = "send_receipt"
)

// Entry is one row of the payroll audit trail. The actor is passed in
// explicitly by whoever handled the request; services never pull identity
// out of ambient state.
type Entry struct {
	ID        string
	Actor     string
	Action    Action
	Entity    string
	EntityID  string
	Detail    *string
	CreatedAt time.Time
}

type Filter struct {
	Actor    *string
	Action   *Action
	EntityID *string
	Page     int
	Limit    int
}

type EntryResponse struct {
	ID        string  `json:"id"`
	Actor     string  `json:"actor"`
	Action    string  `json:"action"`
	Entity    string  `json:"entity"`
	EntityID  string  `json:"entity_id"`
	Detail    *string `json:"detail"`
	CreatedAt string  `json:"created_at"`
}

type ListEntryResponse struct {
	Data       []EntryResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
