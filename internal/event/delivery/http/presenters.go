package http

import (
	"github-activity/internal/event"
	"github-activity/internal/model"
	"github-activity/internal/webhook"
)

// --- Request DTOs ---

type receiveReq struct {
	EventType  string
	DeliveryID string
	Payload    webhook.Payload
}

func (r receiveReq) toInput() event.ReceiveInput {
	return event.ReceiveInput{
		EventType:  r.EventType,
		DeliveryID: r.DeliveryID,
		Payload:    r.Payload,
	}
}

type listReq struct {
	Limit int
}

func (r listReq) toInput() event.ListRecentInput {
	return event.ListRecentInput{Limit: r.Limit}
}

// --- Response DTOs ---

type eventResp struct {
	RequestID  string  `json:"request_id" example:"abc123"`
	Author     *string `json:"author" example:"alice"`
	Action     string  `json:"action" example:"PUSH"`
	FromBranch string  `json:"from_branch" example:""`
	ToBranch   string  `json:"to_branch" example:"main"`
	Timestamp  string  `json:"timestamp" example:"1st April 2021 - 09:30 PM UTC"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     string(e.Action),
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
		Timestamp:  e.Timestamp,
	}
}

func (h *handler) newListResp(o event.ListRecentOutput) []eventResp {
	resp := make([]eventResp, 0, len(o.Events))
	for _, e := range o.Events {
		resp = append(resp, newEventResp(e))
	}
	return resp
}
