package http

import (
	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/response"
)

// --- Request DTOs ---

type previewReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (r previewReq) toInput() reminder.PreviewInput {
	return reminder.PreviewInput{Date: r.Date, Time: r.Time}
}

type createReq struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Content        string `json:"content"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
	RecipientKey   string `json:"recipient_private_key"`
}

func (r createReq) toInput() reminder.CreateInput {
	return reminder.CreateInput{
		Date:           r.Date,
		Time:           r.Time,
		Content:        r.Content,
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		RecipientKey:   r.RecipientKey,
	}
}

type listReq struct {
	Email string `form:"email"`
}

func (r listReq) toInput() reminder.ListInput {
	return reminder.ListInput{Email: r.Email}
}

// --- Response DTOs ---

type previewResp struct {
	Date      string                `json:"date"`
	Time      string                `json:"time"`
	DateValid bool                  `json:"date_valid"`
	TimeValid bool                  `json:"time_valid"`
	Payload   *datemath.APIDateTime `json:"payload,omitempty"`
}

func (h *handler) newPreviewResp(out reminder.PreviewOutput) previewResp {
	return previewResp{
		Date:      out.Date,
		Time:      out.Time,
		DateValid: out.DateValid,
		TimeValid: out.TimeValid,
		Payload:   out.Payload,
	}
}

type reminderResp struct {
	ID             int64              `json:"id"`
	RecipientEmail string             `json:"email_nguoi_nhan"`
	RecipientName  string             `json:"ten_nguoi_nhan,omitempty"`
	Content        string             `json:"noi_dung"`
	NgayGio        string             `json:"ngay_gio"`
	ThoiGian       string             `json:"thoi_gian"`
	Status         string             `json:"trang_thai,omitempty"`
	At             *response.DateTime `json:"at,omitempty"`
	CalendarLink   string             `json:"calendar_link,omitempty"`
}

func newReminderResp(r model.Reminder) reminderResp {
	resp := reminderResp{
		ID:             r.ID,
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		Content:        r.Content,
		NgayGio:        r.NgayGio,
		ThoiGian:       r.ThoiGian,
		Status:         r.Status,
		CalendarLink:   r.CalendarLink,
	}
	if !r.At.IsZero() {
		at := response.DateTime(r.At)
		resp.At = &at
	}
	return resp
}

type createResp struct {
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newCreateResp(out reminder.CreateOutput) createResp {
	return createResp{Reminder: newReminderResp(out.Reminder)}
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
	Count     int            `json:"count"`
}

func (h *handler) newListResp(out reminder.ListOutput) listResp {
	items := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		items[i] = newReminderResp(r)
	}
	return listResp{Reminders: items, Count: out.Count}
}
