package viegrand

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL       string
	AccessToken   string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	HTTPClient    *http.Client
}

// envelope is the body shape of every backend response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CreateReminderRequest is the body for POST /reminders.
type CreateReminderRequest struct {
	RecipientEmail string `json:"email_nguoi_nhan"`
	RecipientName  string `json:"ten_nguoi_nhan"`
	Content        string `json:"noi_dung"`
	RecipientKey   string `json:"private_key_nguoi_nhan"`
	NgayGio        string `json:"ngay_gio"`
	ThoiGian       string `json:"thoi_gian"`
}

// Reminder is the backend reminder object.
type Reminder struct {
	ID             int64  `json:"id"`
	RecipientEmail string `json:"email_nguoi_nhan"`
	RecipientName  string `json:"ten_nguoi_nhan"`
	Content        string `json:"noi_dung"`
	NgayGio        string `json:"ngay_gio"`
	ThoiGian       string `json:"thoi_gian"`
	Status         string `json:"trang_thai"`
	CreatedAt      string `json:"created_at"`
}

// PremiumStatus is the backend subscription record.
type PremiumStatus struct {
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// User is the public profile returned by the private-key lookup.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	PrivateKey string `json:"private_key"`
}

// AddFamilyMemberRequest links the relative identified by Email to the
// elderly account owning PrivateKey.
type AddFamilyMemberRequest struct {
	Email      string `json:"email"`
	PrivateKey string `json:"private_key"`
}

// FamilyMember is a relative/elderly link as returned by the backend.
type FamilyMember struct {
	ID            int64  `json:"id"`
	RelativeEmail string `json:"relative_email"`
	User          User   `json:"user"`
}
