package dto

import "time"

const DateLayout = "2006-01-02"

// Date renders t as YYYY-MM-DD in UTC.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type StoreDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
}

type SubmittedReviewDTO struct {
	ID        string `json:"id"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
	Language  string `json:"language"`
	CreatedAt string `json:"createdAt"`
	StoreName string `json:"storeName"`
}

type ReviewListDTO struct {
	ID         string `json:"id"`
	StoreName  string `json:"storeName"`
	Rating     *int   `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	IsApproved bool   `json:"isApproved"`
}

type ReviewApprovalDTO struct {
	ID         string `json:"id"`
	IsApproved bool   `json:"isApproved"`
}

type PaginationDTO struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ReviewPageDTO struct {
	Reviews    []ReviewListDTO `json:"reviews"`
	Pagination PaginationDTO   `json:"pagination"`
}

type SettingsDTO struct {
	WebhookURL        string `json:"webhookUrl"`
	NotificationEmail string `json:"notificationEmail"`
	AutoApprove       bool   `json:"autoApprove"`
	MinRating         int    `json:"minRating"`
}
