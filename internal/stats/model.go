package stats

import (
	"github.com/veridian-studio/backoffice/internal/inquiry"
)

// DashboardStats is a best-effort snapshot for the admin dashboard.
// The counts come from independent queries with no cross-query
// consistency guarantee.
type DashboardStats struct {
	Inquiries       EntityCounts              `json:"inquiries"`
	Services        EntityCounts              `json:"services"`
	Testimonials    EntityCounts              `json:"testimonials"`
	TeamMembers     int                       `json:"team_members"`
	BlogPosts       int                       `json:"blog_posts"`
	RecentInquiries []*inquiry.ContactInquiry `json:"recent_inquiries"`
	InquiryTrend    []DayCount                `json:"inquiry_trend"`
}

// EntityCounts pairs a total with the attention-needing subset: new
// inquiries, active services, pending testimonials.
type EntityCounts struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

// DayCount is one bucket of the inquiry trend. Date is the UTC calendar
// date in YYYY-MM-DD form. Days without inquiries appear with Count 0.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
