package policy

import (
	"context"

	"github.com/veridian-studio/backoffice/internal/adminuser"
)

// Action represents a back-office action that can be policy-controlled.
type Action string

const (
	ActionInquiryUpdate      Action = "inquiry.update"
	ActionInquiryDelete      Action = "inquiry.delete"
	ActionInquiryReply       Action = "inquiry.reply"
	ActionServiceCreate      Action = "service.create"
	ActionServiceUpdate      Action = "service.update"
	ActionServiceDelete      Action = "service.delete"
	ActionTestimonialUpdate  Action = "testimonial.update"
	ActionTestimonialDelete  Action = "testimonial.delete"
	ActionNotificationCreate Action = "notification.create"
	ActionAdminCreate        Action = "admin.create"
	ActionAdminList          Action = "admin.list"
)

// Result contains the outcome of a policy check.
type Result struct {
	Allowed bool
	Reason  string
}

// Engine is the interface for policy evaluation.
type Engine interface {
	Check(ctx context.Context, role adminuser.Role, action Action) Result
}

// superAdminActions are reserved for the higher rank.
var superAdminActions = map[Action]bool{
	ActionServiceDelete: true,
	ActionAdminCreate:   true,
	ActionAdminList:     true,
}

// HardcodedEngine implements the fixed two-rank policy. Every action is
// open to any admin unless reserved for super admins.
type HardcodedEngine struct{}

func NewHardcodedEngine() *HardcodedEngine {
	return &HardcodedEngine{}
}

func (e *HardcodedEngine) Check(ctx context.Context, role adminuser.Role, action Action) Result {
	if !role.Valid() {
		return Result{Allowed: false, Reason: "not an admin"}
	}
	if superAdminActions[action] && role != adminuser.RoleSuperAdmin {
		return Result{Allowed: false, Reason: "insufficient_permissions"}
	}
	return Result{Allowed: true}
}
