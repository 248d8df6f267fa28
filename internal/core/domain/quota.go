package domain

import "time"

// UnlimitedPlans is the sentinel returned for the remaining-plans count when
// the account has no quota cap.
const UnlimitedPlans = -1

// Quota is the usage-limits snapshot returned by GET /api/v1/auth/quota.
type Quota struct {
	MembershipLevel      string     `json:"membership_level"`
	IsPro                bool       `json:"is_pro"`
	PlanUsageCount       int        `json:"plan_usage_count"`
	PlanLimit            int        `json:"plan_limit"`
	RemainingPlans       int        `json:"remaining_plans"`
	CopywriterUsageCount int        `json:"copywriter_usage_count"`
	CopywriterLimit      int        `json:"copywriter_limit"`
	LastReset            *time.Time `json:"last_reset"`
	Unlimited            bool       `json:"unlimited"`
}
