package model

// ── 申请状态 ──

// ApplicationStatus 申请状态（封闭集合）
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// 允许的状态迁移；审批结果可在 approved/rejected 之间改判，但不能退回 pending
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:  {ApplicationApproved, ApplicationRejected},
	ApplicationApproved: {ApplicationRejected},
	ApplicationRejected: {ApplicationApproved},
}

// Valid 是否为已知状态
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

// CanTransitionTo 判断能否迁移到 next
// 相同状态视为幂等；历史数据中的未知状态允许迁移到任一合法状态
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next || !s.Valid() {
		return true
	}
	for _, to := range applicationTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// ── 报告状态 ──

// ReportStatus 报告状态（封闭集合）
type ReportStatus string

const (
	ReportSubmitted         ReportStatus = "submitted"
	ReportRevisionRequested ReportStatus = "revision_requested"
	ReportReviewed          ReportStatus = "reviewed"
)

var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportSubmitted:         {ReportReviewed, ReportRevisionRequested},
	ReportRevisionRequested: {ReportReviewed},
	ReportReviewed:          {},
}

// Valid 是否为已知状态
func (s ReportStatus) Valid() bool {
	_, ok := reportTransitions[s]
	return ok
}

// CanTransitionTo 判断能否迁移到 next，规则同 ApplicationStatus
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next || !s.Valid() {
		return true
	}
	for _, to := range reportTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}
