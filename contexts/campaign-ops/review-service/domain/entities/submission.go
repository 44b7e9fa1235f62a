package entities

import (
	"strings"
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusFlagged  SubmissionStatus = "flagged"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
	SubmissionStatusPaid     SubmissionStatus = "paid"
)

type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformX         Platform = "x"
	PlatformOther     Platform = "other"
)

// NormalizePlatform maps free-form platform strings to the supported set.
func NormalizePlatform(value string) Platform {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tiktok":
		return PlatformTikTok
	case "youtube":
		return PlatformYouTube
	case "instagram":
		return PlatformInstagram
	case "x", "twitter":
		return PlatformX
	default:
		return PlatformOther
	}
}

// Submission is one clipped-content entry on the remote platform. The remote
// system owns the record; this service reads it and sends review decisions
// back, it never stores it.
type Submission struct {
	SubmissionID     string
	CampaignID       string
	SubmitterID      string
	ContentURL       string
	Platform         Platform
	ViewCount        int64
	Status           SubmissionStatus
	SubmittedAt      time.Time
	ReviewedAt       *time.Time
	StatusReason     string
	CalculatedPayout float64
	ActualPayout     float64
	TransferID       string
}

// Reviewable reports whether a review decision may still be taken.
func (s Submission) Reviewable() bool {
	return s.Status == SubmissionStatusPending || s.Status == SubmissionStatusFlagged
}

// SubmissionStats is a derived aggregate over a submission collection.
// TotalViews and AverageViews cover approved submissions only.
type SubmissionStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Flagged      int     `json:"flagged"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	Paid         int     `json:"paid"`
	TotalViews   int64   `json:"total_views"`
	AverageViews float64 `json:"average_views"`
	ApprovalRate float64 `json:"approval_rate"`
}
