package errors

import "errors"

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrInvalidCampaignData = errors.New("invalid campaign data")
	ErrInvalidPromoCode    = errors.New("invalid promo code data")
	ErrInvalidPricingPlan  = errors.New("invalid pricing plan data")
	ErrPlatform            = errors.New("platform campaign call failed")
)
