package model

import "time"

// AdInsight is one loaded row of the warehouse fact table.
type AdInsight struct {
	ID int64

	AccountID string
	SyncRunID string

	// Dimensions
	AdID         string
	AdName       string
	AdsetID      string
	AdsetName    string
	CampaignID   string
	CampaignName string
	Objective    string

	// Metrics
	Spend            float64
	CPC              float64
	CPM              float64
	Clicks           int64
	Frequency        float64
	Conversions      float64
	ConversionValues float64

	DateStart time.Time
	DateStop  time.Time
	LoadedAt  time.Time
}
