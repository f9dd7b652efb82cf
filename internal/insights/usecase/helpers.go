package usecase

import (
	"fmt"
	"strconv"
	"time"

	"metaads-srv/internal/model"
	"metaads-srv/pkg/metaads"
)

const dateLayout = "2006-01-02"

func validDateRange(since, until string) bool {
	s, err := time.Parse(dateLayout, since)
	if err != nil {
		return false
	}
	u, err := time.Parse(dateLayout, until)
	if err != nil {
		return false
	}
	return !s.After(u)
}

func validFields(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == "" {
			return false
		}
		if _, dup := seen[f]; dup {
			return false
		}
		seen[f] = struct{}{}
	}
	return true
}

func validMode(mode string) bool {
	switch mode {
	case model.LoadModeReplace, model.LoadModeAppend, model.LoadModeFail:
		return true
	}
	return false
}

// parseMetric converts a Graph API string metric. The API omits metrics
// that are zero, so an empty string maps to 0.
func parseMetric(name, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("metric %s: malformed value %q", name, raw)
	}
	return v, nil
}

func parseCount(name, raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("metric %s: malformed value %q", name, raw)
	}
	return v, nil
}

// buildInsightRow converts one Graph API row to a warehouse row.
func buildInsightRow(accountID, runID string, in metaads.Insight) (model.AdInsight, error) {
	row := model.AdInsight{
		AccountID:    accountID,
		SyncRunID:    runID,
		AdID:         in.AdID,
		AdName:       in.AdName,
		AdsetID:      in.AdsetID,
		AdsetName:    in.AdsetName,
		CampaignID:   in.CampaignID,
		CampaignName: in.CampaignName,
		Objective:    in.Objective,
	}

	var err error
	if row.Spend, err = parseMetric("spend", in.Spend); err != nil {
		return row, err
	}
	if row.CPC, err = parseMetric("cpc", in.CPC); err != nil {
		return row, err
	}
	if row.CPM, err = parseMetric("cpm", in.CPM); err != nil {
		return row, err
	}
	if row.Clicks, err = parseCount("clicks", in.Clicks); err != nil {
		return row, err
	}
	if row.Frequency, err = parseMetric("frequency", in.Frequency); err != nil {
		return row, err
	}
	if row.Conversions, err = parseMetric("conversions", in.Conversions); err != nil {
		return row, err
	}
	if row.ConversionValues, err = parseMetric("conversion_values", in.ConversionValues); err != nil {
		return row, err
	}

	if row.DateStart, err = time.Parse(dateLayout, in.DateStart); err != nil {
		return row, fmt.Errorf("date_start: malformed value %q", in.DateStart)
	}
	if row.DateStop, err = time.Parse(dateLayout, in.DateStop); err != nil {
		return row, fmt.Errorf("date_stop: malformed value %q", in.DateStop)
	}

	return row, nil
}
