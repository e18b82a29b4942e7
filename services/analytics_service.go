package services

import (
	"fmt"
	"sort"
	"time"

	"menuqr/entity"
	"menuqr/repository"

	"github.com/xuri/excelize/v2"
)

const (
	// how many raw events feed the per-day scan table
	scanEventLimit = 30
	// how many raw events feed the dashboard summary
	summaryEventLimit = 50
	// day buckets shown on the dashboard chart
	summaryDayLimit = 7
)

// DailyScans is one day bucket of the scan analytics table: total count plus
// the day's dominant device class and referrer.
type DailyScans struct {
	Date       string `json:"date"`
	Count      int    `json:"count"`
	DeviceType string `json:"deviceType"`
	Referrer   string `json:"referrer"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalViews  int64      `json:"totalViews"`
	TodayViews  int        `json:"todayViews"`
	WeeklyViews int        `json:"weeklyViews"`
	RecentDays  []DayCount `json:"recentDays"`
}

type AnalyticsService struct {
	Views repository.ViewRepository
}

func NewAnalyticsService(views repository.ViewRepository) *AnalyticsService {
	return &AnalyticsService{Views: views}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AggregateDaily groups raw view events by calendar day. Within a day the
// most frequent device type and referrer win; ties break alphabetically so
// the output is stable. Days without events simply don't appear. Result is
// ascending by date.
func AggregateDaily(views []entity.MenuView) []DailyScans {
	type bucket struct {
		count     int
		devices   map[string]int
		referrers map[string]int
	}
	daily := make(map[string]*bucket)

	for _, v := range views {
		key := dateKey(v.CreatedAt)
		b, ok := daily[key]
		if !ok {
			b = &bucket{devices: make(map[string]int), referrers: make(map[string]int)}
			daily[key] = b
		}
		b.count++

		device := v.DeviceType
		if device == "" {
			device = "unknown"
		}
		b.devices[device]++

		referrer := v.Referrer
		if referrer == "" {
			referrer = "direct"
		}
		b.referrers[referrer]++
	}

	out := make([]DailyScans, 0, len(daily))
	for date, b := range daily {
		out = append(out, DailyScans{
			Date:       date,
			Count:      b.count,
			DeviceType: mode(b.devices),
			Referrer:   mode(b.referrers),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func mode(counts map[string]int) string {
	best, bestN := "", -1
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best
}

// ScansByDay builds the per-day scan table for one menu from its most recent
// events.
func (s *AnalyticsService) ScansByDay(menuID uint) ([]DailyScans, error) {
	views, err := s.Views.FindRecentByMenu(menuID, scanEventLimit)
	if err != nil {
		return nil, err
	}
	return AggregateDaily(views), nil
}

// Summarize builds the dashboard cards: all-time counter plus today / last-7-
// days counts and the recent per-day buckets, all derived from the most
// recent events.
func (s *AnalyticsService) Summarize(menu *entity.Menu) (*Summary, error) {
	views, err := s.Views.FindRecentByMenu(menu.ID, summaryEventLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)

	var today, weekly int
	for _, v := range views {
		if !v.CreatedAt.Before(todayStart) {
			today++
		}
		if !v.CreatedAt.Before(weekStart) {
			weekly++
		}
	}

	buckets := AggregateDaily(views)
	days := make([]DayCount, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, DayCount{Date: b.Date, Count: b.Count})
	}
	if len(days) > summaryDayLimit {
		days = days[len(days)-summaryDayLimit:]
	}

	return &Summary{
		TotalViews:  menu.ViewCount,
		TodayViews:  today,
		WeeklyViews: weekly,
		RecentDays:  days,
	}, nil
}

// ExportXLSX renders the scan table as a spreadsheet download.
func (s *AnalyticsService) ExportXLSX(menu *entity.Menu) ([]byte, error) {
	rows, err := s.ScansByDay(menu.ID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Date", "Scans", "Top Device", "Top Referrer"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r.Count)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), r.DeviceType)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), r.Referrer)
	}
	f.SetCellValue(sheet, "F1", "Total Scans")
	f.SetCellValue(sheet, "F2", menu.ViewCount)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
