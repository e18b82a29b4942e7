package services

import (
	"testing"
	"time"

	"menuqr/entity"
	"menuqr/repository"

	"github.com/stretchr/testify/assert"
)

func viewAt(t time.Time, device, referrer string) entity.MenuView {
	v := entity.MenuView{DeviceType: device, Referrer: referrer}
	v.CreatedAt = t
	return v
}

func TestAggregateDaily_BucketsAndOrder(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)

	// two views on day 1, five on day 3, nothing on day 2
	var views []entity.MenuView
	views = append(views,
		viewAt(day1, "mobile", "direct"),
		viewAt(day1.Add(time.Hour), "desktop", "direct"),
	)
	for i := 0; i < 5; i++ {
		views = append(views, viewAt(day3.Add(time.Duration(i)*time.Minute), "mobile", "https://instagram.com"))
	}

	got := AggregateDaily(views)

	// exactly two buckets, the empty day is omitted, ascending by date
	assert.Len(t, got, 2)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "2024-03-03", got[1].Date)
	assert.Equal(t, 5, got[1].Count)

	assert.Equal(t, "mobile", got[1].DeviceType)
	assert.Equal(t, "https://instagram.com", got[1].Referrer)
}

func TestAggregateDaily_ModePicksMostFrequent(t *testing.T) {
	day := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	views := []entity.MenuView{
		viewAt(day, "mobile", "direct"),
		viewAt(day, "mobile", "https://facebook.com"),
		viewAt(day, "desktop", "https://facebook.com"),
	}

	got := AggregateDaily(views)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "mobile", got[0].DeviceType)
	assert.Equal(t, "https://facebook.com", got[0].Referrer)
}

func TestAggregateDaily_EmptyFieldsFallBack(t *testing.T) {
	day := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	got := AggregateDaily([]entity.MenuView{viewAt(day, "", "")})
	assert.Len(t, got, 1)
	assert.Equal(t, "unknown", got[0].DeviceType)
	assert.Equal(t, "direct", got[0].Referrer)
}

func TestAggregateDaily_NoViews(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}

func TestSummarize(t *testing.T) {
	store := repository.NewMemoryStore()
	views := store.Views()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())

	add := func(at time.Time) {
		v := entity.MenuView{MenuID: 1, DeviceType: "mobile", Referrer: "direct"}
		v.CreatedAt = at
		assert.NoError(t, views.Create(&v))
	}
	add(today)                     // today
	add(today.AddDate(0, 0, -2))   // inside the week
	add(today.AddDate(0, 0, -20))  // outside the week

	menu := &entity.Menu{Name: "Main Menu", ViewCount: 42}
	menu.ID = 1

	svc := NewAnalyticsService(views)
	sum, err := svc.Summarize(menu)
	assert.NoError(t, err)

	assert.Equal(t, int64(42), sum.TotalViews)
	assert.Equal(t, 1, sum.TodayViews)
	assert.Equal(t, 2, sum.WeeklyViews)
	assert.Len(t, sum.RecentDays, 3)
}

func TestExportXLSX(t *testing.T) {
	store := repository.NewMemoryStore()
	views := store.Views()

	v := entity.MenuView{MenuID: 7, DeviceType: "mobile", Referrer: "direct"}
	v.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.NoError(t, views.Create(&v))

	menu := &entity.Menu{Name: "Main Menu", ViewCount: 1}
	menu.ID = 7

	svc := NewAnalyticsService(views)
	data, err := svc.ExportXLSX(menu)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
