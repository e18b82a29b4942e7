package services

import (
	"fmt"
	"log"
	"time"

	"menuqr/entity"
	"menuqr/pkg/events"
	"menuqr/repository"
	"menuqr/utils"

	"github.com/google/uuid"
)

// ViewContext is what the public page handler knows about the visitor.
type ViewContext struct {
	UserAgent  string
	Referrer   string
	ScreenSize string
	Language   string
}

// TrackingService records menu views: one atomic counter increment plus one
// appended event row. Both are best-effort, failures are logged and swallowed
// so the public page never sees them.
type TrackingService struct {
	menus   repository.MenuRepository
	views   repository.ViewRepository
	emitter *events.ViewEmitter
}

func NewTrackingService(menus repository.MenuRepository, views repository.ViewRepository, emitter *events.ViewEmitter) *TrackingService {
	return &TrackingService{menus: menus, views: views, emitter: emitter}
}

// RecordView tracks a visit of the given menu. The counter increment and the
// event append are independent: either can fail without touching the other.
func (s *TrackingService) RecordView(menu *entity.Menu, vc ViewContext) {
	if err := s.menus.IncrementViewCount(menu.ID); err != nil {
		log.Printf("tracking: increment view count for menu %d: %v", menu.ID, err)
	}

	now := time.Now()
	referrer := vc.Referrer
	if referrer == "" {
		referrer = "direct"
	}
	language := vc.Language
	if language == "" {
		language = "unknown"
	}
	info := utils.ParseUserAgent(vc.UserAgent)

	view := &entity.MenuView{
		ViewID:       fmt.Sprintf("%s_%d_%s", menu.PublicID, now.UnixMilli(), uuid.NewString()[:8]),
		MenuID:       menu.ID,
		VendorID:     menu.VendorID,
		UserAgent:    vc.UserAgent,
		DeviceType:   info.DeviceType,
		DeviceVendor: info.Vendor,
		BrowserName:  info.BrowserName,
		Referrer:     referrer,
		ScreenSize:   vc.ScreenSize,
		Language:     language,
		TimeOfDay:    now.Hour(),
		DayOfWeek:    int(now.Weekday()),
	}
	if err := s.views.Create(view); err != nil {
		log.Printf("tracking: append view event for menu %d: %v", menu.ID, err)
		return
	}
	if s.emitter != nil {
		s.emitter.Publish(*view)
	}
}
