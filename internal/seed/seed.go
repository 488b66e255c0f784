// Package seed fills an empty database with the default menu, time slots,
// and notices on first startup. Each table is seeded only when empty, so
// redeploys never duplicate rows.
package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type menuSeed struct {
	name        string
	price       string
	category    string
	description string
	emoji       string
	popular     bool
}

var defaultMenuItems = []menuSeed{
	{"Grilled Chicken Sandwich", "8.99", "lunch", "Juicy grilled chicken with fresh vegetables", "🥪", true},
	{"Caesar Salad", "6.99", "lunch", "Fresh romaine lettuce with caesar dressing", "🥗", false},
	{"Pancakes", "5.99", "breakfast", "Fluffy pancakes with maple syrup", "🥞", true},
	{"Coffee", "2.99", "beverages", "Freshly brewed coffee", "☕", true},
	{"Chocolate Muffin", "3.49", "snacks", "Rich chocolate chip muffin", "🧁", false},
	{"Fruit Smoothie", "4.99", "beverages", "Mixed fruit smoothie with yogurt", "🥤", true},
}

var defaultTimeSlots = []struct {
	time  string
	label string
}{
	{"9:00-10:00", "9:00 - 10:00 AM"},
	{"10:00-11:00", "10:00 - 11:00 AM"},
	{"11:00-12:00", "11:00 - 12:00 PM"},
	{"12:00-13:00", "12:00 - 1:00 PM"},
	{"13:00-14:00", "1:00 - 2:00 PM"},
	{"14:00-15:00", "2:00 - 3:00 PM"},
}

var defaultNotices = []struct {
	title      string
	message    string
	noticeType enums.NoticeType
}{
	{"Welcome to Campus Canteen!", "Enjoy our fresh meals and convenient online ordering system.", enums.NoticeTypeInfo},
	{"20% Off Lunch Combos", "Get 20% off on all lunch combo meals this week!", enums.NoticeTypeSpecial},
}

// Run seeds each empty table with its defaults.
func Run(ctx context.Context, db *gorm.DB, cfg config.SlotsConfig, logg *logger.Logger) error {
	if err := seedMenu(ctx, db, logg); err != nil {
		return err
	}
	if err := seedTimeSlots(ctx, db, cfg, logg); err != nil {
		return err
	}
	return seedNotices(ctx, db, logg)
}

func seedMenu(ctx context.Context, db *gorm.DB, logg *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count menu items")
	}
	if count > 0 {
		return nil
	}

	for _, item := range defaultMenuItems {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse seed price")
		}
		row := models.MenuItem{
			ID:          uuid.New(),
			Name:        item.name,
			Price:       price,
			Category:    item.category,
			Description: item.description,
			Emoji:       item.emoji,
			Available:   true,
			Popular:     item.popular,
		}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed menu item")
		}
	}
	if logg != nil {
		logg.Info(ctx, "default menu items created")
	}
	return nil
}

func seedTimeSlots(ctx context.Context, db *gorm.DB, cfg config.SlotsConfig, logg *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.TimeSlot{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count time slots")
	}
	if count > 0 {
		return nil
	}

	total := cfg.DefaultCapacity
	if total <= 0 {
		total = 20
	}

	for _, slot := range defaultTimeSlots {
		row := models.TimeSlot{
			ID:    uuid.New(),
			Time:  slot.time,
			Label: slot.label,
			Total: total,
		}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed time slot")
		}
	}
	if logg != nil {
		logg.Info(ctx, "default time slots created")
	}
	return nil
}

func seedNotices(ctx context.Context, db *gorm.DB, logg *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Notice{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count notices")
	}
	if count > 0 {
		return nil
	}

	for _, notice := range defaultNotices {
		row := models.Notice{
			ID:      uuid.New(),
			Title:   notice.title,
			Message: notice.message,
			Type:    notice.noticeType,
		}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed notice")
		}
	}
	if logg != nil {
		logg.Info(ctx, "default notices created")
	}
	return nil
}
