package enums

import "strings"

// NoticeType categorizes canteen announcements.
type NoticeType string

const (
	NoticeTypeInfo    NoticeType = "info"
	NoticeTypeWarning NoticeType = "warning"
	NoticeTypeClosure NoticeType = "closure"
	NoticeTypeSpecial NoticeType = "special"
)

func (t NoticeType) String() string {
	return string(t)
}

func (t NoticeType) IsValid() bool {
	switch t {
	case NoticeTypeInfo, NoticeTypeWarning, NoticeTypeClosure, NoticeTypeSpecial:
		return true
	}
	return false
}

// ParseNoticeType normalizes and validates a raw type string.
func ParseNoticeType(value string) (NoticeType, bool) {
	noticeType := NoticeType(strings.ToLower(strings.TrimSpace(value)))
	if noticeType.IsValid() {
		return noticeType, true
	}
	return "", false
}
