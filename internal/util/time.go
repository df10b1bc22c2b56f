package util

import "time"

// StartOfDay 返回 t 所在时区的当日零点。
// time.Truncate 按 UTC 对齐，非 UTC 时区下会落到错误的自然日。
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
