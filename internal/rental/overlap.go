package rental

import "time"

// Overlaps 判断两个含首尾的自然日区间是否有重叠。
// 规则：aStart <= bEnd && bStart <= aEnd。
// 同一天“还车 + 取车”算冲突：日期是整天粒度，一辆车不可能同一天被两个客户各占一次。
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := DateOnly(aStart), DateOnly(aEnd)
	bs, be := DateOnly(bStart), DateOnly(bEnd)
	return !as.After(be) && !bs.After(ae)
}
