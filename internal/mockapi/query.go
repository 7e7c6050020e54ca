package mockapi

import (
	"sort"
	"strconv"
)

// matchEqual compares the record's field against the query parameter's raw
// string form, which is all the wire gives us. Numbers and booleans are
// compared through their canonical string rendering.
func matchEqual(doc Record, field, value string) bool {
	raw, ok := doc[field]
	if !ok {
		return false
	}
	return stringify(raw) == value
}

// sortRecords orders docs by one field. Two numbers compare numerically,
// everything else through its string form. The sort is stable so records
// the field cannot distinguish keep their insertion order.
func sortRecords(docs []Record, field string, ascending bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		less := lessValue(docs[i][field], docs[j][field])
		if ascending {
			return less
		}
		return lessValue(docs[j][field], docs[i][field])
	})
}

func lessValue(a, b any) bool {
	af, aNum := asNumber(a)
	bf, bNum := asNumber(b)
	if aNum && bNum {
		return af < bf
	}
	return stringify(a) < stringify(b)
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}
