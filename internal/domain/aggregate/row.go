package aggregate

import (
	"database/sql/driver"
	"reflect"
	"strconv"
	"time"
)

// Row は JOIN 結果の1行（列名 → 値）。
type Row map[string]any

// Value は列の値を返す。ポインタ・driver.Valuer・[]byte は素の値に直す。
// 列がない／NULL なら nil。
func (r Row) Value(col string) any {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	return normalize(v)
}

func normalize(v any) any {
	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil {
			return nil
		}
		v = dv
	}
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	v = rv.Interface()

	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// IsNull は列が NULL（または存在しない）か。
func (r Row) IsNull(col string) bool {
	return r.Value(col) == nil
}

func (r Row) Int64(col string) int64 {
	switch t := r.Value(col).(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int16:
		return int64(t)
	case int8:
		return int64(t)
	case uint64:
		return int64(t)
	case uint32:
		return int64(t)
	case uint:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// Float64 は numeric 列を float64 で返す（pgx は numeric を文字列で返すことがある）。
func (r Row) Float64(col string) float64 {
	switch t := r.Value(col).(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int16:
		return float64(t)
	case uint64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}

func (r Row) String(col string) string {
	switch t := r.Value(col).(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func (r Row) Time(col string) time.Time {
	switch t := r.Value(col).(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07", "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}
