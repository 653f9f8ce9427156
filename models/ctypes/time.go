package ctypes

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// MyTime 统一时间类型，JSON输出RFC3339，数据库存datetime
type MyTime time.Time

// Now 当前时间
func Now() MyTime {
	return MyTime(time.Now())
}

func (t MyTime) MarshalJSON() ([]byte, error) {
	stamp := time.Time(t).Format(time.RFC3339)
	return []byte(`"` + stamp + `"`), nil
}

// UnmarshalJSON 先按RFC3339解析，失败再按 "2006-01-02 15:04:05" 解析
func (t *MyTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	tmp, err := time.Parse(time.RFC3339, s)
	if err != nil {
		tmp, err = time.Parse(time.DateTime, s)
		if err != nil {
			return err
		}
	}
	*t = MyTime(tmp)
	return nil
}

func (t MyTime) String() string {
	return time.Time(t).Format(time.DateTime)
}

// Value 实现 driver.Valuer 接口，零值时间写NULL
func (t MyTime) Value() (driver.Value, error) {
	if time.Time(t).IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan 实现 sql.Scanner 接口
// 驱动未开parseTime时datetime列以[]byte返回，也要能扫进来
func (t *MyTime) Scan(value interface{}) error {
	if value == nil {
		*t = MyTime(time.Time{})
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = MyTime(v)
	case []byte:
		pt, err := time.ParseInLocation(time.DateTime, string(v), time.Local)
		if err != nil {
			return err
		}
		*t = MyTime(pt)
	case string:
		pt, err := time.ParseInLocation(time.DateTime, v, time.Local)
		if err != nil {
			return err
		}
		*t = MyTime(pt)
	default:
		return fmt.Errorf("无法将 %v 转换为 MyTime", value)
	}
	return nil
}
