package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of tags (allergens, dietary tags) as a JSON text
// column so it works the same on every supported driver.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return l.unmarshal(v)
	case string:
		return l.unmarshal([]byte(v))
	default:
		return fmt.Errorf("cannot convert %v to StringList", value)
	}
}

func (l *StringList) unmarshal(data []byte) error {
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = StringList(out)
	return nil
}

// GormDataType keeps AutoMigrate from guessing a column type per driver.
func (StringList) GormDataType() string {
	return "text"
}
