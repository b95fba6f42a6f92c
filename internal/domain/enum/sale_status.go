package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the payment state of a sale
type SaleStatus int

const (
	SaleStatusUnpaid  SaleStatus = 0
	SaleStatusPartial SaleStatus = 1
	SaleStatusPaid    SaleStatus = 2
)

func (s SaleStatus) String() string {
	return [...]string{"unpaid", "partial", "paid"}[s]
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = SaleStatusUnpaid
	case "partial":
		*s = SaleStatusPartial
	case "paid":
		*s = SaleStatusPaid
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}
