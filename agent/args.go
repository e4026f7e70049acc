package agent

import (
	"encoding/json"
	"strings"
)

// FlexString tolerates the LLM sending a JSON number where a string is
// expected (phone numbers in particular).
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if len(raw) > 0 && raw[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(raw)
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexStrings tolerates a bare string where a string array is expected.
type FlexStrings []string

func (s *FlexStrings) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if len(raw) > 0 && raw[0] == '[' {
		var v []string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = v
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = []string{v}
	return nil
}

// Typed argument structs, one per tool.

type VerifyCustomerArgs struct {
	Name  string     `json:"name"`
	Phone FlexString `json:"phone"`
}

type CreateCustomerArgs struct {
	Name  string     `json:"name"`
	Phone FlexString `json:"phone"`
}

type VerifyOrderItemArgs struct {
	ItemName string   `json:"item_name"`
	Category string   `json:"category"`
	AddOns   []string `json:"add_ons"`
}

type CreateOrderArgs struct {
	CustomerName        string           `json:"customer_name"`
	CustomerPhone       FlexString       `json:"customer_phone"`
	OrderItems          []OrderItemInput `json:"order_items"`
	SpecialInstructions string           `json:"special_instructions"`
}

type FetchItemsForCategoryArgs struct {
	Category string `json:"category"`
}

type FetchAddonsArgs struct {
	Category string `json:"category"`
}

type RecordAddonsArgs struct {
	AddonType string      `json:"addon_type"`
	Selection FlexStrings `json:"selection"`
}

type EndCallArgs struct {
	Message string `json:"message"`
}
