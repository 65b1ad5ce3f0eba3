package homework

import (
	"encoding/json"
	"fmt"
)

// CheckResponse validates the shape of a decoded API answer and returns it unchanged.
func CheckResponse(raw any) (map[string]any, error) {
	data, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is %T, expected an object", ErrResponseType, raw)
	}
	homeworks, ok := data["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: homeworks", ErrResponseKey)
	}
	if _, ok := homeworks.([]any); !ok {
		return nil, fmt.Errorf("%w: homeworks is %T, expected a list", ErrResponseType, homeworks)
	}
	return data, nil
}

// FirstRecord returns the most recent homework record of a validated response.
// The bool is false when the homeworks list is empty.
func FirstRecord(data map[string]any) (map[string]any, bool, error) {
	homeworks, _ := data["homeworks"].([]any)
	if len(homeworks) == 0 {
		return nil, false, nil
	}
	record, ok := homeworks[0].(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: homework record is %T, expected an object", ErrResponseType, homeworks[0])
	}
	return record, true, nil
}

// CurrentDate returns the server timestamp of a response, if present.
func CurrentDate(data map[string]any) (int64, bool) {
	switch v := data["current_date"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
