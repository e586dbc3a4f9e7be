package ability

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a content duration serialized as integer milliseconds
type Duration time.Duration

// Millis builds a Duration from milliseconds
func Millis(ms int64) Duration {
	return Duration(time.Duration(ms) * time.Millisecond)
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Milliseconds returns the duration in whole milliseconds
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

// MarshalJSON encodes the duration as milliseconds
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Milliseconds())
}

// UnmarshalJSON decodes milliseconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("duration must be integer milliseconds: %w", err)
	}
	*d = Millis(ms)
	return nil
}

// MarshalYAML encodes the duration as milliseconds
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Milliseconds(), nil
}

// UnmarshalYAML decodes milliseconds
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err != nil {
		return fmt.Errorf("duration must be integer milliseconds (line %d): %w", value.Line, err)
	}
	*d = Millis(ms)
	return nil
}
