package decodex

import (
	stdjson "encoding/json"
	"sync"

	json "github.com/goccy/go-json"
)

// JSONDriver turns JSON text into untyped values (objects as map[string]any,
// arrays as []any, numbers as float64) and back. The default implementation is
// based on goccy/go-json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	Unmarshal(data []byte, v any) error
	Marshal(v any) ([]byte, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default goccy/go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver in effect.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// StdJSONDriver returns a driver backed by encoding/json.
func StdJSONDriver() JSONDriver { return stdJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (goJSONDriver) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (goJSONDriver) Name() string                       { return "goccy/go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) Unmarshal(data []byte, v any) error { return stdjson.Unmarshal(data, v) }
func (stdJSONDriver) Marshal(v any) ([]byte, error)      { return stdjson.Marshal(v) }
func (stdJSONDriver) Name() string                       { return "encoding/json" }

// UnmarshalJSONText decodes s with the current driver into an untyped value.
func UnmarshalJSONText(s string) (any, error) {
	var v any
	if err := CurrentJSONDriver().Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
