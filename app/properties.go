package app

import (
	"strconv"
	"strings"
)

// Properties configure an application as name/value pairs.
type Properties map[string]string

// Property names.
const (
	PropScreenWidth        = "screen-width"
	PropScreenHeight       = "screen-height"
	PropScreenDepth        = "screen-depth"
	PropScreenDoubleBuffer = "screen-double-buffer"
	PropScreenTitle        = "screen-title"
	PropScreenDebug        = "screen-debug"
	PropAppEngine          = "app-engine"
)

// Values of PropAppEngine.
const (
	EngineEbiten   = "ebiten"
	EngineHeadless = "headless"
)

// DefaultProperties returns the properties used for anything not set
// explicitly.
func DefaultProperties() Properties {
	return Properties{
		PropScreenWidth:        "640",
		PropScreenHeight:       "480",
		PropScreenDepth:        "32",
		PropScreenDoubleBuffer: "yes",
		PropScreenTitle:        "Grog",
		PropScreenDebug:        "no",
		PropAppEngine:          EngineEbiten,
	}
}

// WithDefaults returns a copy of p with the missing properties taken from
// DefaultProperties.
func (p Properties) WithDefaults() Properties {
	merged := DefaultProperties()
	for name, value := range p {
		merged[name] = value
	}
	return merged
}

func known(name string) bool {
	_, ok := DefaultProperties()[name]
	return ok
}

// ParseBool parses the value of property name. It accepts yes, true and 1
// or no, false and 0, in any case.
func ParseBool(name, value string) (bool, error) {
	switch strings.ToUpper(value) {
	case "YES", "TRUE", "1":
		return true, nil
	case "NO", "FALSE", "0":
		return false, nil
	}
	return false, &PropertyError{Name: name, Value: value, Expected: "bool", Kind: ErrPropertyParse}
}

// ParseUint parses the value of property name as a decimal unsigned
// integer.
func ParseUint(name, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &PropertyError{Name: name, Value: value, Expected: "uint", Kind: ErrPropertyParse}
	}
	return uint(n), nil
}
