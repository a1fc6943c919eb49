package nspd

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"cadastral-lookup-api/internal/geometry"
)

// optionsKey names the nested attribute bag used by the v2 geoportal payload
const optionsKey = "options"

// Candidate property keys in lookup order. The legacy search returns flat
// camelCase keys, the geoportal returns snake_case keys under "options".
var (
	areaKeys     = []string{"area", "land_record_area", "specified_area", "declared_area"}
	costKeys     = []string{"cadastralCost", "cost_value", "cadastral_cost"}
	categoryKeys = []string{"category", "land_record_category_type", "categoryName"}
	addressKeys  = []string{"address", "readable_address"}
)

// Attributes are the parcel attributes extracted from a feature
type Attributes struct {
	Area          float64
	CadastralCost float64
	Category      string
	Address       string
}

// PointsCount returns the number of points in the feature's deepest ring
func (f *Feature) PointsCount() int {
	return geometry.PointsCount(f.Geometry.Coordinates)
}

// Attributes maps the property bag onto parcel attributes. Absent numerics
// default to 0 and absent strings to "".
func (f *Feature) Attributes() Attributes {
	bags := []map[string]interface{}{f.Properties}
	if options, ok := f.Properties[optionsKey].(map[string]interface{}); ok {
		bags = append(bags, options)
	}

	return Attributes{
		Area:          lookupNumber(bags, areaKeys),
		CadastralCost: lookupNumber(bags, costKeys),
		Category:      lookupString(bags, categoryKeys),
		Address:       lookupString(bags, addressKeys),
	}
}

func lookup(bags []map[string]interface{}, keys []string) (interface{}, bool) {
	for _, bag := range bags {
		for _, key := range keys {
			if value, ok := bag[key]; ok && value != nil {
				return value, true
			}
		}
	}
	return nil, false
}

func lookupNumber(bags []map[string]interface{}, keys []string) float64 {
	value, ok := lookup(bags, keys)
	if !ok {
		return 0
	}
	return toFloat(value)
}

func lookupString(bags []map[string]interface{}, keys []string) string {
	value, ok := lookup(bags, keys)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func toFloat(value interface{}) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		f, _ = v.Float64()
	case string:
		// Values sometimes arrive as "1 200,5"
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), " ", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	// ParseFloat accepts "NaN" and "Inf", neither of which encodes as JSON
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
