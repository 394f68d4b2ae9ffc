package weibull

import (
	"github.com/uyouii/materials-algorithms/common"
	"gopkg.in/yaml.v3"
)

// ParseSample decodes a flat YAML or JSON sequence of numbers, e.g.
// "[3, 1, 2]" or a block list "- 3\n- 1\n- 2".
func ParseSample(raw []byte) ([]float64, error) {
	var decoded interface{}
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, common.DataFormatErrorf("decode failure sample: %v", err)
	}
	values, ok := decoded.([]interface{})
	if !ok {
		return nil, common.DataFormatErrorf("failure sample must be a sequence of numbers, got %T", decoded)
	}
	return ToFloats(values)
}

// ToFloats converts decoded values to float64, failing on the first element
// that is not a number.
func ToFloats(values []interface{}) ([]float64, error) {
	res := make([]float64, 0, len(values))
	for i, value := range values {
		var f float64
		switch v := value.(type) {
		case float64:
			f = v
		case float32:
			f = float64(v)
		case int:
			f = float64(v)
		case int32:
			f = float64(v)
		case int64:
			f = float64(v)
		case uint:
			f = float64(v)
		case uint32:
			f = float64(v)
		case uint64:
			f = float64(v)
		default:
			return nil, common.DataFormatErrorf("failure sample element %d is %T, want a number", i, value)
		}
		res = append(res, f)
	}
	return res, nil
}
