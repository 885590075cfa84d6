package safety

import (
	"fmt"
	"regexp"
	"strconv"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.-]`)

// 온도 문자열 파싱, "75F" / "75 degrees" 같은 입력에서 숫자만 추출
func ParseTemperature(value string) (float64, error) {
	cleaned := nonNumericRe.ReplaceAllString(value, "")

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("ParseTemperature(): invalid temperature %q: %w", value, err)
	}
	return parsed, nil
}
