package convert

import (
	"fmt"
	"regexp"
	"strconv"
)

// 숫자, 소수점, 부호 외 문자 제거용 ("30.5°C" 같은 입력 허용)
var nonNumericRe = regexp.MustCompile(`[^0-9.-]`)

// 섭씨 문자열을 화씨로 변환. 단위 기호 등 숫자가 아닌 문자는 무시함
func CelsiusToFahrenheit(celsius string) (float64, error) {
	cleaned := nonNumericRe.ReplaceAllString(celsius, "")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("CelsiusToFahrenheit(): invalid celsius value %q: %w", celsius, err)
	}
	return value*9/5 + 32, nil
}
