package safety

// 운송 안전 판정 문구 (챗봇 응답에 그대로 사용됨)
const (
	VerdictTooCold = "It is not safe for the dinosaurs at this temperature because it is too cold."
	VerdictTooHot  = "It is not safe for the dinosaurs at this temperature because it is too hot."
	VerdictSafe    = "It is safe for the dinosaurs at this temperature."
)

// 공룡별 안전 운송 온도 범위 (화씨)
type TemperatureRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

var ranges = map[string]TemperatureRange{
	"T88": {Low: 70, High: 95}, // T-Rex
	"V66": {Low: 55, High: 90}, // Velociraptor
}

func GetRange(dinoID string) (TemperatureRange, bool) {
	r, exists := ranges[dinoID]
	return r, exists
}

// 현재 온도가 [low, high] 범위 안인지 판정하고 안내 문구를 반환
func CheckTemperature(current, low, high float64) string {
	if current < low {
		return VerdictTooCold
	}
	if current > high {
		return VerdictTooHot
	}
	return VerdictSafe
}
