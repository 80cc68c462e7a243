package measurement

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgMeters                      = "meters"
	msgKilometers                  = "kilometers"
	msgSquareMeters                = "square meters"
	msgSquareKilometers            = "square kilometers"
	msgTenThousandSquareKilometers = "ten-thousand square kilometers"

	msgHelpFreehand = "Press and drag to start measuring"
	msgHelpLength   = "Click to start measuring distance"
	msgHelpArea     = "Click to start measuring area"
	msgHelpCircle   = "Click to start measuring circle area"

	msgTotalLength = "Total length: %s"
	msgTotalArea   = "Total area: %s"
	msgHintClick   = "Click to place a point, double-click to finish"
	msgHintRelease = "Release the mouse button to finish"
	msgStart       = "Start"
	msgRemove      = "Remove measurement"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	zh := map[string]string{
		msgMeters:                      "米",
		msgKilometers:                  "公里",
		msgSquareMeters:                "平方米",
		msgSquareKilometers:            "平方公里",
		msgTenThousandSquareKilometers: "万平方公里",
		msgHelpFreehand:                "按下鼠标拖拽开始测量",
		msgHelpLength:                  "单击开始测距",
		msgHelpArea:                    "单击开始测面",
		msgHelpCircle:                  "单击开始测方圆面积",
		msgTotalLength:                 "总长：%s",
		msgTotalArea:                   "总面积：%s",
		msgHintClick:                   "单击确定地点，双击结束",
		msgHintRelease:                 "松开鼠标按键结束测量",
		msgStart:                       "起点",
		msgRemove:                      "清除测量结果",
	}
	for key, msg := range zh {
		if err := message.SetString(language.SimplifiedChinese, key, msg); err != nil {
			panic(err)
		}
	}
}

// matchLanguage maps a requested tag onto one of the translated languages
func matchLanguage(tag language.Tag) language.Tag {
	_, index, _ := languageMatcher.Match(tag)
	return supportedLanguages[index]
}
