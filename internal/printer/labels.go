package printer

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/devboot-cli/devboot/internal/installer"
)

// supported lists the languages labels are translated into. The first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

// Labels are the user-facing words in summaries and listings.
type Labels struct {
	Item         string
	Result       string
	Success      string
	Failed       string
	Kind         string
	Name         string
	Description  string
	Status       string
	Installed    string
	NotInstalled string
	Registered   string
	Unregistered string

	// Notices are the installer's progress messages in the same language.
	Notices installer.Notices
}

var labels = map[language.Tag]Labels{
	language.English: {
		Item:         "Item",
		Result:       "Result",
		Success:      "Success",
		Failed:       "Failed",
		Kind:         "Kind",
		Name:         "Name",
		Description:  "Description",
		Status:       "Status",
		Installed:    "installed",
		NotInstalled: "not installed",
		Registered:   "registered",
		Unregistered: "not registered",
		Notices:      installer.DefaultNotices(),
	},
	language.Korean: {
		Item:         "항목",
		Result:       "결과",
		Success:      "성공",
		Failed:       "실패",
		Kind:         "종류",
		Name:         "이름",
		Description:  "설명",
		Status:       "상태",
		Installed:    "설치됨",
		NotInstalled: "설치 안 됨",
		Registered:   "등록됨",
		Unregistered: "등록 안 됨",
		Notices: installer.Notices{
			Unknown:          "알 수 없는 항목: %s",
			Unsupported:      "%s은(는) %s에서 설치할 수 없습니다",
			AlreadyInstalled: "%s은(는) 이미 설치되어 있습니다",
			Installing:       "%s 설치 중...",
			NotImplemented:   "%s 설치는 아직 구현되지 않았습니다",
		},
	},
}

// ResolveLanguage picks the label language from the settings value, falling back to a
// POSIX locale such as LANG=ko_KR.UTF-8. Anything unrecognised resolves to English.
func ResolveLanguage(setting string, locale string) language.Tag {
	for _, candidate := range []string{setting, posixToBCP47(locale)} {
		if candidate == "" {
			continue
		}
		tag, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			return supported[0]
		}
		return supported[idx]
	}

	return supported[0]
}

// LabelsFor returns the labels for tag, defaulting to English.
func LabelsFor(tag language.Tag) Labels {
	if l, ok := labels[tag]; ok {
		return l
	}

	return labels[supported[0]]
}

// posixToBCP47 turns 'ko_KR.UTF-8@euro' into 'ko-KR'. The C and POSIX locales yield "".
func posixToBCP47(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}

	return strings.ReplaceAll(locale, "_", "-")
}
